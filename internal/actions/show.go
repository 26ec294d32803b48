package actions

import (
	"github.com/urfave/cli/v2"
)

// ShowPlaylist loads a playlist from a source and displays it.
func ShowPlaylist(c *cli.Context) (err error) {
	platform, source, err := resolveSource(c)
	if err != nil {
		return err
	}

	lib := newLibrary()
	p, err := loadPlaylist(c, lib, platform, source)
	if err != nil {
		return err
	}
	defer func() {
		release(lib, p, &err)
		if err == nil {
			printSummary(c.App.Writer, lib)
		}
	}()

	return p.Display(c.App.Writer)
}
