package actions

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	"songbook/internal/porter"
)

// ExportPlaylist loads a playlist from a source and writes it to a CSV file.
func ExportPlaylist(c *cli.Context) (err error) {
	platform, source, err := resolveSource(c)
	if err != nil {
		return err
	}

	destFile := c.String("file")
	if destFile == "" {
		err := huh.NewInput().
			Title("Enter the file path to save the exported playlist").
			Value(&destFile).
			Run()
		if err != nil {
			return err
		}
	}

	lib := newLibrary()
	p, err := loadPlaylist(c, lib, platform, source)
	if err != nil {
		return err
	}
	defer release(lib, p, &err)

	path, err := porter.ExportPlaylistToCSV(p, destFile)
	if err != nil {
		return fmt.Errorf("failed to export playlist %s: %w", p.Name(), err)
	}

	_, err = fmt.Fprintf(c.App.Writer, "Successfully exported playlist '%s' with %d songs to %s\n", p.Name(), p.Len(), path)
	return err
}
