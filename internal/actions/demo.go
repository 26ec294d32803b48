package actions

import (
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"songbook/internal/demo"
)

// RunDemo prints the walkthrough. Lifecycle events share the output stream so
// they interleave with the rendered playlists.
func RunDemo(c *cli.Context) error {
	log.SetOutput(c.App.Writer)
	lib := newLibrary()
	if c.Bool("scenario") {
		return demo.Scenario(c.App.Writer, lib)
	}
	return demo.Run(c.App.Writer, lib)
}
