package actions

import "github.com/urfave/cli/v2"

var sourceFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "from",
		Aliases: []string{"f"},
		Usage:   "source platform: csv, spotify or youtube",
	},
	&cli.StringFlag{
		Name:    "source",
		Aliases: []string{"s"},
		Usage:   "CSV path, or playlist URL/ID",
	},
	&cli.StringFlag{
		Name:  "name",
		Usage: "rename the loaded playlist",
	},
	&cli.BoolFlag{
		Name:  "premium",
		Usage: "mark the playlist premium",
	},
	&cli.StringFlag{
		Name:  "exclusive",
		Usage: "attach exclusive content to the playlist",
	},
}

// Commands returns the command tree of the application.
func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "demo",
			Usage: "Walk through songs, favorites and playlists",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "scenario",
					Usage: "run the two-song playlist example instead",
				},
			},
			Action: RunDemo,
		},
		{
			Name:   "show",
			Usage:  "Load a playlist and display it",
			Flags:  sourceFlags,
			Action: ShowPlaylist,
		},
		{
			Name:  "export",
			Usage: "Load a playlist and export it to CSV",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:  "file",
					Usage: "destination CSV file",
				},
			}, sourceFlags...),
			Action: ExportPlaylist,
		},
	}
}
