package actions

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"songbook/internal/adapters"
	"songbook/internal/config"
	"songbook/internal/playlist"
	"songbook/internal/porter"
)

var summaryStyle = lipgloss.NewStyle().Bold(true)

func newLibrary() *playlist.Library {
	return playlist.NewLibrary(log.NewEntry(log.StandardLogger()))
}

// resolveSource returns the platform and source reference from flags,
// prompting for whichever is missing.
func resolveSource(c *cli.Context) (string, string, error) {
	platform := strings.ToLower(c.String("from"))
	source := c.String("source")

	if platform == "" {
		err := huh.NewSelect[string]().
			Title("Choose where to read the playlist from").
			Options(getPlatformOptions()...).
			Value(&platform).
			Run()
		if err != nil {
			return "", "", err
		}
	}
	if source == "" {
		err := huh.NewInput().
			Title(sourcePrompt(platform)).
			Value(&source).
			Run()
		if err != nil {
			return "", "", err
		}
	}
	return platform, source, nil
}

// loadPlaylist authenticates against the platform and reads the playlist into lib.
func loadPlaylist(c *cli.Context, lib *playlist.Library, platform, source string) (*playlist.Playlist, error) {
	p, err := porter.NewPorterWithPlatform(platform, config.Config, lib)
	if err != nil {
		return nil, err
	}

	var loaded *playlist.Playlist
	load := func(ctx context.Context) error {
		if !p.IsAuthenticated() {
			if err := p.Authenticate(ctx); err != nil {
				return err
			}
		}
		pl, err := p.Load(ctx, source, c.String("name"), annotations(c)...)
		if err != nil {
			return err
		}
		loaded = pl
		return nil
	}

	if err := withSpinner(c.Context, "Loading playlist...", load); err != nil {
		return nil, err
	}
	return loaded, nil
}

// withSpinner shows a spinner while action runs on a terminal and runs it
// directly otherwise.
func withSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return action(ctx)
	}
	return spinner.New().Title(title).Context(ctx).ActionWithErr(action).Run()
}

// release releases p and keeps the first error seen by the caller.
func release(lib *playlist.Library, p *playlist.Playlist, err *error) {
	if rerr := lib.ReleasePlaylist(p); rerr != nil && *err == nil {
		*err = rerr
	}
}

func annotations(c *cli.Context) []playlist.Option {
	var opts []playlist.Option
	if c.IsSet("premium") {
		opts = append(opts, playlist.WithPremium(c.Bool("premium")))
	}
	if c.IsSet("exclusive") {
		opts = append(opts, playlist.WithExclusive(c.String("exclusive")))
	}
	return opts
}

func printSummary(w io.Writer, lib *playlist.Library) {
	fmt.Fprintln(w, summaryStyle.Render(strings.TrimSuffix(lib.Ledger().Summary(), "\n")))
}

func getPlatformOptions() []huh.Option[string] {
	options := make([]huh.Option[string], len(adapters.Platforms))
	for i, p := range adapters.Platforms {
		options[i] = huh.NewOption(platformLabel(p), string(p))
	}
	return options
}

func platformLabel(p adapters.PlatformType) string {
	switch p {
	case adapters.SpotifyPlatform:
		return "Spotify"
	case adapters.YoutubePlatform:
		return "YouTube"
	default:
		return "CSV file"
	}
}

func sourcePrompt(platform string) string {
	if adapters.PlatformType(platform) == adapters.CSVPlatform {
		return "Enter the path of the CSV file"
	}
	return "Enter the playlist URL or ID"
}
