package config

import "testing"

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"empty", "", "info"},
		{"invalid", "loud", "info"},
		{"debug", "debug", "debug"},
		{"warn", "warn", "warn"},
		{"error", "error", "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)
			if got := getLogLevel(); got != tt.want {
				t.Errorf("getLogLevel() = %s; want %s", got, tt.want)
			}
		})
	}
}

func TestGetPageLimit(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want int
	}{
		{"empty", "", 50},
		{"invalid", "foo", 50},
		{"zero", "0", 50},
		{"negative", "-10", 50},
		{"min", "1", 1},
		{"mid", "25", 25},
		{"max", "50", 50},
		{"over", "51", 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SPOTIFY_PLAYLIST_LIMIT", tt.env)
			if got := getPageLimit("SPOTIFY_PLAYLIST_LIMIT"); got != tt.want {
				t.Errorf("getPageLimit() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "")
	t.Setenv("YOUTUBE_API_KEY", "key")
	t.Setenv("YOUTUBE_PLAYLIST_LIMIT", "20")

	cfg := NewConfig()
	if Config != cfg {
		t.Error("NewConfig() should set the package Config")
	}
	if cfg.Spotify.IsConfigured() {
		t.Error("Spotify should not be configured without a secret")
	}
	if !cfg.Youtube.IsConfigured() {
		t.Error("Youtube should be configured with an API key")
	}
	if cfg.Youtube.PlaylistLimit != 20 {
		t.Errorf("Youtube.PlaylistLimit = %d; want 20", cfg.Youtube.PlaylistLimit)
	}
}
