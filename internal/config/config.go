package config

import (
	"os"
	"strconv"
)

type ConfigStruct struct {
	Log     LogConfig
	Spotify SpotifyConfig
	Youtube YoutubeConfig
}

type LogConfig struct {
	Level string
}

type SpotifyConfig struct {
	ClientID      string
	ClientSecret  string
	PlaylistLimit int
}

type YoutubeConfig struct {
	APIKey        string
	PlaylistLimit int
}

// IsConfigured reports whether client credentials are present.
func (s *SpotifyConfig) IsConfigured() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

// IsConfigured reports whether an API key is present.
func (y *YoutubeConfig) IsConfigured() bool {
	return y.APIKey != ""
}

var Config *ConfigStruct

func NewConfig() *ConfigStruct {
	config := &ConfigStruct{
		Log: LogConfig{
			Level: getLogLevel(),
		},
		Spotify: SpotifyConfig{
			ClientID:      os.Getenv("SPOTIFY_CLIENT_ID"),
			ClientSecret:  os.Getenv("SPOTIFY_CLIENT_SECRET"),
			PlaylistLimit: getPageLimit("SPOTIFY_PLAYLIST_LIMIT"),
		},
		Youtube: YoutubeConfig{
			APIKey:        os.Getenv("YOUTUBE_API_KEY"),
			PlaylistLimit: getPageLimit("YOUTUBE_PLAYLIST_LIMIT"),
		},
	}

	Config = config
	return config
}

func getLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	switch level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
		return level
	}
	return "info"
}

// getPageLimit reads a page size for the platform APIs. Both Spotify and
// YouTube cap a page at 50 items.
func getPageLimit(key string) int {
	limitStr := os.Getenv(key)
	if limitStr == "" {
		return 50
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return 50
	}
	if limit > 50 {
		return 50
	}
	return limit
}
