package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// PlayerSettings holds the synchronization engine parameters.
type PlayerSettings struct {
	PollInterval  time.Duration
	HideAudioTags bool
}

// Config holds the full application configuration.
type Config struct {
	PlayerSettings

	RedrawPerSec float64
	Speed        float64
}

// Default returns a Config with hardcoded defaults.
func Default() *Config {
	return &Config{
		PlayerSettings: PlayerSettings{
			PollInterval:  33 * time.Millisecond, // roughly one animation frame
			HideAudioTags: true,
		},
		RedrawPerSec: 30,
		Speed:        1.0,
	}
}

// FromEnv returns the defaults overridden by environment variables, loading
// a .env file from the working directory first if one exists.
func FromEnv() *Config {
	_ = godotenv.Load()

	cfg := Default()
	if ms, ok := envInt("SCRIPTSYNC_POLL_MS"); ok && ms > 0 {
		cfg.PollInterval = time.Duration(ms) * time.Millisecond
	}
	if b, ok := envBool("SCRIPTSYNC_HIDE_AUDIO_TAGS"); ok {
		cfg.HideAudioTags = b
	}
	if f, ok := envFloat("SCRIPTSYNC_REDRAW_PER_SEC"); ok && f > 0 {
		cfg.RedrawPerSec = f
	}
	return cfg
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envFloat(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
