package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings are the durable preferences read from the .okaara config file and
// OKAARA_* environment variables. Command-line flags override them.
type Settings struct {
	Color    string // "auto", "always" or "never"
	Banner   bool
	Menu     string // path to a menu definition, empty for the built-in demo
	LogLevel string
}

// LoadSettings reads .okaara.yaml from the working directory or the home
// directory. A missing file is fine; a malformed one is not.
func LoadSettings() (Settings, error) {
	v := viper.New()
	v.SetConfigName(".okaara")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	// Enable environment variable overrides (OKAARA_COLOR, OKAARA_LOG_LEVEL, ...)
	v.AutomaticEnv()
	v.SetEnvPrefix("OKAARA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("color", "auto")
	v.SetDefault("banner", true)
	v.SetDefault("log-level", "warn")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read okaara config: %w", err)
		}
	}

	s := Settings{
		Color:    v.GetString("color"),
		Banner:   v.GetBool("banner"),
		Menu:     v.GetString("menu"),
		LogLevel: v.GetString("log-level"),
	}

	switch s.Color {
	case "auto", "always", "never":
	default:
		return Settings{}, fmt.Errorf("invalid color setting %q (want auto, always or never)", s.Color)
	}

	return s, nil
}
