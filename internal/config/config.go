package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/pngme/internal/chunktype"
	"github.com/danmuck/pngme/internal/inspect"
	"github.com/danmuck/pngme/internal/logging"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// pngtag config.toml key mapping.
type fileConfig struct {
	AllowPrivate bool                  `toml:"allow_private"`
	RequireKnown bool                  `toml:"require_known"`
	Deny         []chunktype.ChunkType `toml:"deny"`
	Output       string                `toml:"output"`
	LogLevel     string                `toml:"log_level"`
}

type Config struct {
	Policy   inspect.Policy
	Output   string
	LogLevel string
}

func DefaultConfig() Config {
	return Config{
		Policy:   inspect.DefaultPolicy(),
		Output:   OutputText,
		LogLevel: "info",
	}
}

// Load overlays the keys defined in the TOML file at path onto DefaultConfig.
// Deny entries are parsed as chunk types, so a malformed entry fails the load.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config (%s): %w", path, err)
	}

	if meta.IsDefined("allow_private") {
		cfg.Policy.AllowPrivate = raw.AllowPrivate
	}
	if meta.IsDefined("require_known") {
		cfg.Policy.RequireKnown = raw.RequireKnown
	}
	if meta.IsDefined("deny") {
		cfg.Policy.Deny = raw.Deny
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.ToLower(strings.TrimSpace(raw.Output))
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config (%s): unknown key %q", path, undecoded[0].String())
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("load config (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unsupported output %q (expected %s or %s)", cfg.Output, OutputText, OutputJSON)
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unsupported log_level %q", cfg.LogLevel)
	}
	for i, ct := range cfg.Policy.Deny {
		if !ct.IsValid() {
			return fmt.Errorf("deny[%d] %q is not a valid chunk type", i, ct.String())
		}
	}
	return nil
}
