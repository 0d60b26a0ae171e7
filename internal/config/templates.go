package config

import (
	"fmt"
	"os"
)

// WriteTemplate writes the default config file to path.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const template = `# Accept chunk types whose second letter is lowercase.
allow_private = true

# Report chunk types missing from the PNG registry.
require_known = false

# Chunk types reported as denied.
deny = []

# text | json
output = "text"

log_level = "info"
`
