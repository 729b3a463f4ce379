package config

import "os"

// WriteDefault writes a default config file if one doesn't exist. It
// reports whether a file was written.
func WriteDefault(path string) (bool, error) {
	path = ExpandPath(path)

	// Don't overwrite existing config
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := Default().Save(path); err != nil {
		return false, err
	}
	return true, nil
}
