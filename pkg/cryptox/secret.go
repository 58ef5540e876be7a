package cryptox

import (
	"fmt"
	"os"
	"path/filepath"
)

// secretLength is the byte length of a generated signing secret.
const secretLength = 32

// LoadOrGenerateSecret returns the signing secret stored at path, creating
// the file with a fresh random secret on first run. The caller passes the
// result into whatever needs it (e.g. the session token codec); nothing in
// this package holds global secret state.
func LoadOrGenerateSecret(path string) (string, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", fmt.Errorf("cryptox: create secret dir: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		secret, err := GenerateToken(secretLength)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(path, []byte(secret), 0600); err != nil {
			return "", fmt.Errorf("cryptox: write secret file: %w", err)
		}
		return secret, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cryptox: read secret file: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("cryptox: secret file %s is empty", path)
	}
	return string(raw), nil
}
