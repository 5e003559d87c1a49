package session

import (
	"os"
	"strings"
)

// NicknameCache persists the player's last used nickname across sessions.
// It is the only durable artifact at the boundary of the system.
type NicknameCache interface {
	Load() (string, error)
	Store(nickname string) error
}

// FileNicknameCache keeps the nickname in a single file
type FileNicknameCache struct {
	Path string
}

// Load reads the cached nickname; a missing file yields an empty string
func (c *FileNicknameCache) Load() (string, error) {
	data, err := os.ReadFile(c.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Store writes the nickname, replacing any previous value
func (c *FileNicknameCache) Store(nickname string) error {
	return os.WriteFile(c.Path, []byte(nickname+"\n"), 0o644)
}
