package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ElizavetaFed/Task-Manager2025/internal/api"
	"github.com/ElizavetaFed/Task-Manager2025/internal/logging"
)

// cacheFile is the session cache file name inside the cache directory.
const cacheFile = "session.json"

// Cache persists the authenticated session to disk so the user stays
// signed in across restarts. Tokens are stored with owner-only
// permissions. All failures are logged and swallowed; a missing or
// unreadable cache simply means signing in again.
type Cache struct {
	dir string
	log *logging.Logger
}

// NewCache creates a session cache rooted at the given directory.
func NewCache(dir string, log *logging.Logger) *Cache {
	return &Cache{
		dir: dir,
		log: log.WithComponent("session"),
	}
}

// Load returns the cached session, or nil when none is stored or the
// cache cannot be read.
func (c *Cache) Load() *api.Session {
	data, err := os.ReadFile(c.path())
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Warn("session cache unreadable", "error", err)
		}
		return nil
	}

	var sess api.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		c.log.Warn("session cache corrupt", "error", err)
		return nil
	}
	if sess.AccessToken == "" {
		return nil
	}
	return &sess
}

// Save writes the session to disk. A nil session clears the cache.
func (c *Cache) Save(sess *api.Session) {
	if sess == nil {
		c.Clear()
		return
	}

	data, err := json.Marshal(sess)
	if err != nil {
		c.log.Error("session cache encode failed", "error", err)
		return
	}

	if err := os.MkdirAll(c.dir, 0700); err != nil {
		c.log.Error("session cache dir failed", "error", err)
		return
	}
	if err := atomicWriteFile(c.path(), data, 0600); err != nil {
		c.log.Error("session cache write failed", "error", err)
	}
}

// Clear removes the cached session.
func (c *Cache) Clear() {
	if err := os.Remove(c.path()); err != nil && !os.IsNotExist(err) {
		c.log.Warn("session cache remove failed", "error", err)
	}
}

func (c *Cache) path() string {
	return filepath.Join(c.dir, cacheFile)
}

// atomicWriteFile writes data to a file atomically by writing to a
// temporary file first, then renaming. This ensures the target file is
// never in a partially-written state.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// Create temp file in same directory to ensure atomic rename
	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on any error
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
