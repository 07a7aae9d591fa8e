package broadcast

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

// Pool serves reminder images from a directory of static assets.
// The directory is rescanned on every cycle so photos can be added or
// removed without restarting the bot.
type Pool struct {
	dir string
}

// NewPool returns a pool backed by the given directory.
func NewPool(dir string) *Pool {
	return &Pool{dir: dir}
}

// List returns paths of usable image files. A missing or empty directory
// yields an empty list, never an error.
func (p *Pool) List() []string {
	if p == nil || p.dir == "" {
		return nil
	}
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil
	}
	var photos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !isImage(entry.Name()) {
			continue
		}
		photos = append(photos, filepath.Join(p.dir, entry.Name()))
	}
	return photos
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// pick returns a random element of photos, or "" when the list is empty.
func pick(photos []string) string {
	if len(photos) == 0 {
		return ""
	}
	return photos[rand.IntN(len(photos))]
}
