package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"log/slog"

	"github.com/pawfund/charitybot/core/logger"
)

// Store keeps the in-memory mirror of the project catalog and persists it to
// a single JSON document keyed by project key.
type Store struct {
	mu       sync.RWMutex
	path     string
	projects map[string]Project
}

// Open loads the catalog from path. A missing file is not an error: the store
// starts from the seeded defaults and writes them out on the first mutation.
func Open(path string) (*Store, error) {
	s := &Store{
		path:     path,
		projects: make(map[string]Project),
	}

	start := time.Now()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &s.projects); err != nil {
			return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		s.projects = seedProjects()
		logger.Catalog.Info("catalog seeded",
			slog.String("event", "catalog.seed"),
			slog.String("path", path),
			slog.Int("count", len(s.projects)),
		)
	default:
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	logger.Catalog.Info("catalog loaded",
		slog.String("event", "catalog.load"),
		slog.String("path", path),
		slog.Int("count", len(s.projects)),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return s, nil
}

// Get returns the project stored under key.
func (s *Store) Get(key string) (Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[key]
	return p, ok
}

// Has reports whether key is present in the catalog.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.projects[key]
	return ok
}

// Len returns the number of projects in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

// Keys returns all project keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.projects))
	for k := range s.projects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns a copy of the catalog mapping.
func (s *Store) All() map[string]Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Project, len(s.projects))
	for k, v := range s.projects {
		out[k] = v
	}
	return out
}

// Add stores a new project and persists the catalog. The in-memory update and
// the disk write both complete under the write lock, so no reader can observe
// a half-updated catalog.
func (s *Store) Add(key string, p Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.projects[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	s.projects[key] = p
	if err := s.persist(); err != nil {
		delete(s.projects, key)
		return err
	}
	logger.Catalog.Info("project added",
		slog.String("event", "catalog.add"),
		slog.String("project_key", key),
		slog.Int("count", len(s.projects)),
	)
	return nil
}

// Delete removes a project by exact key match and persists the catalog.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, exists := s.projects[key]
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	delete(s.projects, key)
	if err := s.persist(); err != nil {
		s.projects[key] = p
		return err
	}
	logger.Catalog.Info("project deleted",
		slog.String("event", "catalog.delete"),
		slog.String("project_key", key),
		slog.Int("count", len(s.projects)),
	)
	return nil
}

// persist rewrites the whole document. Callers hold the write lock.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.projects, "", "    ")
	if err != nil {
		return fmt.Errorf("catalog: encode: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("catalog: write %s: %w", s.path, err)
	}
	return nil
}
