package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// KV is the minimal local key-value contract the board persists through.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Has(key string) bool
}

// DiskKV stores each key as a file directly under its base directory.
type DiskKV struct {
	d        *diskv.Diskv
	basePath string
}

// OpenDisk prepares basePath and returns a store rooted there. Writes go
// through a temp file and a rename so a reader never sees a half-written
// value.
func OpenDisk(basePath string) (*DiskKV, error) {
	if basePath == "" {
		return nil, fmt.Errorf("storage: empty base path")
	}
	tmp := filepath.Join(basePath, ".tmp")
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}

	return &DiskKV{
		d: diskv.New(diskv.Options{
			BasePath:  basePath,
			TempDir:   tmp,
			Transform: flatTransform,
			// No read cache: status --watch re-reads values written by
			// another process.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
	}, nil
}

func flatTransform(string) []string { return []string{} }

// Read returns the stored bytes for key.
func (s *DiskKV) Read(key string) ([]byte, error) {
	return s.d.Read(key)
}

// Write replaces the value stored at key.
func (s *DiskKV) Write(key string, val []byte) error {
	return s.d.Write(key, val)
}

// Has reports whether key has a stored value.
func (s *DiskKV) Has(key string) bool {
	return s.d.Has(key)
}

// BasePath is the directory holding the key files.
func (s *DiskKV) BasePath() string {
	return s.basePath
}

// MemoryKV is an in-process KV used by tests and --ephemeral sessions.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Read returns a copy of the value at key or os.ErrNotExist.
func (m *MemoryKV) Read(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", key, os.ErrNotExist)
	}
	return append([]byte(nil), v...), nil
}

// Write stores a copy of val.
func (m *MemoryKV) Write(key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), val...)
	return nil
}

// Has reports whether key is set.
func (m *MemoryKV) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok
}
