package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("asset not found")

// Provider gives read-only access to bundled game data
type Provider interface {
	Read(name string) ([]byte, error)
	Exists(name string) bool
}

// FSProvider reads assets from a file system and caches their bytes
type FSProvider struct {
	fsys fs.FS

	mu    sync.RWMutex
	cache map[string][]byte
}

// New creates a provider over fsys
func New(fsys fs.FS) *FSProvider {
	return &FSProvider{
		fsys:  fsys,
		cache: make(map[string][]byte),
	}
}

func clean(name string) (string, error) {
	name = path.Clean(strings.TrimPrefix(name, "/"))
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("invalid asset path %q", name)
	}
	return name, nil
}

// Read returns the asset contents. Callers must not modify the slice.
func (p *FSProvider) Read(name string) ([]byte, error) {
	name, err := clean(name)
	if err != nil {
		return nil, err
	}

	p.mu.RLock()
	data, ok := p.cache[name]
	p.mu.RUnlock()
	if ok {
		return data, nil
	}

	data, err = fs.ReadFile(p.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", name, err)
	}

	p.mu.Lock()
	p.cache[name] = data
	p.mu.Unlock()
	return data, nil
}

// Exists reports whether name can be read
func (p *FSProvider) Exists(name string) bool {
	name, err := clean(name)
	if err != nil {
		return false
	}
	p.mu.RLock()
	_, ok := p.cache[name]
	p.mu.RUnlock()
	if ok {
		return true
	}
	_, err = fs.Stat(p.fsys, name)
	return err == nil
}

// Cached returns the number of cached assets
func (p *FSProvider) Cached() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.cache)
}
