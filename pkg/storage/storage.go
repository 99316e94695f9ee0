package storage

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// HubID identifies the hub (tenant) owning a storage subtree.
type HubID int64

// String renders the decimal form used as the hub's path segment.
func (id HubID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// UploadRoot is the absolute filesystem path all hub subtrees live under.
// Built once at startup and never mutated.
type UploadRoot struct {
	path string
}

// NewUploadRoot resolves path into an absolute upload root.
func NewUploadRoot(path string) (UploadRoot, error) {
	if path == "" {
		return UploadRoot{}, fmt.Errorf("%w: upload root is required", ErrInvalidConfig)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return UploadRoot{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return UploadRoot{path: abs}, nil
}

// Path returns the absolute upload root path.
func (r UploadRoot) Path() string {
	return r.path
}

// HubStorage resolves validated relative locations to absolute paths inside
// one hub's subtree. It never validates: only values constructed through
// ParseRelativePath and ParseEntryName can reach it, which is the whole
// enforcement mechanism. Stateless and cheap to recreate per request.
type HubStorage struct {
	root UploadRoot
	hub  HubID
}

// NewHubStorage scopes the upload root to a single hub.
func NewHubStorage(root UploadRoot, hub HubID) HubStorage {
	return HubStorage{root: root, hub: hub}
}

// HubRoot returns the absolute path of the hub's subtree root.
func (s HubStorage) HubRoot() string {
	return filepath.Join(s.root.path, s.hub.String())
}

// ResolveDir returns the absolute directory path for rel inside the hub.
func (s HubStorage) ResolveDir(rel RelativePath) string {
	if rel.IsRoot() {
		return s.HubRoot()
	}
	return filepath.Join(s.HubRoot(), filepath.FromSlash(rel.String()))
}

// ResolveFile returns the absolute path of name inside rel.
func (s HubStorage) ResolveFile(rel RelativePath, name EntryName) string {
	return filepath.Join(s.ResolveDir(rel), name.String())
}
