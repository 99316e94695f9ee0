package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// DefaultRequiredRole gates every file operation unless Config overrides it.
const DefaultRequiredRole = "files"

// dirMode is the permission set for directories created on demand.
const dirMode = 0o755

// Identity is the authenticated caller as the service sees it: the hub whose
// subtree is in scope plus the caller's role set. How the value was produced
// (cookie, token, header) is the transport's concern, never this package's.
type Identity struct {
	Hub   HubID
	Roles []string
}

// HasRole reports whether the identity carries the given role.
func (id Identity) HasRole(role string) bool {
	return slices.Contains(id.Roles, role)
}

// Config holds file service configuration.
type Config struct {
	// UploadRoot is the shared root all hub subtrees live under (required).
	UploadRoot UploadRoot

	// RequiredRole gates every operation (default: "files").
	RequiredRole string
}

func (c *Config) applyDefaults() {
	if c.RequiredRole == "" {
		c.RequiredRole = DefaultRequiredRole
	}
}

func (c *Config) validate() error {
	if c.UploadRoot.path == "" {
		return ErrInvalidConfig
	}
	return nil
}

// FileService is the only component that touches the filesystem. Every
// operation authorizes, validates untrusted input into typed values, resolves
// through HubStorage, and maps I/O failures into the error taxonomy. The
// service is stateless apart from immutable configuration and is safe for
// concurrent use.
type FileService struct {
	root         UploadRoot
	requiredRole string
}

// NewFileService creates a file service from cfg.
func NewFileService(cfg Config) (*FileService, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &FileService{
		root:         cfg.UploadRoot,
		requiredRole: cfg.RequiredRole,
	}, nil
}

// Storage returns the path resolver scoped to the given hub.
func (s *FileService) Storage(hub HubID) HubStorage {
	return NewHubStorage(s.root, hub)
}

func (s *FileService) authorize(id Identity) (HubStorage, error) {
	if !id.HasRole(s.requiredRole) {
		return HubStorage{}, ErrUnauthorized
	}
	return s.Storage(id.Hub), nil
}

func (s *FileService) ensureHubRoot(hs HubStorage) error {
	if err := os.MkdirAll(hs.HubRoot(), dirMode); err != nil {
		return wrapIOError(ErrStorageSetup, err)
	}
	return nil
}

// generateFileName names uploads that arrive without a client-supplied name.
func generateFileName() string {
	return "upload-" + uuid.NewString()
}

// ListEntries returns the immediate children of rawPath inside the caller's
// hub, directories first, then case-insensitive lexicographic by name.
// A directory that does not exist yet lists as empty: a never-used folder is
// a valid state, not an error. rawPath may be empty for the hub root.
func (s *FileService) ListEntries(ctx context.Context, id Identity, rawPath string) ([]EntryDTO, error) {
	hs, err := s.authorize(id)
	if err != nil {
		return nil, err
	}
	rel, err := ParseRelativePath(rawPath)
	if err != nil {
		return nil, err
	}
	if err := s.ensureHubRoot(hs); err != nil {
		return nil, err
	}

	target := hs.ResolveDir(rel)
	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []EntryDTO{}, nil
		}
		return nil, wrapIOError(ErrListEntries, err)
	}
	if !info.IsDir() {
		return nil, ErrInvalidPath
	}

	children, err := os.ReadDir(target)
	if err != nil {
		return nil, wrapIOError(ErrListEntries, err)
	}

	entries := make([]StorageEntry, 0, len(children))
	for _, child := range children {
		name, err := ParseEntryName(child.Name())
		if err != nil {
			// Names this API cannot address are skipped, the one documented
			// swallow in the package.
			continue
		}
		entries = append(entries, NewStorageEntry(name, child.IsDir()))
	}

	slices.SortStableFunc(entries, func(a, b StorageEntry) int {
		if a.isDir != b.isDir {
			if a.isDir {
				return -1
			}
			return 1
		}
		return strings.Compare(strings.ToLower(a.name.name), strings.ToLower(b.name.name))
	})

	dtos := make([]EntryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = entry.DTO()
	}
	return dtos, nil
}

// CreateFolder creates name (which may itself be nested, e.g. "a/b") below
// currentPath inside the caller's hub, including any missing parents.
// Creating an existing folder succeeds silently.
func (s *FileService) CreateFolder(ctx context.Context, id Identity, currentPath, name string) error {
	// An empty name is a form input failure even for callers lacking the
	// required role.
	if name == "" {
		return &ValidationError{Reason: "folder name cannot be empty"}
	}

	hs, err := s.authorize(id)
	if err != nil {
		return err
	}
	if err := s.ensureHubRoot(hs); err != nil {
		return err
	}

	current, err := ParseRelativePath(currentPath)
	if err != nil {
		return err
	}
	folder, err := ParseRelativePath(name)
	if err != nil {
		return &ValidationError{Reason: "invalid folder name"}
	}

	if err := os.MkdirAll(hs.ResolveDir(current.Join(folder)), dirMode); err != nil {
		return wrapIOError(ErrCreateFolder, err)
	}
	return nil
}

// PersistUpload writes content to rawName below currentPath inside the
// caller's hub, creating missing directories on the way. An empty rawName
// gets a generated "upload-<uuid>" name. An existing file of the same name
// is overwritten: last write wins, and a write interrupted mid-copy is not
// rolled back. Returns the stored name.
func (s *FileService) PersistUpload(ctx context.Context, id Identity, currentPath, rawName string, content io.Reader) (EntryName, error) {
	hs, err := s.authorize(id)
	if err != nil {
		return EntryName{}, err
	}
	rel, err := ParseRelativePath(currentPath)
	if err != nil {
		return EntryName{}, err
	}

	candidate := rawName
	if candidate == "" {
		candidate = generateFileName()
	}
	name, err := ParseEntryName(candidate)
	if err != nil {
		return EntryName{}, err
	}

	if err := s.ensureHubRoot(hs); err != nil {
		return EntryName{}, err
	}
	if err := os.MkdirAll(hs.ResolveDir(rel), dirMode); err != nil {
		return EntryName{}, wrapIOError(ErrSaveFile, err)
	}

	dst, err := os.Create(hs.ResolveFile(rel, name))
	if err != nil {
		return EntryName{}, wrapIOError(ErrSaveFile, err)
	}
	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		return EntryName{}, wrapIOError(ErrSaveFile, err)
	}
	if err := dst.Close(); err != nil {
		return EntryName{}, wrapIOError(ErrSaveFile, err)
	}
	return name, nil
}
