package storage

import "strings"

// imageExtensions is the fixed extension set classified as image-like.
// Matching is case-insensitive on the segment after the final dot.
var imageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
	"bmp":  {},
	"svg":  {},
}

// IsImage reports whether the name's extension belongs to the image set.
// A name whose only dot leads it (".png") has no extension and is not an
// image. Pure function, no I/O.
func (n EntryName) IsImage() bool {
	dot := strings.LastIndexByte(n.name, '.')
	if dot <= 0 {
		return false
	}
	_, ok := imageExtensions[strings.ToLower(n.name[dot+1:])]
	return ok
}

// StorageEntry is one child of a listed directory: a validated name plus
// whether it is a directory. Entries are produced transiently during a
// listing and converted straight to DTOs; nothing retains them.
type StorageEntry struct {
	name  EntryName
	isDir bool
}

// NewStorageEntry builds an entry from a scanned directory child.
func NewStorageEntry(name EntryName, isDir bool) StorageEntry {
	return StorageEntry{name: name, isDir: isDir}
}

// Name returns the entry's validated name.
func (e StorageEntry) Name() EntryName {
	return e.name
}

// IsDirectory reports whether the entry is a directory.
func (e StorageEntry) IsDirectory() bool {
	return e.isDir
}

// IsImage reports whether the entry is an image file. Directories are never
// images regardless of their name.
func (e StorageEntry) IsImage() bool {
	return !e.isDir && e.name.IsImage()
}

// EntryDTO is the transport-facing projection of a StorageEntry.
type EntryDTO struct {
	Name        string `json:"name"`
	IsDirectory bool   `json:"is_directory"`
	IsImage     bool   `json:"is_image"`
}

// DTO converts the entry to its transport form.
func (e StorageEntry) DTO() EntryDTO {
	return EntryDTO{
		Name:        e.name.String(),
		IsDirectory: e.isDir,
		IsImage:     e.IsImage(),
	}
}
