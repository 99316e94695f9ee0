package storage

import "strings"

// RelativePath is a location inside a hub's storage root, guaranteed to
// contain no parent-directory segment. The zero value denotes the hub root
// itself. Values exist only via ParseRelativePath, RootPath, or Join, so
// holders never re-validate.
type RelativePath struct {
	path string
}

// ParseRelativePath validates an untrusted path string. All leading slashes
// are stripped, the remainder is split on "/", and any ".." segment fails
// with ErrInvalidPath. Backslashes fail outright: they are separators on
// some hosts and never legitimate here. The empty string parses to the hub
// root.
func ParseRelativePath(raw string) (RelativePath, error) {
	trimmed := strings.TrimLeft(raw, "/")
	if trimmed == "" {
		return RelativePath{}, nil
	}
	if strings.ContainsRune(trimmed, '\\') {
		return RelativePath{}, ErrInvalidPath
	}
	for _, segment := range strings.Split(trimmed, "/") {
		if segment == ".." {
			return RelativePath{}, ErrInvalidPath
		}
	}
	return RelativePath{path: trimmed}, nil
}

// RootPath returns the hub root location, the identity element for Join.
func RootPath() RelativePath {
	return RelativePath{}
}

// Join appends child below p. Both operands are already validated, so the
// result cannot introduce traversal; there is no failure mode.
func (p RelativePath) Join(child RelativePath) RelativePath {
	switch {
	case p.path == "":
		return child
	case child.path == "":
		return p
	}
	return RelativePath{path: p.path + "/" + child.path}
}

// IsRoot reports whether p denotes the hub root.
func (p RelativePath) IsRoot() bool {
	return p.path == ""
}

// String returns the slash-separated form; empty for the hub root.
func (p RelativePath) String() string {
	return p.path
}

// EntryName is the name of a single filesystem child: exactly one path
// segment, never empty and never "." or "..". Distinct from RelativePath so
// a multi-segment string can never be smuggled in where one name is expected.
type EntryName struct {
	name string
}

// ParseEntryName validates an untrusted name string. Trailing slashes are
// trimmed; what remains must be one normal segment or the parse fails with
// ErrInvalidFileName.
func ParseEntryName(raw string) (EntryName, error) {
	trimmed := strings.TrimRight(raw, "/")
	switch trimmed {
	case "", ".", "..":
		return EntryName{}, ErrInvalidFileName
	}
	if strings.ContainsAny(trimmed, `/\`) {
		return EntryName{}, ErrInvalidFileName
	}
	return EntryName{name: trimmed}, nil
}

// String returns the validated name.
func (n EntryName) String() string {
	return n.name
}
