// Package storage implements hub-scoped file storage on the local filesystem.
//
// Every hub (tenant) owns an isolated subtree under a shared upload root.
// Untrusted path strings are parsed into validated value types before any
// resolution or I/O happens, so no operation can read, write, or enumerate
// outside the caller's hub subtree.
//
// # Basic Usage
//
// Create the service once at startup and call it per request:
//
//	root, err := storage.NewUploadRoot("./upload")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	svc, err := storage.NewFileService(storage.Config{UploadRoot: root})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	id := storage.Identity{Hub: 42, Roles: claims.Roles}
//	entries, err := svc.ListEntries(ctx, id, r.URL.Query().Get("path"))
//
// # Validated Path Types
//
// RelativePath locates a directory inside a hub subtree; EntryName names a
// single file or folder. Both are constructed only through parsing functions
// that reject parent-directory segments, so downstream code never re-checks:
//
//	rel, err := storage.ParseRelativePath("nested/path")   // ok
//	_, err = storage.ParseRelativePath("../../etc")        // ErrInvalidPath
//	name, err := storage.ParseEntryName("photo.png")       // ok
//	_, err = storage.ParseEntryName("a/b.txt")             // ErrInvalidFileName
//
// # Error Handling
//
// Operations fail with sentinel errors, matched via errors.Is:
//
//	entries, err := svc.ListEntries(ctx, id, rawPath)
//	switch {
//	case errors.Is(err, storage.ErrUnauthorized):
//		// caller lacks the required role
//	case errors.Is(err, storage.ErrInvalidPath):
//		// user-correctable input error
//	}
//
// Form-level input failures carry a reason:
//
//	var verr *storage.ValidationError
//	if errors.As(err, &verr) {
//		// verr.Reason
//	}
//
// # Filesystem Layout
//
// Files live at <UploadRoot>/<HubID>/<relative path>/<entry name>.
// Directories are created on demand and never deleted by this package.
// Uploads overwrite existing files of the same name (last write wins).
package storage
