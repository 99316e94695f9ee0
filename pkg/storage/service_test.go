package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*FileService, string) {
	t.Helper()

	dir := t.TempDir()
	root, err := NewUploadRoot(dir)
	require.NoError(t, err)

	svc, err := NewFileService(Config{UploadRoot: root})
	require.NoError(t, err)
	return svc, dir
}

func filesIdentity(hub HubID) Identity {
	return Identity{Hub: hub, Roles: []string{DefaultRequiredRole}}
}

func TestNewFileService(t *testing.T) {
	t.Parallel()

	t.Run("missing upload root", func(t *testing.T) {
		t.Parallel()

		_, err := NewFileService(Config{})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("custom required role", func(t *testing.T) {
		t.Parallel()

		root, err := NewUploadRoot(t.TempDir())
		require.NoError(t, err)
		svc, err := NewFileService(Config{UploadRoot: root, RequiredRole: "admin"})
		require.NoError(t, err)

		_, err = svc.ListEntries(context.Background(), Identity{Hub: 1, Roles: []string{"files"}}, "")
		require.ErrorIs(t, err, ErrUnauthorized)

		_, err = svc.ListEntries(context.Background(), Identity{Hub: 1, Roles: []string{"admin"}}, "")
		require.NoError(t, err)
	})
}

func TestListEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("sorted and typed", func(t *testing.T) {
		t.Parallel()

		svc, dir := newTestService(t)
		hubRoot := filepath.Join(dir, "42")
		require.NoError(t, os.MkdirAll(hubRoot, 0o755))
		require.NoError(t, os.Mkdir(filepath.Join(hubRoot, "b_folder"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(hubRoot, "a_file.txt"), []byte("hello"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(hubRoot, "c_image.png"), []byte("fakepng"), 0o644))

		entries, err := svc.ListEntries(ctx, filesIdentity(42), "")
		require.NoError(t, err)

		require.Equal(t, []EntryDTO{
			{Name: "b_folder", IsDirectory: true, IsImage: false},
			{Name: "a_file.txt", IsDirectory: false, IsImage: false},
			{Name: "c_image.png", IsDirectory: false, IsImage: true},
		}, entries)
	})

	t.Run("case-insensitive order within groups", func(t *testing.T) {
		t.Parallel()

		svc, dir := newTestService(t)
		hubRoot := filepath.Join(dir, "3")
		require.NoError(t, os.MkdirAll(filepath.Join(hubRoot, "Zeta"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(hubRoot, "eta"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(hubRoot, "Beta.txt"), nil, 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(hubRoot, "alpha.txt"), nil, 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(hubRoot, "Gamma.txt"), nil, 0o644))

		entries, err := svc.ListEntries(ctx, filesIdentity(3), "")
		require.NoError(t, err)

		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
		}
		require.Equal(t, []string{"eta", "Zeta", "alpha.txt", "Beta.txt", "Gamma.txt"}, names)
	})

	t.Run("missing directory returns empty", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		entries, err := svc.ListEntries(ctx, filesIdentity(99), "nope")
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("fresh hub root lists empty and is created", func(t *testing.T) {
		t.Parallel()

		svc, dir := newTestService(t)
		entries, err := svc.ListEntries(ctx, filesIdentity(11), "")
		require.NoError(t, err)
		require.Empty(t, entries)

		info, err := os.Stat(filepath.Join(dir, "11"))
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})

	t.Run("rejects parent paths", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		_, err := svc.ListEntries(ctx, filesIdentity(1), "../etc")
		require.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("path resolving to a file", func(t *testing.T) {
		t.Parallel()

		svc, dir := newTestService(t)
		hubRoot := filepath.Join(dir, "8")
		require.NoError(t, os.MkdirAll(hubRoot, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(hubRoot, "plain.txt"), []byte("x"), 0o644))

		_, err := svc.ListEntries(ctx, filesIdentity(8), "plain.txt")
		require.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("skips names the API cannot address", func(t *testing.T) {
		t.Parallel()

		svc, dir := newTestService(t)
		hubRoot := filepath.Join(dir, "13")
		require.NoError(t, os.MkdirAll(hubRoot, 0o755))
		// A backslash is a legal name byte on this filesystem but never a
		// valid EntryName, so the child is dropped from the listing.
		require.NoError(t, os.WriteFile(filepath.Join(hubRoot, `we\ird.txt`), []byte("x"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(hubRoot, "fine.txt"), []byte("x"), 0o644))

		entries, err := svc.ListEntries(ctx, filesIdentity(13), "")
		require.NoError(t, err)
		require.Equal(t, []EntryDTO{{Name: "fine.txt", IsDirectory: false, IsImage: false}}, entries)
	})
}

func TestCreateFolder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("builds nested structure idempotently", func(t *testing.T) {
		t.Parallel()

		svc, dir := newTestService(t)
		require.NoError(t, svc.CreateFolder(ctx, filesIdentity(5), "alpha", "beta"))

		info, err := os.Stat(filepath.Join(dir, "5", "alpha", "beta"))
		require.NoError(t, err)
		require.True(t, info.IsDir())

		// Creating an existing folder succeeds silently.
		require.NoError(t, svc.CreateFolder(ctx, filesIdentity(5), "alpha", "beta"))
	})

	t.Run("folder name may be nested", func(t *testing.T) {
		t.Parallel()

		svc, dir := newTestService(t)
		require.NoError(t, svc.CreateFolder(ctx, filesIdentity(5), "", "a/b"))

		info, err := os.Stat(filepath.Join(dir, "5", "a", "b"))
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		err := svc.CreateFolder(ctx, filesIdentity(5), "", "")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("empty name reported before missing role", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		err := svc.CreateFolder(ctx, Identity{Hub: 5}, "", "")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("invalid current path", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		err := svc.CreateFolder(ctx, filesIdentity(2), "../outside", "safe")
		require.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("traversal in folder name", func(t *testing.T) {
		t.Parallel()

		svc, dir := newTestService(t)
		err := svc.CreateFolder(ctx, filesIdentity(2), "", "../evil")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)

		_, statErr := os.Stat(filepath.Join(filepath.Dir(dir), "evil"))
		require.ErrorIs(t, statErr, os.ErrNotExist)
	})

	t.Run("missing role", func(t *testing.T) {
		t.Parallel()

		svc, dir := newTestService(t)
		err := svc.CreateFolder(ctx, Identity{Hub: 6}, "", "docs")
		require.ErrorIs(t, err, ErrUnauthorized)

		_, statErr := os.Stat(filepath.Join(dir, "6"))
		require.ErrorIs(t, statErr, os.ErrNotExist)
	})
}

func TestPersistUpload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes file", func(t *testing.T) {
		t.Parallel()

		svc, dir := newTestService(t)
		name, err := svc.PersistUpload(ctx, filesIdentity(9), "uploads", "note.txt", strings.NewReader("content"))
		require.NoError(t, err)
		require.Equal(t, "note.txt", name.String())

		data, err := os.ReadFile(filepath.Join(dir, "9", "uploads", "note.txt"))
		require.NoError(t, err)
		require.Equal(t, "content", string(data))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		svc, dir := newTestService(t)
		_, err := svc.PersistUpload(ctx, filesIdentity(9), "uploads", "note.txt", strings.NewReader("first version"))
		require.NoError(t, err)
		_, err = svc.PersistUpload(ctx, filesIdentity(9), "uploads", "note.txt", strings.NewReader("second"))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "9", "uploads", "note.txt"))
		require.NoError(t, err)
		require.Equal(t, "second", string(data))
	})

	t.Run("generates a name when none supplied", func(t *testing.T) {
		t.Parallel()

		svc, dir := newTestService(t)
		name, err := svc.PersistUpload(ctx, filesIdentity(4), "", "", bytes.NewReader([]byte{0x89, 0x50}))
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(name.String(), "upload-"), "got %q", name.String())

		_, err = os.Stat(filepath.Join(dir, "4", name.String()))
		require.NoError(t, err)
	})

	t.Run("rejects nested file name", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		_, err := svc.PersistUpload(ctx, filesIdentity(4), "", "a/b.txt", strings.NewReader("x"))
		require.ErrorIs(t, err, ErrInvalidFileName)
	})

	t.Run("rejects traversal path", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)
		_, err := svc.PersistUpload(ctx, filesIdentity(4), "../up", "ok.txt", strings.NewReader("x"))
		require.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("missing role performs no mutation", func(t *testing.T) {
		t.Parallel()

		svc, dir := newTestService(t)
		_, err := svc.PersistUpload(ctx, Identity{Hub: 4}, "uploads", "note.txt", strings.NewReader("x"))
		require.ErrorIs(t, err, ErrUnauthorized)

		children, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Empty(t, children)
	})
}

func TestUnauthorizedPerformsNoMutation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, dir := newTestService(t)
	id := Identity{Hub: 1, Roles: []string{"other"}}

	_, err := svc.ListEntries(ctx, id, "")
	require.ErrorIs(t, err, ErrUnauthorized)

	err = svc.CreateFolder(ctx, id, "", "docs")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.PersistUpload(ctx, id, "", "f.txt", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrUnauthorized)

	children, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, children)
}

func TestFileServiceStorage(t *testing.T) {
	t.Parallel()

	svc, dir := newTestService(t)
	require.Equal(t, filepath.Join(dir, "9"), svc.Storage(9).HubRoot())
}
