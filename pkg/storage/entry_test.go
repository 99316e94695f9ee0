package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntryNameIsImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"uppercase png", "photo.PNG", true},
		{"jpeg", "x.jpeg", true},
		{"jpg", "scan.jpg", true},
		{"gif", "anim.gif", true},
		{"webp", "pic.webp", true},
		{"bmp", "old.bmp", true},
		{"svg", "logo.svg", true},
		{"mixed case", "Shot.JpEg", true},
		{"text file", "notes.txt", false},
		{"no extension", "noext", false},
		{"dotfile without extension", ".png", false},
		{"hidden file with extension", ".hidden.png", true},
		{"image extension not final", "photo.png.txt", false},
		{"double extension", "archive.tar.gz", false},
		{"trailing dot", "photo.", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entryName, err := ParseEntryName(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.want, entryName.IsImage())
		})
	}
}

func TestStorageEntryDTO(t *testing.T) {
	t.Parallel()

	mustName := func(t *testing.T, raw string) EntryName {
		t.Helper()
		name, err := ParseEntryName(raw)
		require.NoError(t, err)
		return name
	}

	t.Run("image file", func(t *testing.T) {
		t.Parallel()

		entry := NewStorageEntry(mustName(t, "c_image.png"), false)
		require.Equal(t, EntryDTO{Name: "c_image.png", IsDirectory: false, IsImage: true}, entry.DTO())
	})

	t.Run("plain file", func(t *testing.T) {
		t.Parallel()

		entry := NewStorageEntry(mustName(t, "a_file.txt"), false)
		require.Equal(t, EntryDTO{Name: "a_file.txt", IsDirectory: false, IsImage: false}, entry.DTO())
	})

	t.Run("directory is never an image", func(t *testing.T) {
		t.Parallel()

		entry := NewStorageEntry(mustName(t, "gallery.png"), true)
		require.True(t, entry.IsDirectory())
		require.False(t, entry.IsImage())
		require.Equal(t, EntryDTO{Name: "gallery.png", IsDirectory: true, IsImage: false}, entry.DTO())
	})
}
