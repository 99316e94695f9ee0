package handlers

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/pushkind/filehub/internal/auth"
	"github.com/pushkind/filehub/pkg/storage"
)

// ServeUpload handles GET /upload/*, returning a stored file from the
// caller's hub. The wildcard tail goes through the same path validation as
// every other operation, and resolution is pinned to the caller's hub root.
// Directories are not listable here; anything that is not a plain file is a
// 404. No role is required: viewing stored files is open to every hub member,
// managing them is not.
func (h *FileHandler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rel, err := storage.ParseRelativePath(chi.URLParam(r, "*"))
	if err != nil || rel.IsRoot() {
		respondError(w, http.StatusBadRequest, "invalid path")
		return
	}

	target := h.svc.Storage(claims.Identity().Hub).ResolveDir(rel)
	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	http.ServeFile(w, r, target)
}
