package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pushkind/filehub/internal/auth"
	"github.com/pushkind/filehub/pkg/storage"
)

// multipartMemoryLimit is how much of a parsed form stays in memory before
// spilling to temp files. The request body itself is capped separately.
const multipartMemoryLimit = 32 << 20

// uploadField is the multipart field carrying file parts.
const uploadField = "image"

// FileHandler serves the file management endpoints.
type FileHandler struct {
	log            *slog.Logger
	svc            *storage.FileService
	maxUploadBytes int64
}

// NewFileHandler creates the handler around the file service.
func NewFileHandler(log *slog.Logger, svc *storage.FileService, maxUploadBytes int64) *FileHandler {
	return &FileHandler{
		log:            log,
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
	}
}

// List handles GET /files. The optional path query parameter selects the
// directory inside the caller's hub; empty means the hub root.
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), claims.Identity(), r.URL.Query().Get("path"))
	if err != nil {
		h.fail(w, r, "list entries failed", err)
		return
	}

	respondData(w, http.StatusOK, entries, "")
}

// CreateFolder handles POST /files/folders with form fields name and path.
func (h *FileHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "malformed form")
		return
	}

	err := h.svc.CreateFolder(r.Context(), claims.Identity(), r.PostFormValue("path"), r.PostFormValue("name"))
	if err != nil {
		h.fail(w, r, "create folder failed", err)
		return
	}

	respondData(w, http.StatusCreated, nil, "folder created")
}

// Upload handles POST /files/upload. The multipart body carries any number of
// file parts in the image field plus a path field selecting the target
// directory. Parts without a client file name get a generated one. Responds
// with the stored names in upload order.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			respondError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		respondError(w, http.StatusBadRequest, "malformed upload")
		return
	}

	parts := r.MultipartForm.File[uploadField]
	if len(parts) == 0 {
		respondError(w, http.StatusBadRequest, "no files in upload")
		return
	}
	path := r.PostFormValue("path")

	uploaded := make([]string, 0, len(parts))
	for _, part := range parts {
		file, err := part.Open()
		if err != nil {
			h.fail(w, r, "open upload part failed", err)
			return
		}

		name, err := h.svc.PersistUpload(r.Context(), claims.Identity(), path, part.Filename, file)
		file.Close()
		if err != nil {
			h.fail(w, r, "persist upload failed", err)
			return
		}
		uploaded = append(uploaded, name.String())
	}

	respondData(w, http.StatusCreated, map[string]any{"uploaded": uploaded}, "")
}

// fail logs server-side failures and writes the mapped error response.
func (h *FileHandler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status, public := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), msg, slog.String("error", err.Error()))
	}
	respondError(w, status, public)
}
