package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pushkind/filehub/internal/auth"
	"github.com/pushkind/filehub/internal/middleware"
	"github.com/pushkind/filehub/pkg/health"
	"github.com/pushkind/filehub/pkg/storage"
)

// compressionLevel balances CPU cost against transfer size for JSON responses.
const compressionLevel = 5

// Config carries the wiring the router needs from the application config.
type Config struct {
	// Secret verifies session tokens.
	Secret []byte

	// AuthServiceURL receives unauthenticated browsers.
	AuthServiceURL string

	// CookieDomain scopes the session cookie cleared on logout.
	CookieDomain string

	// MaxUploadBytes caps a single upload request body.
	MaxUploadBytes int64

	// ReadyChecks feed the readiness probe.
	ReadyChecks health.Checks
}

// NewRouter assembles the full HTTP surface: middleware stack, health probes,
// and the authenticated file management routes.
func NewRouter(log *slog.Logger, cfg Config, svc *storage.FileService) http.Handler {
	files := NewFileHandler(log, svc, cfg.MaxUploadBytes)
	session := NewSessionHandler(cfg.CookieDomain)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS(middleware.WithAllowCredentials()))
	r.Use(chimiddleware.Compress(compressionLevel))

	// Probes stay public so orchestrators can reach them without a token.
	r.Get("/healthz", health.LivenessHandler())
	r.Get("/readyz", health.ReadinessHandler(log, cfg.ReadyChecks))

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(cfg.Secret, cfg.AuthServiceURL))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/files", http.StatusSeeOther)
		})

		r.Get("/files", files.List)
		r.Post("/files/folders", files.CreateFolder)
		r.Post("/files/upload", files.Upload)
		r.Get("/upload/*", files.ServeUpload)

		r.Post("/logout", session.Logout)
	})

	return r
}
