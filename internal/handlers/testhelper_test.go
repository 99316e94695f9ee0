package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/pushkind/filehub/internal/auth"
	"github.com/pushkind/filehub/internal/handlers"
	"github.com/pushkind/filehub/pkg/health"
	"github.com/pushkind/filehub/pkg/logger"
	"github.com/pushkind/filehub/pkg/storage"
)

var testSecret = []byte("handler-test-secret")

const testAuthServiceURL = "https://auth.example.com"

// newTestRouter builds the full HTTP surface around a service rooted in a
// fresh temp dir.
func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()

	dir := t.TempDir()
	root, err := storage.NewUploadRoot(dir)
	require.NoError(t, err)

	svc, err := storage.NewFileService(storage.Config{UploadRoot: root})
	require.NoError(t, err)

	router := handlers.NewRouter(logger.Discard(), handlers.Config{
		Secret:         testSecret,
		AuthServiceURL: testAuthServiceURL,
		CookieDomain:   "files.example.com",
		MaxUploadBytes: 1 << 20,
		ReadyChecks:    health.Checks{},
	}, svc)

	return router, dir
}

// authCookie returns a session cookie for the given hub and roles.
func authCookie(t *testing.T, hub int64, roles ...string) *http.Cookie {
	t.Helper()

	signed, err := auth.NewToken(testSecret, auth.Claims{
		Email: "user@example.com",
		HubID: hub,
		Name:  "Test User",
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "user-1",
		},
	})
	require.NoError(t, err)

	return &http.Cookie{Name: auth.CookieName, Value: signed}
}

// doRequest runs one request through the router and returns the recorder.
func doRequest(t *testing.T, router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a JSON response body into a generic envelope.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// uploadFile is one named part for multipartBody.
type uploadFile struct {
	name    string
	content []byte
}

// multipartBody builds an upload request body with a path field and the given
// file parts.
func multipartBody(t *testing.T, path string, files ...uploadFile) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("path", path))
	for _, f := range files {
		part, err := mw.CreateFormFile("image", f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}
