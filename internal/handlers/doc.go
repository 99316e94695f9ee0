// Package handlers exposes the hub file storage over HTTP.
//
// All routes except the health probes sit behind the session token
// middleware. File management endpoints respond with a JSON envelope:
//
//	{"success": true, "data": ...}
//	{"success": false, "error": "invalid path", "code": 400}
//
// Stored files are served back under /upload/, scoped to the caller's hub,
// so one hub can never read another hub's uploads.
package handlers
