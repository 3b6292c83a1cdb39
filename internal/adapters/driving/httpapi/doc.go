// Package httpapi exposes extraction and scanning over a small JSON HTTP API.
//
// Routes:
//
//	GET    /health
//	POST   /v1/extract
//	POST   /v1/scan/start
//	POST   /v1/scan/stop
//	GET    /v1/scan/status
//	GET    /v1/history?limit=N
//	GET    /v1/history/{id}
//	DELETE /v1/history
//	DELETE /v1/history/{id}
package httpapi
