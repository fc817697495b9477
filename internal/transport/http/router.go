package http

import (
	"net/http"

	"blended-advisor/internal/app"
	"go.uber.org/zap"
)

// RouterOptions carries the optional pieces of the HTTP surface.
type RouterOptions struct {
	MetricsPath    string
	MetricsHandler http.Handler // nil disables the scrape endpoint
}

// NewRouter mounts health, JSON API, websocket and metrics routes.
func NewRouter(service *app.AdvisorService, log *zap.Logger, opts RouterOptions) *http.ServeMux {
	api := NewAPIHandler(service, log)
	ws := NewWSHandler(service, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /api/questionnaire", api.Questionnaire)
	mux.HandleFunc("POST /api/recommendations", api.Recommend)
	mux.HandleFunc("GET /ws", ws.ServeWS)
	if opts.MetricsHandler != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, opts.MetricsHandler)
	}
	return mux
}
