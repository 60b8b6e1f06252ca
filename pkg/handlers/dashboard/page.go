package dashboard

import (
	_ "embed"
	"net/http"

	"github.com/rs/zerolog"
)

//go:embed index.html
var indexPage []byte

// Index serves the dashboard page. All interactivity happens client-side
// against the JSON endpoints.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := w.Write(indexPage); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write index page")
	}
}
