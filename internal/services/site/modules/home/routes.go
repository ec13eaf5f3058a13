package home

import (
	"net/http"

	"github.com/tftrival/site/internal/services/site/platform/httpx"
	"github.com/tftrival/site/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.Root+"{$}", httpx.MethodNotAllowed(http.MethodGet, http.MethodHead))
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{page}", h.handlePage)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
