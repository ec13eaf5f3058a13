package commands

import (
	"net/http"

	"github.com/tftrival/site/internal/services/site/platform/httpx"
	"github.com/tftrival/site/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Commands, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CommandsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.Commands, httpx.MethodNotAllowed(http.MethodGet, http.MethodHead))
	mux.HandleFunc(routepath.CommandsPrefix+"{$}", httpx.MethodNotAllowed(http.MethodGet, http.MethodHead))
	mux.HandleFunc(routepath.CommandsPrefix+"{rest...}", h.handleNotFound)
}
