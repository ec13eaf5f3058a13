package about

import (
	"net/http"

	"github.com/tftrival/site/internal/services/site/platform/httpx"
	"github.com/tftrival/site/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.About, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AboutPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.About, httpx.MethodNotAllowed(http.MethodGet, http.MethodHead))
	mux.HandleFunc(routepath.AboutPrefix+"{$}", httpx.MethodNotAllowed(http.MethodGet, http.MethodHead))

	mux.Handle(http.MethodPost+" "+routepath.AboutFeedback, h.guardMutation(http.HandlerFunc(h.handleFeedback)))
	mux.HandleFunc(routepath.AboutFeedback, httpx.MethodNotAllowed(http.MethodPost))

	mux.Handle(http.MethodPost+" "+routepath.AboutBugReport, h.guardMutation(http.HandlerFunc(h.handleBugReport)))
	mux.HandleFunc(routepath.AboutBugReport, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(routepath.AboutPrefix+"{rest...}", h.handleNotFound)
}
