package driver

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// DocumentationHTTPHandler serves the OpenAPI document as JSON.
type DocumentationHTTPHandler struct {
	doc *openapi3.T
}

// NewDocumentationHTTPHandler creates a new HTTP handler for the API document.
func NewDocumentationHTTPHandler(doc *openapi3.T) *DocumentationHTTPHandler {
	return &DocumentationHTTPHandler{doc: doc}
}

// ServeHTTP handles GET /openapi.json
func (h *DocumentationHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, h.doc)
}
