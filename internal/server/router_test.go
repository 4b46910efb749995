package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/flow"
	"github.com/stretchr/testify/assert"
)

// Route parameters are exposed through the request's path values, so
// handlers read them with r.PathValue.
func TestRouteParamsReachPathValue(t *testing.T) {
	mux := flow.New()

	var supplierID string
	mux.HandleFunc("/supplier/:supplierID/view", func(w http.ResponseWriter, r *http.Request) {
		supplierID = r.PathValue("supplierID")
		w.WriteHeader(http.StatusOK)
	}, http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/supplier/x7Kq2/view", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "x7Kq2", supplierID)
}
