package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitForStatus(t *testing.T) {
	assert.Equal(t, exitOK, exitForStatus(http.StatusOK))
	assert.Equal(t, exitOK, exitForStatus(http.StatusAccepted))
	assert.Equal(t, exitConfig, exitForStatus(http.StatusBadRequest),
		"a rejected envelope is the caller's mistake, not a runtime failure")
	assert.Equal(t, exitConfig, exitForStatus(http.StatusNotFound))
	assert.Equal(t, exitRuntime, exitForStatus(http.StatusInternalServerError))
	assert.Equal(t, exitRuntime, exitForStatus(http.StatusBadGateway))
}

func TestPostDaemonCarriesTraceContext(t *testing.T) {
	t.Setenv("TRACEPARENT", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")

	var gotTraceParent, gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceParent = r.Header.Get("traceparent")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := postDaemon(srv.URL, []byte(`{"ping":true}`))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, gotTraceParent, "4bf92f3577b34da6a3ce929d0e0e4736")
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, `{"ping":true}`, gotBody)
}
