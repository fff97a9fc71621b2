package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Gzip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gzip", r.Header.Get("Accept-Encoding"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))

		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		zw.Write([]byte("work_year,salary_in_usd\n"))
		zw.Close()
		w.Header().Set("Content-Encoding", "gzip")
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	body, err := Fetch(context.Background(), CreateHTTPClient(""), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "work_year,salary_in_usd\n", string(body))
}

func TestFetch_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), CreateHTTPClient(""), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "418")
}

func TestCreateHTTPClient_Proxy(t *testing.T) {
	c := CreateHTTPClient("http://localhost:8080")
	transport, ok := c.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.Proxy)

	req, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)
	proxy, err := transport.Proxy(req)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", proxy.Host)

	assert.Nil(t, CreateHTTPClient("").Transport.(*http.Transport).Proxy)
}
