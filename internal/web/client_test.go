package web_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/konstantinfoerster/card-stacks-go/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, web.DefaultUserAgent, r.Header.Get("user-agent"))
		assert.Equal(t, web.MimeTypeJSON, r.Header.Get("accept"))

		w.Header().Set("content-type", web.MimeTypeJSON)
		_, err := w.Write([]byte(`{"ok": true}`))
		assert.NoError(t, err)
	}))
	t.Cleanup(srv.Close)
	client := web.NewClient(srv.Client())

	opts := web.NewGetOpts().WithHeader(web.HeaderAccept, web.MimeTypeJSON)
	resp, err := client.Get(context.Background(), srv.URL, opts)

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, web.MimeTypeJSON, resp.ContentType)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(body))
}

func TestGetUnexpectedStatusCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	client := web.NewClient(srv.Client())

	_, err := client.Get(context.Background(), srv.URL, web.NewGetOpts())

	require.Error(t, err)
	assert.True(t, web.IsStatusCode(err, http.StatusNotFound))
	assert.False(t, web.IsStatusCode(err, http.StatusInternalServerError))
}

func TestGetExpectedStatusCodeOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)
	client := web.NewClient(srv.Client())

	opts := web.NewGetOpts().WithExpectedCodes(http.StatusOK, http.StatusAccepted)
	resp, err := client.Get(context.Background(), srv.URL, opts)

	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
}

func TestGetCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)
	client := web.NewClient(srv.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, srv.URL, web.NewGetOpts())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClientWithoutHTTPClient(t *testing.T) {
	assert.Panics(t, func() {
		web.NewClient(nil)
	})
}
