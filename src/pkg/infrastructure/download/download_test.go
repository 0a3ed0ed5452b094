package download

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "wgpuctl", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/zip")
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	data, err := FetchBytes(context.Background(), srv.Client(), srv.URL, nil)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), data)
}

func TestFetchBytesWithProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte("z"), 4096))
	}))
	defer srv.Close()

	var progress bytes.Buffer
	data, err := FetchBytes(context.Background(), srv.Client(), srv.URL, &progress)
	require.NoError(t, err)
	require.Len(t, data, 4096)
}

func TestFetchBytesDoesNotRetry(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := FetchBytes(context.Background(), srv.Client(), srv.URL, nil)
	require.Error(t, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&hits))
}
