package data

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingServer(t *testing.T, hits *atomic.Int32, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(body))
	}))
}

func TestCachedSource_ServesFromCache(t *testing.T) {
	var hits atomic.Int32
	server := countingServer(t, &hits, `{"title":"T"}`)
	defer server.Close()

	source, err := NewHTTPSource(server.URL, nil)
	require.NoError(t, err)

	cached := NewCachedSource(source, &CachedSourceConfig{
		Dir: t.TempDir(),
		TTL: time.Hour,
	})

	body, err := cached.Get(context.Background(), "site")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"T"}`, string(body))

	// Second read comes from disk, not the server.
	body, err = cached.Get(context.Background(), "site")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"T"}`, string(body))
	assert.Equal(t, int32(1), hits.Load())
}

func TestCachedSource_ExpiredEntryRefetches(t *testing.T) {
	var hits atomic.Int32
	server := countingServer(t, &hits, `{}`)
	defer server.Close()

	source, err := NewHTTPSource(server.URL, nil)
	require.NoError(t, err)

	cached := NewCachedSource(source, &CachedSourceConfig{
		Dir: t.TempDir(),
		TTL: time.Nanosecond,
	})

	_, err = cached.Get(context.Background(), "site")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = cached.Get(context.Background(), "site")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCachedSource_SkipCache(t *testing.T) {
	var hits atomic.Int32
	server := countingServer(t, &hits, `{}`)
	defer server.Close()

	source, err := NewHTTPSource(server.URL, nil)
	require.NoError(t, err)

	cached := NewCachedSource(source, &CachedSourceConfig{
		Dir:       t.TempDir(),
		TTL:       time.Hour,
		SkipCache: true,
	})

	for range 3 {
		_, err = cached.Get(context.Background(), "site")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), hits.Load())
}

func TestCachedSource_Invalidate(t *testing.T) {
	var hits atomic.Int32
	server := countingServer(t, &hits, `{}`)
	defer server.Close()

	source, err := NewHTTPSource(server.URL, nil)
	require.NoError(t, err)

	cached := NewCachedSource(source, &CachedSourceConfig{
		Dir: t.TempDir(),
		TTL: time.Hour,
	})

	_, err = cached.Get(context.Background(), "site")
	require.NoError(t, err)
	require.NoError(t, cached.Invalidate("site"))

	_, err = cached.Get(context.Background(), "site")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCachedSource_FetchErrorNotCached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	source, err := NewHTTPSource(server.URL, nil)
	require.NoError(t, err)

	cached := NewCachedSource(source, &CachedSourceConfig{Dir: t.TempDir(), TTL: time.Hour})
	_, err = cached.Get(context.Background(), "site")
	require.Error(t, err)

	// The failure must not leave a cache entry behind.
	_, ok := cached.readFresh("site")
	assert.False(t, ok)
}
