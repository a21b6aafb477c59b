package cover

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("ladenctl-test", 100, 1, nil)
	c.baseURL = srv.URL
	c.coversURL = srv.URL
	return c, srv
}

func TestFindCoverURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Faust I", r.URL.Query().Get("title"))
		assert.Equal(t, "Goethe", r.URL.Query().Get("author"))
		_, _ = w.Write([]byte(`{"numFound": 1, "docs": [{"title": "Faust I", "cover_i": 12345}]}`))
	})
	c, srv := testClient(t, mux)

	u, err := c.FindCoverURL(context.Background(), "Faust I", "Goethe")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/b/id/12345-M.jpg", u)
}

func TestFindCoverURL_SkipsDocsWithoutCover(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"numFound": 2, "docs": [{"title": "A"}, {"title": "B", "cover_i": 7}]}`))
	})
	c, srv := testClient(t, mux)

	u, err := c.FindCoverURL(context.Background(), "A", "B")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/b/id/7-M.jpg", u)
}

func TestFindCoverURL_NoCover(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"numFound": 0, "docs": []}`))
	})
	c, _ := testClient(t, mux)

	_, err := c.FindCoverURL(context.Background(), "Gibt es nicht", "Niemand")
	assert.ErrorIs(t, err, ErrNoCover)
}

func TestFetch_StoresImage(t *testing.T) {
	payload := []byte("jpeg-bytes")
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"numFound": 1, "docs": [{"title": "Faust I", "cover_i": 99}]}`))
	})
	mux.HandleFunc("/b/id/99-M.jpg", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	})
	c, _ := testClient(t, mux)

	dir := NewDir(t.TempDir())
	name, err := c.Fetch(context.Background(), "Faust I", "Goethe", dir)
	require.NoError(t, err)
	assert.Equal(t, "faust-i-goethe.jpg", name)

	data, err := os.ReadFile(dir.Path(name))
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestGet_RetriesOnServerError(t *testing.T) {
	attempts := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"numFound": 1, "docs": [{"title": "X", "cover_i": 1}]}`))
	})
	c, _ := testClient(t, mux)

	_, err := c.FindCoverURL(context.Background(), "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestGet_ClientErrorIsFinal(t *testing.T) {
	attempts := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	})
	c, _ := testClient(t, mux)

	_, err := c.FindCoverURL(context.Background(), "X", "Y")
	assert.Error(t, err)
	assert.Equal(t, 1, attempts, "4xx must not be retried")
}
