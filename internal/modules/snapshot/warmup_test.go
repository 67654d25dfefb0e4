package snapshot

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type hitCounter struct {
	mu   sync.Mutex
	hits map[string]int
}

func newHitServer() (*httptest.Server, *hitCounter) {
	c := &hitCounter{hits: make(map[string]int)}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		c.hits[r.URL.Path]++
		c.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	return srv, c
}

func (c *hitCounter) count(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits[path]
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestWarmerFetchesEachURLOnce(t *testing.T) {
	srv, hits := newHitServer()
	defer srv.Close()

	w := NewWarmer()
	urls := []string{srv.URL + "/a.jpg", srv.URL + "/b.jpg"}
	w.Warm(urls)
	waitFor(t, func() bool {
		return hits.count("/a.jpg") == 1 && hits.count("/b.jpg") == 1
	})

	// A second round with the same URLs is a no-op.
	w.Warm(urls)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, hits.count("/a.jpg"))
	assert.Equal(t, 1, hits.count("/b.jpg"))
}

func TestWarmerIgnoresBrokenURLs(t *testing.T) {
	srv, hits := newHitServer()
	defer srv.Close()

	w := NewWarmer()
	w.Warm([]string{"http://127.0.0.1:1/broken.jpg", srv.URL + "/good.jpg"})

	waitFor(t, func() bool { return hits.count("/good.jpg") == 1 })
}
