package snapshot

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// warmupCeiling bounds how long a warm-up round may run. Slow origins
// must not hold the snapshot hostage.
const warmupCeiling = 3 * time.Second

// Warmer pre-fetches critical image URLs so the CDN and any intermediate
// caches are hot before the first real visitor. Each URL is warmed at
// most once per process.
type Warmer struct {
	client *http.Client

	mu   sync.Mutex
	done map[string]bool
}

func NewWarmer() *Warmer {
	return &Warmer{
		client: &http.Client{Timeout: warmupCeiling},
		done:   make(map[string]bool),
	}
}

// Warm fires and forgets; fetch errors are irrelevant to callers.
func (w *Warmer) Warm(urls []string) {
	pending := w.claim(urls)
	if len(pending) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), warmupCeiling)
		defer cancel()
		var wg sync.WaitGroup
		for _, u := range pending {
			wg.Add(1)
			go func(u string) {
				defer wg.Done()
				w.fetch(ctx, u)
			}(u)
		}
		wg.Wait()
	}()
}

func (w *Warmer) claim(urls []string) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var pending []string
	for _, u := range urls {
		if !w.done[u] {
			w.done[u] = true
			pending = append(pending, u)
		}
	}
	return pending
}

func (w *Warmer) fetch(ctx context.Context, url string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}
