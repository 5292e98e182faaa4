/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package cache

import (
	"bytes"
	"net/http"
	"sync"
	"time"
)

// One stored response: everything needed to replay it byte for byte
type cachedResponse struct {
	status  int
	header  http.Header
	body    []byte
	savedAt time.Time
}

// PageCache stores whole rendered GET responses keyed by URL (path + query)
// for a fixed TTL. There is no per-entry eviction and no partial
// invalidation: entries expire on their own or Clear drops everything at
// once. Nothing above it depends on it for correctness, only for freshness.
type PageCache struct {
	lock    sync.RWMutex
	entries map[string]*cachedResponse
	ttl     time.Duration
}

func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		entries: make(map[string]*cachedResponse),
		ttl:     ttl,
	}
}

// Clear drops every cached page at once
func (c *PageCache) Clear() {
	c.lock.Lock()
	c.entries = make(map[string]*cachedResponse)
	c.lock.Unlock()
}

// Middleware replays a stored response when a fresh one exists for the
// request URL, and records the response otherwise. Non-GET requests pass
// through untouched.
func (c *PageCache) Middleware(next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next(w, r)
			return
		}

		key := r.URL.RequestURI()
		if entry := c.get(key); entry != nil {
			replay(w, entry)
			return
		}

		recorder := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next(recorder, r)

		if recorder.status == http.StatusOK {
			c.put(key, &cachedResponse{
				status:  recorder.status,
				header:  w.Header().Clone(),
				body:    recorder.body.Bytes(),
				savedAt: time.Now(),
			})
		}
	}
}

func (c *PageCache) get(key string) *cachedResponse {
	c.lock.RLock()
	defer c.lock.RUnlock()

	entry, ok := c.entries[key]
	if !ok || time.Since(entry.savedAt) > c.ttl {
		return nil
	}
	return entry
}

func (c *PageCache) put(key string, entry *cachedResponse) {
	c.lock.Lock()
	c.entries[key] = entry
	c.lock.Unlock()
}

func replay(w http.ResponseWriter, entry *cachedResponse) {
	for k, vs := range entry.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(entry.status)
	w.Write(entry.body)
}

// responseRecorder tees the response body so it can be stored after serving
type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
