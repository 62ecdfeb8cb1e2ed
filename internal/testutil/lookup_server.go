package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
)

// LookupServer is a stub of the online Event-ID encyclopedia. It serves a
// fixed explanation inside the page's first <p> element and counts hits.
type LookupServer struct {
	*httptest.Server
	hits atomic.Int64
}

// NewLookupServer starts a stub encyclopedia answering every request with
// explanation. Close it when done.
func NewLookupServer(explanation string) *LookupServer {
	s := &LookupServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body><div><p>" + explanation + "</p><p>second paragraph</p></div></body></html>"))
	}))
	return s
}

// Hits returns how many requests the stub has served.
func (s *LookupServer) Hits() int64 { return s.hits.Load() }

// NewFailingLookupServer starts a stub that always answers 500.
func NewFailingLookupServer() *LookupServer {
	s := &LookupServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	return s
}
