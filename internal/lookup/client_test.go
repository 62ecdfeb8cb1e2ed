package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExplain_FirstParagraph(t *testing.T) {
	var gotPath, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><body>
			<div><p>  An account was successfully logged on. </p></div>
			<p>unrelated second paragraph</p>
		</body></html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	got, err := c.Explain(context.Background(), "4624")
	if err != nil {
		t.Fatal(err)
	}
	if got != "An account was successfully logged on." {
		t.Errorf("Explain = %q", got)
	}
	if gotPath != "/securitylog/encyclopedia/event.aspx?eventid=4624" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAgent == "" || gotAgent == "Go-http-client/1.1" {
		t.Errorf("browser User-Agent not sent: %q", gotAgent)
	}
}

func TestExplain_NoParagraph(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div>no paragraphs at all</div></body></html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	got, err := c.Explain(context.Background(), "1")
	if err != nil {
		t.Fatal(err)
	}
	if got != NotFoundExplanation {
		t.Errorf("Explain = %q, want NotFoundExplanation", got)
	}
}

func TestExplain_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.Explain(context.Background(), "1"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestExplain_NetworkError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	if _, err := c.Explain(context.Background(), "1"); err == nil {
		t.Fatal("expected error for unreachable host")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", 0)
	if c.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q", c.BaseURL)
	}
	if c.HTTPClient.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v", c.HTTPClient.Timeout)
	}
}
