// Package lookup queries the online Event-ID encyclopedia for a
// human-readable explanation of a Windows event.
package lookup

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultBaseURL is the public encyclopedia instance.
const DefaultBaseURL = "https://www.ultimatewindowssecurity.com"

// DefaultTimeout bounds one lookup request.
const DefaultTimeout = 10 * time.Second

// The site rejects non-browser agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"

// NotFoundExplanation is returned (and cached) when the page has no
// description for the event.
const NotFoundExplanation = "No explanation found for this Event ID on the online database."

// Client fetches explanations from the encyclopedia. Safe for concurrent use.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// NewClient returns a client for baseURL ("" for the public instance) with
// the given per-request timeout (0 for DefaultTimeout).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		UserAgent:  defaultUserAgent,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Explain fetches the encyclopedia page for eventID and returns the text of
// its first paragraph. Network errors, non-200 responses and unparseable
// pages are returned as errors; the caller degrades them to "N/A".
func (c *Client) Explain(ctx context.Context, eventID string) (string, error) {
	u := c.BaseURL + "/securitylog/encyclopedia/event.aspx?eventid=" + url.QueryEscape(eventID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: %s", u, resp.Status)
	}
	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse explanation page: %w", err)
	}
	if text := firstParagraph(doc); text != "" {
		return text, nil
	}
	return NotFoundExplanation, nil
}

// firstParagraph returns the trimmed text content of the first <p> element
// carrying any text, in document order.
func firstParagraph(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "p" {
		var b strings.Builder
		collectText(n, &b)
		return strings.TrimSpace(b.String())
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text := firstParagraph(c); text != "" {
			return text
		}
	}
	return ""
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
