package reader

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/go-shiori/go-readability"
)

const userAgent = "Mozilla/5.0 (compatible; mlmuse/1.0)"

// Page is the readable extraction of one resource link.
type Page struct {
	Title    string
	Byline   string
	URL      string
	Markdown string
}

// Fetch downloads a resource page, strips navigation and ads, and converts
// the main content to Markdown so it renders in the terminal. Used to
// preview resource links before the student opens a browser.
func Fetch(ctx context.Context, rawURL string) (*Page, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", rawURL, resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, u)
	if err != nil {
		return nil, fmt.Errorf("extract content: %w", err)
	}

	page := &Page{Title: article.Title, Byline: article.Byline, URL: rawURL}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(article.Content)
	if err != nil {
		// Fall back to the plain text extraction rather than failing.
		page.Markdown = article.TextContent
		return page, nil
	}
	page.Markdown = markdown
	return page, nil
}
