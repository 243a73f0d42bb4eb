package deepresearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/go-shiori/go-readability"
	"github.com/ledongthuc/pdf"
	"github.com/microcosm-cc/bluemonday"
)

const (
	readerUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// maxContentChars caps extracted text to keep token usage sane.
	maxContentChars = 50000

	// maxPDFBytes bounds how much of a PDF we are willing to download.
	maxPDFBytes = 32 << 20
)

// ReaderTool fetches a URL and extracts the readable content as markdown.
// PDF links are detected and parsed directly; JS-heavy pages can be
// rendered in a headless browser before extraction.
type ReaderTool struct {
	client *http.Client
}

func NewReaderTool() *ReaderTool {
	return &ReaderTool{
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (r *ReaderTool) Name() string {
	return "read_url"
}

func (r *ReaderTool) Description() string {
	return "Fetch a webpage or PDF URL and extract the main content as clean markdown with title, metadata and references. Set render=true for pages that need JavaScript."
}

func (r *ReaderTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url": map[string]any{
				"type":        "string",
				"description": "The full URL to read (e.g., https://example.com/article or an arXiv PDF link)",
			},
			"render": map[string]any{
				"type":        "boolean",
				"description": "Render the page in a headless browser first; use for JavaScript-heavy sites",
			},
		},
		"required": []string{"url"},
	}
}

func (r *ReaderTool) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		URL    string `json:"url"`
		Render bool   `json:"render"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}

	target, err := url.Parse(args.URL)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL: %v", err)
	}
	if target.Scheme != "http" && target.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme: %q", target.Scheme)
	}

	if isPDFURL(args.URL) {
		return r.readPDF(ctx, args.URL)
	}
	return r.readHTML(ctx, target, args.Render)
}

func (r *ReaderTool) readHTML(ctx context.Context, target *url.URL, render bool) (string, error) {
	var (
		html string
		err  error
	)
	if render {
		html, err = r.renderHTML(ctx, target.String())
	} else {
		html, err = r.fetchHTML(ctx, target.String())
	}
	if err != nil {
		return "", err
	}

	article, err := readability.FromReader(strings.NewReader(html), target)
	if err != nil {
		return "", fmt.Errorf("failed to extract article: %v", err)
	}

	text := bluemonday.StrictPolicy().Sanitize(article.TextContent)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no readable content found at %s", target)
	}

	report := readReport{
		Title:       article.Title,
		Author:      article.Byline,
		URL:         target.String(),
		ContentType: "HTML",
		Content:     text,
		References:  extractReferences(text),
	}
	return report.Markdown(), nil
}

func (r *ReaderTool) fetchHTML(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", readerUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}
	return string(body), nil
}

// renderHTML loads the page in a headless browser and returns the DOM
// after scripts have run. The browser is scoped to this one call.
func (r *ReaderTool) renderHTML(ctx context.Context, rawURL string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.UserAgent(readerUserAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, 60*time.Second)
	defer cancelRun()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(rawURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render page: %v", err)
	}
	return html, nil
}

func (r *ReaderTool) readPDF(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", readerUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch PDF: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch PDF: status code %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPDFBytes))
	if err != nil {
		return "", fmt.Errorf("failed to download PDF: %v", err)
	}

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %v", err)
	}

	var sb strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(&sb, "## Page %d\n\n%s\n\n", i, strings.TrimSpace(text))
	}

	content := strings.TrimSpace(sb.String())
	if content == "" {
		return "", fmt.Errorf("no extractable text in PDF at %s", rawURL)
	}

	report := readReport{
		URL:         rawURL,
		ContentType: "PDF",
		Content:     content,
		References:  extractReferences(content),
	}
	return report.Markdown(), nil
}
