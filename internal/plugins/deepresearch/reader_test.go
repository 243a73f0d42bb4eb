package deepresearch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIsPDFURL(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://example.com/paper.pdf", true},
		{"https://example.com/paper.PDF", true},
		{"https://example.com/paper.pdf?download=1", true},
		{"http://arxiv.org/pdf/2506.18783v1", true},
		{"https://drive.google.com/uc?export=download&id=abc", true},
		{"https://journal.org/download/pdf/123", true},
		{"https://example.com/article", false},
		{"https://example.com/pdfviewer.html", false},
	}
	for _, c := range cases {
		if got := isPDFURL(c.url); got != c.want {
			t.Errorf("isPDFURL(%q) = %v, want %v", c.url, got, c.want)
		}
	}
}

func TestExtractReferences(t *testing.T) {
	text := `As shown in prior work [1] Smith et al., Deep Research Agents, 2024
and the preprint arXiv:2506.18783v1 with DOI 10.1234/example.5678 attached.`

	refs := extractReferences(text)
	if len(refs) != 3 {
		t.Fatalf("got %d references: %v", len(refs), refs)
	}
	if !strings.HasPrefix(refs[0], "[1] Smith") {
		t.Errorf("bracket ref = %q", refs[0])
	}
	if refs[1] != "DOI: 10.1234/example.5678" {
		t.Errorf("doi ref = %q", refs[1])
	}
	if refs[2] != "arXiv:2506.18783v1" {
		t.Errorf("arxiv ref = %q", refs[2])
	}
}

func TestExtractReferencesCap(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 80; i++ {
		fmt.Fprintf(&sb, "[%d] Reference entry number %d with enough text\n", i, i)
	}
	if refs := extractReferences(sb.String()); len(refs) != maxReferences {
		t.Errorf("reference cap = %d, want %d", len(refs), maxReferences)
	}
}

func TestReportTruncation(t *testing.T) {
	report := readReport{
		Title:       "Long",
		URL:         "https://example.com",
		ContentType: "HTML",
		Content:     strings.Repeat("a", maxContentChars+100),
	}
	out := report.Markdown()
	if !strings.Contains(out, "(content truncated)") {
		t.Error("oversized content should be truncated")
	}
	if len(out) > maxContentChars+500 {
		t.Errorf("report too large: %d chars", len(out))
	}
}

func TestReaderToolHTML(t *testing.T) {
	const page = `<!DOCTYPE html>
<html><head><title>Test Article</title></head>
<body><article>
<h1>Test Article</h1>
<p>The quick brown fox jumps over the lazy dog. This paragraph exists so the
readability extractor has a main body of text to find and keep, rather than
discarding the page as boilerplate. See also reference [1] An Important Prior Work, 2020.</p>
<p>A second paragraph keeps the extraction confident about the article body.</p>
</article></body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	tool := NewReaderTool()
	out, err := tool.Execute(context.Background(), fmt.Sprintf(`{"url":%q}`, srv.URL+"/article"))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out, "quick brown fox") {
		t.Errorf("content missing from report:\n%s", out)
	}
	if !strings.Contains(out, "**Type**: HTML") {
		t.Error("report should carry content type metadata")
	}
	if !strings.Contains(out, "## References") {
		t.Error("report should list extracted references")
	}
}

func TestReaderToolErrors(t *testing.T) {
	tool := NewReaderTool()

	if _, err := tool.Execute(context.Background(), `{"url":"ftp://example.com/x"}`); err == nil {
		t.Error("non-http scheme should error")
	}
	if _, err := tool.Execute(context.Background(), `{bad json`); err == nil {
		t.Error("malformed arguments should error")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := tool.Execute(context.Background(), fmt.Sprintf(`{"url":%q}`, srv.URL)); err == nil {
		t.Error("404 response should error")
	}
}
