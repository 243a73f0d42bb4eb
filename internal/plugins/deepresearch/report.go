package deepresearch

import (
	"fmt"
	"regexp"
	"strings"
)

// readReport is the extracted content of a single URL plus its metadata,
// rendered as a markdown document for the LLM.
type readReport struct {
	Title       string
	Author      string
	URL         string
	ContentType string
	Content     string
	References  []string
}

func (r readReport) Markdown() string {
	var parts []string

	title := r.Title
	if title == "" {
		title = "Untitled"
	}
	parts = append(parts, "# "+title)

	var meta []string
	if r.Author != "" {
		meta = append(meta, "**Author**: "+r.Author)
	}
	meta = append(meta,
		fmt.Sprintf("**Source**: [%s](%s)", r.URL, r.URL),
		"**Type**: "+r.ContentType,
	)
	parts = append(parts, strings.Join(meta, "\n"))

	parts = append(parts, "---")

	content := r.Content
	if len(content) > maxContentChars {
		content = content[:maxContentChars] + "\n... (content truncated) ..."
	}
	parts = append(parts, content)

	if len(r.References) > 0 {
		var sb strings.Builder
		sb.WriteString("## References\n")
		for _, ref := range r.References {
			sb.WriteString("- " + ref + "\n")
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n\n")
}

var (
	bracketRefRe = regexp.MustCompile(`\[(\d+)\]\s*([^\[\]]{10,200})`)
	doiRe        = regexp.MustCompile(`10\.\d{4,}/\S+`)
	arxivRe      = regexp.MustCompile(`(?i)arXiv:\d{4}\.\d{4,5}(?:v\d+)?`)
)

// maxReferences bounds the reference list for very citation-heavy papers.
const maxReferences = 50

// extractReferences pulls citation-like fragments out of extracted text:
// numbered bracket references, DOIs and arXiv identifiers.
func extractReferences(text string) []string {
	var refs []string
	seen := make(map[string]bool)

	add := func(ref string) {
		if len(refs) >= maxReferences || seen[ref] {
			return
		}
		seen[ref] = true
		refs = append(refs, ref)
	}

	for _, m := range bracketRefRe.FindAllStringSubmatch(text, -1) {
		add(fmt.Sprintf("[%s] %s", m[1], strings.TrimSpace(m[2])))
	}
	for _, doi := range doiRe.FindAllString(text, -1) {
		add("DOI: " + doi)
	}
	for _, id := range arxivRe.FindAllString(text, -1) {
		add(id)
	}

	return refs
}

// isPDFURL reports whether a URL very likely points at a PDF document,
// by extension or by well-known PDF service paths.
func isPDFURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	if idx := strings.IndexAny(lower, "?#"); idx >= 0 {
		if strings.HasSuffix(lower[:idx], ".pdf") {
			return true
		}
	} else if strings.HasSuffix(lower, ".pdf") {
		return true
	}

	for _, pattern := range []string{"/pdf/", "/download/pdf", "arxiv.org/pdf", "export=download"} {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
