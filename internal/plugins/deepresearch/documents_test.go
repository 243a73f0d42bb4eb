package deepresearch

import (
	"context"
	"strings"
	"testing"
)

func newDocs(t *testing.T) *DocumentsTool {
	t.Helper()
	docs, err := NewDocumentsTool(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return docs
}

func run(t *testing.T, docs *DocumentsTool, input string) string {
	t.Helper()
	out, err := docs.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute(%s) failed: %v", input, err)
	}
	return out
}

func TestDocumentsRoundTrip(t *testing.T) {
	docs := newDocs(t)
	ctx := context.Background()

	if out := run(t, docs, `{"command":"list"}`); out != "No documents yet." {
		t.Errorf("empty list = %q", out)
	}

	run(t, docs, `{"command":"create","filename":"findings","content":"# Findings"}`)

	// The .md suffix is added automatically.
	if out := run(t, docs, `{"command":"list"}`); out != "findings.md" {
		t.Errorf("list = %q", out)
	}

	if _, err := docs.Execute(ctx, `{"command":"create","filename":"findings.md"}`); err == nil {
		t.Error("create over an existing document should fail")
	}

	run(t, docs, `{"command":"append","filename":"findings","content":"## Section"}`)
	if out := run(t, docs, `{"command":"read","filename":"findings"}`); out != "# Findings\n## Section" {
		t.Errorf("read after append = %q", out)
	}

	run(t, docs, `{"command":"write","filename":"findings","content":"replaced"}`)
	if out := run(t, docs, `{"command":"read","filename":"findings"}`); out != "replaced" {
		t.Errorf("read after write = %q", out)
	}

	run(t, docs, `{"command":"delete","filename":"findings"}`)
	if _, err := docs.Execute(ctx, `{"command":"read","filename":"findings"}`); err == nil {
		t.Error("read after delete should fail")
	}
}

func TestDocumentsAppendCreates(t *testing.T) {
	docs := newDocs(t)
	run(t, docs, `{"command":"append","filename":"fresh","content":"first line"}`)
	if out := run(t, docs, `{"command":"read","filename":"fresh"}`); out != "first line" {
		t.Errorf("append to a new document = %q", out)
	}
}

func TestDocumentsPathEscape(t *testing.T) {
	docs := newDocs(t)
	for _, name := range []string{"../outside", "../../etc/passwd"} {
		if _, err := docs.Execute(context.Background(), `{"command":"read","filename":"`+name+`"}`); err == nil || !strings.Contains(err.Error(), "unsafe") {
			t.Errorf("path %q should be rejected as unsafe, got %v", name, err)
		}
	}
}

func TestDocumentsMissingFilename(t *testing.T) {
	docs := newDocs(t)
	if _, err := docs.Execute(context.Background(), `{"command":"read"}`); err == nil {
		t.Error("missing filename should error")
	}
}
