package gateway

import (
	"strings"
	"testing"
)

func TestSplitMessageShort(t *testing.T) {
	chunks := splitMessage("hello", 2000)
	if len(chunks) != 1 || chunks[0] != "hello" {
		t.Errorf("chunks = %v", chunks)
	}
}

func TestSplitMessageLong(t *testing.T) {
	lines := strings.Repeat("a line of output\n", 300)
	chunks := splitMessage(lines, 2000)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	var total int
	for i, c := range chunks {
		if len(c) > 2000 {
			t.Errorf("chunk %d exceeds limit: %d", i, len(c))
		}
		total += len(c)
	}
	if total != len(lines) {
		t.Errorf("content lost in split: %d != %d", total, len(lines))
	}
}

func TestSplitMessageNoNewlines(t *testing.T) {
	text := strings.Repeat("x", 4500)
	chunks := splitMessage(text, 2000)
	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want 3", len(chunks))
	}
	if strings.Join(chunks, "") != text {
		t.Error("content lost in split")
	}
}
