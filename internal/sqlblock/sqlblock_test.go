package sqlblock

import (
	"strings"
	"testing"
)

func TestExtractSingleBlock(t *testing.T) {
	got := Extract("Here:\n```sql\nSELECT 1\n```\nDone.")
	if len(got) != 1 {
		t.Fatalf("expected 1 block, got %d", len(got))
	}
	if !strings.Contains(got[0], "SELECT 1") {
		t.Fatalf("unexpected content: %q", got[0])
	}
}

func TestExtractMultipleBlocks(t *testing.T) {
	got := Extract("A:\n```sql\nSELECT a\n```\nB:\n```sql\nSELECT b\n```")
	if len(got) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(got))
	}
	if got[0] != "SELECT a" || got[1] != "SELECT b" {
		t.Fatalf("blocks out of order: %q", got)
	}
}

func TestExtractNoSQL(t *testing.T) {
	if got := Extract("No SQL here."); len(got) != 0 {
		t.Fatalf("expected no blocks, got %q", got)
	}
}

func TestExtractOtherLanguageIgnored(t *testing.T) {
	if got := Extract("```python\nprint(1)\n```"); len(got) != 0 {
		t.Fatalf("expected no blocks, got %q", got)
	}
	if got := Extract("```\nSELECT 1\n```"); len(got) != 0 {
		t.Fatalf("untagged fence should be ignored, got %q", got)
	}
}

func TestExtractEmptyBlock(t *testing.T) {
	got := Extract("```sql\n```")
	if len(got) != 1 {
		t.Fatalf("expected 1 block, got %d", len(got))
	}
	if got[0] != "" {
		t.Fatalf("expected empty content, got %q", got[0])
	}
}

func TestExtractMultiline(t *testing.T) {
	got := Extract("```sql\nSELECT\n  a,\n  b\nFROM t\n```")
	if len(got) != 1 {
		t.Fatalf("expected 1 block, got %d", len(got))
	}
	if !strings.Contains(got[0], "FROM t") {
		t.Fatalf("unexpected content: %q", got[0])
	}
}

func TestExtractQuotesInside(t *testing.T) {
	got := Extract("```sql\nSELECT \"col\" FROM t WHERE x = 'abc'\n```")
	if len(got) != 1 {
		t.Fatalf("expected 1 block, got %d", len(got))
	}
}

func TestExtractMalformedFence(t *testing.T) {
	// An unterminated fence must not panic and yields nothing.
	if got := Extract("```sql\nSELECT 1"); len(got) != 0 {
		t.Fatalf("expected no blocks, got %q", got)
	}
}
