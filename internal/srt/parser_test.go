package srt

import "testing"

func TestParseWellFormed(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.

3
00:00:10,000 --> 00:00:12,500
Final subtitle.
`
	report := Parse(content)

	if len(report.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(report.Blocks))
	}
	if report.Fallbacks != 0 {
		t.Errorf("expected no fallbacks, got %d", report.Fallbacks)
	}
	if report.Skipped != 0 {
		t.Errorf("expected no skipped chunks, got %d", report.Skipped)
	}

	if report.Blocks[0].Index != 1 {
		t.Errorf("block 0: expected index 1, got %d", report.Blocks[0].Index)
	}
	if report.Blocks[0].TimeRange != "00:00:01,000 --> 00:00:04,000" {
		t.Errorf("block 0: unexpected time range %q", report.Blocks[0].TimeRange)
	}
	if report.Blocks[0].Text != "Hello, world!" {
		t.Errorf("block 0: unexpected text %q", report.Blocks[0].Text)
	}
	if report.Blocks[1].Text != "This is a test.\nWith multiple lines." {
		t.Errorf("block 1: unexpected text %q", report.Blocks[1].Text)
	}
}

func TestParseAssignsFallbackNumbers(t *testing.T) {
	// first chunk has no index line, third has a corrupted one
	content := `00:00:01,000 --> 00:00:02,000
Anonymous cue.

2
00:00:03,000 --> 00:00:04,000
Numbered cue.

###
00:00:05,000 --> 00:00:06,000
Corrupted index.
`
	report := Parse(content)

	if len(report.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(report.Blocks))
	}
	if report.Fallbacks != 2 {
		t.Errorf("expected 2 fallbacks, got %d", report.Fallbacks)
	}

	wantIndices := []int{1, 2, 3}
	for i, want := range wantIndices {
		if report.Blocks[i].Index != want {
			t.Errorf("block %d: expected index %d, got %d", i, want, report.Blocks[i].Index)
		}
	}
}

func TestParseConsecutiveAnonymousChunks(t *testing.T) {
	content := `00:00:01,000 --> 00:00:02,000
First anonymous.

00:00:03,000 --> 00:00:04,000
Second anonymous.
`
	blocks := ParseBlocks(content)

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Index != 1 || blocks[1].Index != 2 {
		t.Errorf("expected consecutive fallback numbers 1, 2; got %d, %d",
			blocks[0].Index, blocks[1].Index)
	}
}

func TestParseDropsChunksWithoutTimeLine(t *testing.T) {
	content := `Some stray metadata
that is not a cue

1
00:00:01,000 --> 00:00:02,000
Real cue.
`
	report := Parse(content)

	if len(report.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(report.Blocks))
	}
	if report.Skipped != 1 {
		t.Errorf("expected 1 skipped chunk, got %d", report.Skipped)
	}
	if report.Blocks[0].Text != "Real cue." {
		t.Errorf("unexpected text %q", report.Blocks[0].Text)
	}
}

func TestParsePreservesEmptyText(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:02,000

2
00:00:03,000 --> 00:00:04,000
Text.
`
	blocks := ParseBlocks(content)

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Text != "" {
		t.Errorf("expected empty text, got %q", blocks[0].Text)
	}
}

func TestParseStripsBOM(t *testing.T) {
	content := "\ufeff1\n00:00:01,000 --> 00:00:02,000\nText.\n"
	blocks := ParseBlocks(content)

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Index != 1 {
		t.Errorf("expected index 1, got %d", blocks[0].Index)
	}
}

func TestParseCRLFContent(t *testing.T) {
	// Windows-saved files delimit blocks with \r\n\r\n
	content := "1\r\n00:00:01,000 --> 00:00:02,000\r\nHello.\r\n\r\n" +
		"2\r\n00:00:03,000 --> 00:00:04,000\r\nWorld.\r\n"
	blocks := ParseBlocks(content)

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Text != "Hello." {
		t.Errorf("block 1 text = %q", blocks[0].Text)
	}
	if blocks[1].TimeRange != "00:00:03,000 --> 00:00:04,000" {
		t.Errorf("block 2 time range = %q", blocks[1].TimeRange)
	}
	if blocks[1].Text != "World." {
		t.Errorf("block 2 text = %q", blocks[1].Text)
	}
}

func TestParseAnchorEmbeddedInLine(t *testing.T) {
	// the time range may carry surrounding junk on the same line
	content := `1
  00:00:01,000 --> 00:00:02,000
Text.
`
	blocks := ParseBlocks(content)

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].TimeRange != "00:00:01,000 --> 00:00:02,000" {
		t.Errorf("unexpected time range %q", blocks[0].TimeRange)
	}
}

func TestParseKeepsFileOrderAndIndices(t *testing.T) {
	// out-of-order indices are not re-sorted and not renumbered
	content := `7
00:00:05,000 --> 00:00:06,000
Later cue first.

3
00:00:01,000 --> 00:00:02,000
Earlier cue second.
`
	blocks := ParseBlocks(content)

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Index != 7 || blocks[1].Index != 3 {
		t.Errorf("expected stored indices 7, 3; got %d, %d", blocks[0].Index, blocks[1].Index)
	}
}

func TestBlockTimes(t *testing.T) {
	block := Block{TimeRange: "00:00:01,000 --> 00:00:02,500"}
	start, end, err := block.Times()
	if err != nil {
		t.Fatalf("Times returned error: %v", err)
	}
	if start.Milliseconds() != 1000 || end.Milliseconds() != 2500 {
		t.Errorf("Times = %v, %v", start, end)
	}

	bad := Block{TimeRange: "garbage"}
	if _, _, err := bad.Times(); err == nil {
		t.Error("expected error for malformed time range")
	}
}
