package prof

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	stats := Summarize([]Entry{
		{"a", 2 * time.Millisecond},
		{"b", time.Millisecond},
		{"a", 5 * time.Millisecond},
	})
	if len(stats) != 2 || stats[0].Label != "a" || stats[1].Label != "b" {
		t.Fatalf("labels: %+v", stats)
	}
	if a := stats[0]; a.Count != 2 || a.Total != 7*time.Millisecond || a.Max != 5*time.Millisecond {
		t.Fatalf("a: %+v", a)
	}
}

func TestTrackAndDump(t *testing.T) {
	SnapshotAndReset()
	Track(time.Now(), "one")
	Track(time.Now(), "two")
	Track(time.Now(), "two")
	var buf bytes.Buffer
	Dump(&buf)
	out := buf.String()
	if !strings.Contains(out, "one: ") || !strings.Contains(out, "over 2 calls") {
		t.Fatalf("unexpected dump %q", out)
	}
	if n := len(SnapshotAndReset()); n != 0 {
		t.Fatalf("Dump did not reset, %d entries left", n)
	}
}
