package main

import "testing"

func TestBucketHistogramCoversRange(t *testing.T) {
	q := int64(2048)
	h := []int64{-1024, -1, 0, 1023, 5}
	labels, counts := bucketHistogram(h, q, 16)
	if len(labels) != 16 || len(counts) != 16 {
		t.Fatalf("got %d labels, %d counts", len(labels), len(counts))
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != len(h) {
		t.Fatalf("histogram holds %d values, want %d", total, len(h))
	}
	if counts[0] != 1 || counts[15] != 1 {
		t.Fatalf("extreme buckets: %v", counts)
	}
	if labels[0] != "-1024" {
		t.Fatalf("first label %q", labels[0])
	}
}

func TestSmallHistogram(t *testing.T) {
	_, f, g := smallHistogram([]int64{-1, 0, 0, 1}, []int64{2, -2, 0, 0})
	if f[1] != 1 || f[2] != 2 || f[3] != 1 {
		t.Fatalf("f counts %v", f)
	}
	if g[0] != 1 || g[4] != 1 || g[2] != 2 {
		t.Fatalf("g counts %v", g)
	}
}
