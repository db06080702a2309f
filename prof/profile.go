// Package prof collects wall-clock timings of named phases (key draws,
// inversions, instance builds) and prints them per label.
package prof

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

// Stat aggregates all measurements of one label.
type Stat struct {
	Label string
	Count int
	Total time.Duration
	Max   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track records the duration since start under name. Use it as
// defer prof.Track(time.Now(), "label").
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := record
	record = nil
	return out
}

// Summarize groups entries by label, in order of first appearance.
func Summarize(entries []Entry) []Stat {
	idx := make(map[string]int)
	var out []Stat
	for _, e := range entries {
		i, ok := idx[e.Label]
		if !ok {
			i = len(out)
			idx[e.Label] = i
			out = append(out, Stat{Label: e.Label})
		}
		s := &out[i]
		s.Count++
		s.Total += e.Dur
		s.Max = max(s.Max, e.Dur)
	}
	return out
}

// Dump writes and clears the collected timings, one line per label, slowest
// total first.
func Dump(w io.Writer) {
	stats := Summarize(SnapshotAndReset())
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Total > stats[j].Total })
	for _, s := range stats {
		if s.Count == 1 {
			fmt.Fprintf(w, "%s: %v\n", s.Label, s.Total.Round(time.Microsecond))
			continue
		}
		fmt.Fprintf(w, "%s: %v over %d calls (max %v)\n", s.Label,
			s.Total.Round(time.Microsecond), s.Count, s.Max.Round(time.Microsecond))
	}
}
