package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"lwe-hints/lwe"
	"lwe-hints/ntru"
	"lwe-hints/ntru/keys"
)

func main() {
	variant := flag.String("variant", "HRSS", "parameter preset")
	seed := flag.String("seed", "", "deterministic seed string (default: system CSPRNG)")
	dir := flag.String("dir", "", "plot the key stored in this directory instead of generating one")
	buckets := flag.Int("buckets", 32, "number of histogram buckets for h")
	outPath := flag.String("out", "key_hist.html", "output HTML file")
	flag.Parse()

	name, par, k := loadOrGenerate(*variant, *seed, *dir)
	if *buckets <= 0 {
		log.Fatalf("buckets must be positive")
	}

	page := components.NewPage().SetPageTitle(fmt.Sprintf("NTRU key coefficients (%s)", name))

	small := charts.NewBar()
	small.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "f and g", Subtitle: fmt.Sprintf("%s n=%d", name, par.N)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	labels, fCounts, gCounts := smallHistogram(k.F, k.G)
	small.SetXAxis(labels).
		AddSeries("f", barData(fCounts)).
		AddSeries("g", barData(gCounts))

	hist := charts.NewBar()
	hist.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "h", Subtitle: fmt.Sprintf("q=%d, %d buckets", par.Q, *buckets)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
	)
	hLabels, hCounts := bucketHistogram(k.H, par.Q, *buckets)
	hist.SetXAxis(hLabels).AddSeries("h", barData(hCounts))

	page.AddCharts(small, hist)

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Printf("Wrote %s | %s n=%d q=%d\n", *outPath, name, par.N, par.Q)
}

func loadOrGenerate(variant, seed, dir string) (string, ntru.Params, ntru.Key) {
	if dir != "" {
		sk, err := keys.LoadPrivate(dir)
		if err != nil {
			log.Fatalf("load private: %v", err)
		}
		par, err := sk.Params()
		if err != nil {
			log.Fatalf("params: %v", err)
		}
		// files written elsewhere may hold h in [0, q)
		return sk.Variant, par, ntru.Key{F: sk.Fsmall, G: sk.Gsmall, H: ntru.CenterModQ(sk.HCoeffs, par.Q)}
	}
	par, err := ntru.Preset(variant)
	if err != nil {
		log.Fatalf("params: %v", err)
	}
	var src io.Reader = ntru.DefaultSource
	if seed != "" {
		src = ntru.NewShakeSource([]byte(seed))
	}
	gen, err := ntru.NewGenerator(par, ntru.GeneratorOpts{Source: src})
	if err != nil {
		log.Fatalf("generator: %v", err)
	}
	_, k, _, err := lwe.DrawKey(gen, 0)
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	return variant, par, k
}

// smallHistogram counts the values -2..2 taken by f and g.
func smallHistogram(f, g []int64) ([]string, []int, []int) {
	const lo, hi = -2, 2
	labels := make([]string, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		labels = append(labels, strconv.Itoa(v))
	}
	count := func(a []int64) []int {
		out := make([]int, hi-lo+1)
		for _, v := range a {
			if v >= lo && v <= hi {
				out[v-lo]++
			}
		}
		return out
	}
	return labels, count(f), count(g)
}

// bucketHistogram splits [-q/2, q/2) into equal buckets.
func bucketHistogram(h []int64, q int64, buckets int) ([]string, []int) {
	width := (q + int64(buckets) - 1) / int64(buckets)
	labels := make([]string, buckets)
	for i := range labels {
		labels[i] = strconv.FormatInt(-q/2+int64(i)*width, 10)
	}
	counts := make([]int, buckets)
	for _, v := range h {
		idx := int((v + q/2) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= buckets {
			idx = buckets - 1
		}
		counts[idx]++
	}
	return labels, counts
}

func barData(counts []int) []opts.BarData {
	items := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		items = append(items, opts.BarData{Value: c})
	}
	return items
}
