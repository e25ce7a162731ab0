package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"railway-planner/internal/config"
	"railway-planner/internal/models"
	"railway-planner/internal/repository"
	"railway-planner/internal/sparql"
)

func main() {
	routeA := flag.String("route-a", "https://www.openstreetmap.org/relation/13249292", "First route IRI")
	routeB := flag.String("route-b", "https://www.openstreetmap.org/relation/13249294", "Second route IRI")
	iterations := flag.Int("n", 100, "Number of repetitions")
	bins := flag.Int("bins", 20, "Histogram bins")
	flag.Parse()

	if *iterations < 1 || *bins < 1 {
		fmt.Println("Error: -n and -bins must be positive")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// No cache: every iteration must reach the endpoint.
	client := sparql.NewClient(cfg.OSMEndpoint,
		sparql.WithTimeout(cfg.HTTPTimeout),
		sparql.WithUserAgent(cfg.UserAgent),
	)
	repo := repository.NewOSMRepository(client)

	fmt.Printf("Benchmarking intersection of %s and %s against %s (%d runs)\n", *routeA, *routeB, client.Endpoint(), *iterations)

	durations, err := run(context.Background(), repo, *routeA, *routeB, *iterations)
	if err != nil {
		fmt.Printf("Error running query: %v\n", err)
		os.Exit(1)
	}

	s := summarize(durations)
	fmt.Printf("min %v  avg %v  p50 %v  p95 %v  max %v\n", s.Min, s.Avg, s.P50, s.P95, s.Max)
	fmt.Print(histogram(durations, *bins, 50))
}

type intersector interface {
	Intersections(ctx context.Context, routeA, routeB string) ([]models.StationHit, error)
}

func run(ctx context.Context, repo intersector, routeA, routeB string, n int) ([]time.Duration, error) {
	durations := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		start := time.Now()
		if _, err := repo.Intersections(ctx, routeA, routeB); err != nil {
			return durations, fmt.Errorf("iteration %d: %w", i+1, err)
		}
		durations = append(durations, time.Since(start))
	}
	return durations, nil
}

type summary struct {
	Min, Max, Avg, P50, P95 time.Duration
}

func summarize(durations []time.Duration) summary {
	if len(durations) == 0 {
		return summary{}
	}
	sorted := slices.Clone(durations)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	percentile := func(p float64) time.Duration {
		return sorted[int(p*float64(len(sorted)-1))]
	}
	return summary{
		Min: sorted[0],
		Max: sorted[len(sorted)-1],
		Avg: total / time.Duration(len(sorted)),
		P50: percentile(0.5),
		P95: percentile(0.95),
	}
}

// histogram renders durations as bins rows of '#' bars scaled to width.
// Each bin covers [from, next) except the last, which also holds the maximum.
func histogram(durations []time.Duration, bins, width int) string {
	if len(durations) == 0 {
		return ""
	}
	lo, hi := slices.Min(durations), slices.Max(durations)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	counts := make([]int, bins)
	for _, d := range durations {
		i := int(int64(d-lo) * int64(bins) / int64(span))
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	peak := slices.Max(counts)

	var b strings.Builder
	for i, c := range counts {
		from := lo + span*time.Duration(i)/time.Duration(bins)
		bar := c * width / peak
		fmt.Fprintf(&b, "%12v | %-*s %d\n", from.Round(time.Millisecond), width, strings.Repeat("#", bar), c)
	}
	return b.String()
}
