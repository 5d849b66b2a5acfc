package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gostonefire/speakerid/internal/utils"
	"github.com/gostonefire/speakerid/speaker"
	"github.com/natefinch/atomic"
	"gonum.org/v1/gonum/stat"
)

// Measurement - Wall clock time of one identification
type Measurement struct {
	Implementation string
	K              int
	Run            int
	Elapsed        time.Duration
}

// Average - Mean time of all runs for one implementation and order
type Average struct {
	K              int
	Implementation string
	Mean           time.Duration
}

// Measure - Times one identification per implementation, order k in 1..MaxK and run
//   - identifier runs the identifications
//   - logger receives per order debug output
//   - texts are the reference texts of speaker A and B followed by the unattributed text
//   - config gives the highest order and the number of runs
//   - progress receives the progress bar
func Measure(identifier *speaker.Identifier, logger *slog.Logger, texts [3]string, config *Config, progress io.Writer) ([]Measurement, error) {
	total := 2 * config.MaxK * config.Runs
	measurements := make([]Measurement, 0, total)

	bar := pb.New(total).SetWriter(progress).Start()
	defer bar.Finish()

	for _, useCustomMap := range []bool{true, false} {
		implementation := utils.ImplementationName(useCustomMap)
		for k := 1; k <= config.MaxK; k++ {
			for run := 1; run <= config.Runs; run++ {
				start := time.Now()
				if _, err := identifier.Identify(texts[0], texts[1], texts[2], k, useCustomMap); err != nil {
					return nil, fmt.Errorf("identification failed for %s at k=%d: %w", implementation, k, err)
				}
				elapsed := time.Since(start)

				measurements = append(measurements, Measurement{
					Implementation: implementation,
					K:              k,
					Run:            run,
					Elapsed:        elapsed,
				})
				bar.Increment()
			}
			logger.Debug("Order measured", "implementation", implementation, "k", k)
		}
	}

	return measurements, nil
}

// Summarize - Averages the measurements per order and implementation, sorted by order then implementation
func Summarize(measurements []Measurement) []Average {
	type group struct {
		k              int
		implementation string
	}
	elapsed := make(map[group][]float64)
	for _, m := range measurements {
		g := group{k: m.K, implementation: m.Implementation}
		elapsed[g] = append(elapsed[g], float64(m.Elapsed))
	}

	averages := make([]Average, 0, len(elapsed))
	for g, nanos := range elapsed {
		averages = append(averages, Average{
			K:              g.k,
			Implementation: g.implementation,
			Mean:           time.Duration(math.Round(stat.Mean(nanos, nil))),
		})
	}
	sort.Slice(averages, func(i, j int) bool {
		if averages[i].K != averages[j].K {
			return averages[i].K < averages[j].K
		}
		return averages[i].Implementation < averages[j].Implementation
	})

	return averages
}

// WriteCSV - Atomically writes the averages to path with a header row
func WriteCSV(path string, averages []Average) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"k", "implementation", "mean_seconds"}}
	for _, a := range averages {
		records = append(records, []string{
			strconv.Itoa(a.K),
			a.Implementation,
			strconv.FormatFloat(a.Mean.Seconds(), 'f', -1, 64),
		})
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	return nil
}
