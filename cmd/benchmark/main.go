package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gostonefire/speakerid/internal/utils"
	"github.com/gostonefire/speakerid/speaker"
)

func main() {
	configPath := flag.String("config", "benchmark.json", "path to the benchmark configuration file")
	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [-config path] <filenameA> <filenameB> <filenameC>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	baseLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(baseLogger)

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*configPath, flag.Args(), os.Stderr); err != nil {
		slog.Error("Benchmark failed", "error", err)
		os.Exit(1)
	}
}

// run - Times both implementations over the three texts and writes the averaged results
//   - progress receives the progress bar of the measurements
func run(configPath string, fileNames []string, progress io.Writer) error {
	if len(fileNames) != 3 {
		return fmt.Errorf("expected 3 files, got %d", len(fileNames))
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: utils.ParseLogLevel(config.LogLevel)}))

	texts, err := utils.ReadTexts(fileNames...)
	if err != nil {
		return err
	}

	logger.Info("Starting benchmark", "max_k", config.MaxK, "runs", config.Runs)

	measurements, err := Measure(speaker.NewIdentifier(logger), logger, [3]string{texts[0], texts[1], texts[2]}, config, progress)
	if err != nil {
		return err
	}

	if err = WriteCSV(config.OutputPath, Summarize(measurements)); err != nil {
		return err
	}

	logger.Info("Benchmark results written", "path", config.OutputPath, "measurements", len(measurements))

	return nil
}
