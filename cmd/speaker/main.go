package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/gostonefire/speakerid/internal/utils"
	"github.com/gostonefire/speakerid/speaker"
)

var errUsage = errors.New("usage")

func usage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Usage: %s [-log-level level] <filenameA> <filenameB> <filenameC> <k> <%s|%s>\n",
		os.Args[0], utils.ImplementationHashtable, utils.ImplementationMap)
}

func main() {
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Usage = func() {
		usage(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: utils.ParseLogLevel(*logLevel)}))
	slog.SetDefault(logger)

	if err := run(flag.Args(), os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			usage(os.Stderr)
		}
		logger.Error("Speaker identification failed", "error", err)
		os.Exit(1)
	}
}

// run - Identifies the most likely speaker of the third file and prints the scores and conclusion to w
func run(args []string, w io.Writer, logger *slog.Logger) error {
	if len(args) != 5 {
		return fmt.Errorf("%w: expected 5 arguments, got %d", errUsage, len(args))
	}

	k, err := strconv.Atoi(args[3])
	if err != nil || k < 1 {
		return fmt.Errorf("%w: k must be a positive integer, got '%s'", errUsage, args[3])
	}

	useCustomMap, err := utils.ParseImplementation(args[4])
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	texts, err := utils.ReadTexts(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	logger.Info("Identifying speaker",
		slog.String("speaker_a", args[0]),
		slog.String("speaker_b", args[1]),
		slog.String("unknown", args[2]),
		slog.Int("k", k),
		slog.String("implementation", args[4]),
	)

	result, err := speaker.NewIdentifier(logger).Identify(texts[0], texts[1], texts[2], k, useCustomMap)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Speaker A: %v\nSpeaker B: %v\nConclusion: Speaker %s is most likely\n",
		result.ScoreA, result.ScoreB, result.Label)

	return err
}
