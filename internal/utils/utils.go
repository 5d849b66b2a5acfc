package utils

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ImplementationHashtable - Command line name selecting the assocmap backed model
const ImplementationHashtable = "hashtable"

// ImplementationMap - Command line name selecting the native map backed model
const ImplementationMap = "map"

// ParseLogLevel - Returns the slog level for a level name, info for anything unknown
func ParseLogLevel(name string) (level slog.Level) {
	switch strings.ToLower(name) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return
}

// ParseImplementation - Returns true if name selects the assocmap backed model, false for the native map
func ParseImplementation(name string) (useCustomMap bool, err error) {
	switch name {
	case ImplementationHashtable:
		useCustomMap = true
	case ImplementationMap:
		useCustomMap = false
	default:
		err = fmt.Errorf("implementation must either be '%s' or '%s', got '%s'", ImplementationHashtable, ImplementationMap, name)
	}

	return
}

// ImplementationName - Returns the command line name of the implementation selected by useCustomMap
func ImplementationName(useCustomMap bool) string {
	if useCustomMap {
		return ImplementationHashtable
	}
	return ImplementationMap
}

// ReadTexts - Reads every named file in full and returns the contents in the same order
func ReadTexts(fileNames ...string) (texts []string, err error) {
	texts = make([]string, len(fileNames))
	for i, fileName := range fileNames {
		var data []byte
		data, err = os.ReadFile(fileName)
		if err != nil {
			err = fmt.Errorf("error while reading %s: %w", fileName, err)
			texts = nil
			return
		}
		texts[i] = string(data)
	}

	return
}
