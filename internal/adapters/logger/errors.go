package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// messager is satisfied by errors that can report their own message without the chain.
type messager interface {
	Message() string
}

type metadataCarrier interface {
	Metadata() map[string]any
}

// collectErrorEntries walks the chain from the outermost error inward. It stops at the
// first error that cannot report its own message, using its full text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if mc, ok := current.(metadataCarrier); ok {
			entry.Metadata = mc.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}
	return entries
}

func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		lead, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lead, indent = "    → ", "      "
		}

		lines = append(lines, lead+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
