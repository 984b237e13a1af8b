package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamquest/internal/config"
)

// Output format names accepted by --output.
const (
	outputFormatTable  = config.OutputFormatTable
	outputFormatJSON   = config.OutputFormatJSON
	outputFormatNDJSON = config.OutputFormatNDJSON

	tabPadding = 2
)

// ErrUnsupportedOutput is returned for an unknown --output value.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// addOutputFlag registers --output with the configured default.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "output", "", "Output format: table, json, or ndjson (default from config)")
}

// resolveOutputFormat returns the requested format, falling back to the
// configured default when empty.
func resolveOutputFormat(requested string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(requested))
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case outputFormatTable, outputFormatJSON, outputFormatNDJSON:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedOutput, format)
	}
}

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderNDJSON writes each item on its own line.
func renderNDJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

// renderStructured handles the json and ndjson formats. It reports false for
// table output so the caller renders text.
func renderStructured[T any](w io.Writer, format string, whole any, items []T) (bool, error) {
	switch format {
	case outputFormatJSON:
		return true, renderJSON(w, whole)
	case outputFormatNDJSON:
		return true, renderNDJSON(w, items)
	default:
		return false, nil
	}
}
