package render

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kolah/asyncmodel/asyncapi"
	"go.yaml.in/yaml/v4"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Value writes a raw document value. Text output uses the YAML layout.
func Value(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		return JSON(w, v)
	case FormatYAML, FormatText, "":
		return YAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// JSON writes v as indented JSON. Objects encode themselves in key order.
func JSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s value as JSON: %w", asyncapi.KindOf(v), err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// Inline formats v on a single line: strings verbatim, anything else as
// compact JSON.
func Inline(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(out)
}

// YAML writes v as a YAML document. Objects encode themselves in key order.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// Table writes rows as aligned columns under header.
func Table(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeRow(tw, header)
	for _, row := range rows {
		writeRow(tw, row)
	}
	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}
