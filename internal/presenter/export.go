package presenter

import (
	"encoding/csv"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteCSV writes t as comma-separated text with a header row.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("presenter: write csv header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("presenter: write csv rows: %w", err)
	}
	return nil
}

// WriteYAML writes v as a YAML document.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("presenter: write yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("presenter: write yaml: %w", err)
	}
	return nil
}
