package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/galaxysim/internal/domain/run"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use table, json or yaml)", format)
	}
}

// writeStructured encodes v as JSON or YAML
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}
}

// exportRecord writes a run to path, as JSON for a .json extension and YAML otherwise
func exportRecord(path string, record *run.Record) error {
	format := outputYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = outputJSON
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := writeStructured(f, format, record); err != nil {
		f.Close()
		return fmt.Errorf("failed to export run: %w", err)
	}
	return f.Close()
}

func printRunHeader(w io.Writer, record *run.Record) {
	fmt.Fprintf(w, "Run %s  %s\n", record.ID, record.Status)
	p := record.Parameters
	fmt.Fprintf(w, "  Seed: %d  Stars: %d  Civilizations requested: %d  Steps: %d/%d\n",
		p.Seed, p.Stars, p.Civilizations, record.StepsCompleted, p.Steps)
	if record.LastError != "" {
		fmt.Fprintf(w, "  Stopped: %s\n", record.LastError)
	}
	if final, ok := record.Final(); ok {
		fmt.Fprintf(w, "  Final step %d: %d alive, population %d, average tech %.2f\n",
			final.Step, final.AliveCivilizations, final.TotalPopulation, final.AverageTechLevel)
	}
}

func printCivilizations(w io.Writer, civs []run.CivilizationSummary) error {
	if len(civs) == 0 {
		fmt.Fprintln(w, "\nNo civilizations were seeded.")
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPOPULATION\tTECH\tPLANETS\tRESOURCES\tGOVERNMENT\tECONOMY\tCOLLAPSE REASON")
	for _, c := range civs {
		reason := c.CollapseReason
		if reason == "" {
			reason = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
			c.ID, c.Status, c.Population, c.TechLevel, c.Planets, c.Resources, c.Government, c.Economy, reason)
	}
	return tw.Flush()
}

func printEvents(w io.Writer, entries []run.EventEntry, limit int) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "\nNo events fired.")
		return
	}
	start := 0
	if limit > 0 && len(entries) > limit {
		start = len(entries) - limit
	}
	fmt.Fprintf(w, "\nEvents (%d of %d):\n", len(entries)-start, len(entries))
	for _, e := range entries[start:] {
		fmt.Fprintf(w, "- [step %d] %s\n", e.Step, e.Message)
	}
}
