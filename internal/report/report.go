// Package report writes scorecards for the terminal and for files.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spigell/cv-matcher/internal/matching"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Write renders the scorecard in the requested format.
func Write(w io.Writer, card matching.Scorecard, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return WriteText(w, card)
	case FormatJSON:
		return WriteJSON(w, card)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func WriteText(w io.Writer, card matching.Scorecard) error {
	if err := WriteHeader(w, card); err != nil {
		return err
	}
	if len(card.Rows) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := WriteDomains(w, card); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := WriteSummary(w, card); err != nil {
		return err
	}
	if len(card.KeyStrengths) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		return WriteStrengths(w, card)
	}
	return nil
}

// WriteHeader prints the three headline metrics.
func WriteHeader(w io.Writer, card matching.Scorecard) error {
	_, err := fmt.Fprintf(w, "Matching Score: %s\nCandidate: %s\nYears of Experience: %s\n",
		card.Score, card.Candidate, card.Years)
	return err
}

// WriteDomains prints the weighting table.
func WriteDomains(w io.Writer, card matching.Scorecard) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Domain\tWeight\tScore\tComment")
	for _, row := range card.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Domain, row.Weight, row.Score, row.Comment)
	}
	return tw.Flush()
}

func WriteSummary(w io.Writer, card matching.Scorecard) error {
	_, err := fmt.Fprintf(w, "Analysis Summary\n%s\n", card.Summary.Text)
	return err
}

func WriteStrengths(w io.Writer, card matching.Scorecard) error {
	if _, err := fmt.Fprintln(w, "Key Strengths Identified"); err != nil {
		return err
	}
	for _, strength := range card.KeyStrengths {
		if _, err := fmt.Fprintln(w, strength); err != nil {
			return err
		}
	}
	return nil
}

func WriteJSON(w io.Writer, card matching.Scorecard) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(card)
}

// DumpToTmpFile stores the scorecard as JSON in a temporary file and returns its name.
func DumpToTmpFile(card matching.Scorecard) (string, error) {
	file, err := os.CreateTemp("", "scorecard_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := WriteJSON(file, card); err != nil {
		return "", err
	}
	return file.Name(), nil
}
