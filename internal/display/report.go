// Package display renders the final report table, the progress bar, and the
// startup banner.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/minha12/countimages/internal/config"
	"github.com/minha12/countimages/internal/pipeline"
)

const ruleWidth = 50

// RenderReport writes the per-dataset count table to w. Results are printed
// in the order given (the runner already sorts by id); each row shows the
// dataset's configured probability or "N/A" when none is set. The footer is
// the grand total across all countable datasets.
func RenderReport(w io.Writer, results []pipeline.Result, datasets []config.Dataset) {
	byID := make(map[string]*config.Dataset, len(datasets))
	for i := range datasets {
		byID[datasets[i].ID] = &datasets[i]
	}

	rule := strings.Repeat("-", ruleWidth)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Image count per dataset:")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-20s | %-10s | %s\n", "Dataset ID", "Count", "Probability")
	fmt.Fprintln(w, rule)

	total := 0
	for _, res := range results {
		prob := "N/A"
		if ds := byID[res.DatasetID]; ds != nil {
			prob = FormatProbability(ds.Probability)
		}
		fmt.Fprintf(w, "%-20s | %-10d | %s\n", res.DatasetID, res.Count, prob)
		total += res.Count
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total: %d images across %d image datasets\n", total, len(results))
}

// FormatProbability renders the display-only probability weight. The config
// does not constrain its type, so anything JSON can hold is printed as-is;
// nil means the config did not set one.
func FormatProbability(v any) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprint(v)
}
