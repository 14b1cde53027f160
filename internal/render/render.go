// Package render prints stat reports to the console with thousands
// grouping on numbers, e.g. "Kills (Overall): 12,345".
package render

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hollowellis/hypixel-data/internal/stats"
)

var printer = message.NewPrinter(language.English)

// FormatValue renders one value with locale number grouping. Floats keep
// two decimals; strings and the N/A sentinel pass through unchanged.
func FormatValue(v stats.Value) string {
	switch v.Kind() {
	case stats.KindInt:
		return printer.Sprintf("%d", v.Int())
	case stats.KindFloat:
		return printer.Sprintf("%.2f", v.Float())
	default:
		return v.String()
	}
}

// WriteReport prints a full report, one "Label: value" line per entry, in
// report order.
func WriteReport(w io.Writer, title string, rep *stats.Report) error {
	if _, err := fmt.Fprintf(w, "--- %s ---\n", title); err != nil {
		return err
	}
	for _, e := range rep.Entries() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", e.Label, FormatValue(e.Value)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "-----------------------------")
	return err
}
