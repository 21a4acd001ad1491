package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// formatPx renders a pixel value without a trailing .0 for whole numbers.
// Half-pixel widths in the table make fractional sums common.
func formatPx(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

// WriteResults exports a bulk run as CSV: the original row plus the
// computed columns for both measured fields.
func WriteResults(w io.Writer, results []RowResult, device DeviceProfile) error {
	cw := csv.NewWriter(w)
	header := []string{
		"title", "description", "url", "device",
		"title_pixels", "title_ok", "title_truncated", "truncated_title",
		"description_pixels", "description_ok", "description_truncated", "truncated_description",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			r.Input.Title, r.Input.Description, r.Input.URL, string(device),
			formatPx(r.Title.PixelWidth), formatBool(!r.Title.Truncated), formatBool(r.Title.Truncated), r.Title.TruncatedText,
			formatPx(r.Description.PixelWidth), formatBool(!r.Description.Truncated), formatBool(r.Description.Truncated), r.Description.TruncatedText,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSingle exports the metrics for one snippet as a one-row CSV,
// matching the single-item download of the original tool.
func WriteSingle(w io.Writer, result RowResult, device DeviceProfile) error {
	return WriteResults(w, []RowResult{result}, device)
}

// WriteTemplate emits the starter CSV users fill in for bulk analysis.
func WriteTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{"title", "description", "url"},
		{"Example Title 1", "Example description 1", "https://example1.com"},
		{"Example Title 2", "Example description 2", "https://example2.com"},
	}
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SnippetText is the plain-text rendering of a computed snippet, suitable
// for copying: truncated title, breadcrumb URL, truncated description.
func SnippetText(result RowResult) string {
	return fmt.Sprintf("%s\n%s\n%s", result.Title.TruncatedText, FormatURL(result.Input.URL), result.Description.TruncatedText)
}
