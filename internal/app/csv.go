package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// SnippetInput is one snippet to analyze. Free-form text, any field may
// be empty; an empty field measures as zero width.
type SnippetInput struct {
	Title       string
	Description string
	URL         string
}

// RowResult pairs an input row with the metrics computed for it on a
// single device profile.
type RowResult struct {
	Input       SnippetInput
	Title       SnippetMetrics
	Description SnippetMetrics
}

// Summary aggregates a bulk run the way the results table footer does.
type Summary struct {
	Total          int
	TitlesOK       int
	DescriptionsOK int
	BothOK         int
}

var requiredColumns = []string{"title", "description", "url"}

// ReadSnippets parses bulk-mode CSV input. The header row is required and
// must contain title, description and url columns; a file missing any of
// them is rejected whole, with no partial processing. Extra columns are
// ignored. Empty cell values are valid zero-width input.
func ReadSnippets(r io.Reader) ([]SnippetInput, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV: header row with columns %s is required", strings.Join(requiredColumns, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	idx := map[string]int{}
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("CSV must contain columns title, description, url (missing: %s)", strings.Join(missing, ", "))
	}

	// Rows may omit trailing cells; treat short rows as empty values
	// rather than rejecting them.
	cr.FieldsPerRecord = -1

	var rows []SnippetInput
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row %d: %w", len(rows)+2, err)
		}
		cell := func(col string) string {
			i := idx[col]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}
		rows = append(rows, SnippetInput{
			Title:       cell("title"),
			Description: cell("description"),
			URL:         cell("url"),
		})
	}
	return rows, nil
}

// Analyze computes metrics for one snippet on one device. Rows are
// independent, so bulk callers may fan this out without coordination.
func (e *Estimator) Analyze(in SnippetInput, device DeviceProfile) RowResult {
	return RowResult{
		Input:       in,
		Title:       e.Truncate(in.Title, device, FieldTitle),
		Description: e.Truncate(in.Description, device, FieldDescription),
	}
}

// AnalyzeAll runs Analyze over every row, preserving input order.
func (e *Estimator) AnalyzeAll(rows []SnippetInput, device DeviceProfile) []RowResult {
	results := make([]RowResult, len(rows))
	for i, in := range rows {
		results[i] = e.Analyze(in, device)
	}
	return results
}

// Summarize counts how many rows fit their limits.
func Summarize(results []RowResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		titleOK := !r.Title.Truncated
		descOK := !r.Description.Truncated
		if titleOK {
			s.TitlesOK++
		}
		if descOK {
			s.DescriptionsOK++
		}
		if titleOK && descOK {
			s.BothOK++
		}
	}
	return s
}
