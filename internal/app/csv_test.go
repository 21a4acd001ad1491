package app

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestReadSnippets_ValidFile(t *testing.T) {
	input := "title,description,url\n" +
		"Page One,First description,https://example.com/one\n" +
		"Page Two,Second description,https://example.com/two\n"
	rows, err := ReadSnippets(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadSnippets: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Title != "Page One" || rows[1].URL != "https://example.com/two" {
		t.Fatalf("rows parsed incorrectly: %+v", rows)
	}
}

func TestReadSnippets_MissingColumnRejectsWholeFile(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		missing string
	}{
		{"no url", "title,description", "url"},
		{"no title", "description,url", "title"},
		{"no description", "title,url", "description"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := tc.header + "\nsome,values\n"
			_, err := ReadSnippets(strings.NewReader(input))
			if err == nil {
				t.Fatalf("expected validation error for header %q", tc.header)
			}
			if !strings.Contains(err.Error(), tc.missing) {
				t.Fatalf("error %q does not name missing column %q", err, tc.missing)
			}
		})
	}
}

func TestReadSnippets_EmptyFile(t *testing.T) {
	if _, err := ReadSnippets(strings.NewReader("")); err == nil {
		t.Fatalf("expected error for empty file")
	}
}

func TestReadSnippets_HeaderCaseAndOrder(t *testing.T) {
	input := "URL,Title,Description\nhttps://example.com,My Title,My description\n"
	rows, err := ReadSnippets(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadSnippets: %v", err)
	}
	if rows[0].Title != "My Title" || rows[0].Description != "My description" || rows[0].URL != "https://example.com" {
		t.Fatalf("columns mapped incorrectly: %+v", rows[0])
	}
}

func TestAnalyzeAll_EmptyURLStillProcessed(t *testing.T) {
	input := "title,description,url\n" +
		"First,Desc one,https://example.com/1\n" +
		"Second,Desc two,\n" +
		"Third,Desc three,https://example.com/3\n"
	rows, err := ReadSnippets(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadSnippets: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	e := newTestEstimator()
	results := e.AnalyzeAll(rows, DeviceDesktop)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[1].Input.URL != "" {
		t.Fatalf("empty url value altered: %q", results[1].Input.URL)
	}
	if w := e.EstimateWidth(results[1].Input.URL); w != 0 {
		t.Fatalf("empty url width = %v, want 0", w)
	}
	if results[1].Title.PixelWidth == 0 {
		t.Fatalf("row with empty url was not measured")
	}
}

func TestSummarize(t *testing.T) {
	e := newTestEstimator()
	rows := []SnippetInput{
		{Title: "Short", Description: "Short description"},
		{Title: strings.Repeat("m", 50), Description: "Fits fine"},
		{Title: "Fits", Description: strings.Repeat("w", 100)},
	}
	s := Summarize(e.AnalyzeAll(rows, DeviceDesktop))
	if s.Total != 3 {
		t.Fatalf("Total = %d, want 3", s.Total)
	}
	if s.TitlesOK != 2 {
		t.Fatalf("TitlesOK = %d, want 2", s.TitlesOK)
	}
	if s.DescriptionsOK != 2 {
		t.Fatalf("DescriptionsOK = %d, want 2", s.DescriptionsOK)
	}
	if s.BothOK != 1 {
		t.Fatalf("BothOK = %d, want 1", s.BothOK)
	}
}

func TestWriteResults_RoundTrip(t *testing.T) {
	e := newTestEstimator()
	rows := []SnippetInput{
		{Title: "A Title", Description: "A description", URL: "https://example.com"},
		{Title: strings.Repeat("m", 50), Description: "ok", URL: ""},
	}
	results := e.AnalyzeAll(rows, DeviceMobile)

	var buf bytes.Buffer
	if err := WriteResults(&buf, results, DeviceMobile); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-read exported CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}

	header := records[0]
	for _, col := range []string{"title", "description", "url", "device", "title_pixels", "title_truncated", "truncated_title"} {
		found := false
		for _, h := range header {
			if h == col {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("exported header %v missing column %q", header, col)
		}
	}
	if records[1][3] != "mobile" {
		t.Fatalf("device column = %q, want mobile", records[1][3])
	}
	if records[2][6] != "true" {
		t.Fatalf("title_truncated for over-limit row = %q, want true", records[2][6])
	}
}

func TestWriteTemplate(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTemplate(&buf); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-read template: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 examples", len(records))
	}
	if records[0][0] != "title" || records[0][1] != "description" || records[0][2] != "url" {
		t.Fatalf("template header = %v", records[0])
	}

	// The template must be valid bulk input.
	var round bytes.Buffer
	if err := WriteTemplate(&round); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}
	rows, err := ReadSnippets(&round)
	if err != nil {
		t.Fatalf("template rejected by ReadSnippets: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("template parsed into %d rows, want 2", len(rows))
	}
}

func TestSnippetText(t *testing.T) {
	e := newTestEstimator()
	result := e.Analyze(SnippetInput{
		Title:       "My Page",
		Description: "My description",
		URL:         "https://www.example.com/docs",
	}, DeviceDesktop)
	got := SnippetText(result)
	want := "My Page\nexample.com › docs\nMy description"
	if got != want {
		t.Fatalf("SnippetText = %q, want %q", got, want)
	}
}
