package reports

import (
	"bytes"
	"testing"
)

func TestEncodePDFFallbackFont(t *testing.T) {
	dataset := workbookDataset()
	font := ResolvedFont{Mode: FontFallbackASCII}

	data, err := EncodePDF(dataset, Summarize(dataset), testFilters(), font, DefaultRowLimits())
	if err != nil {
		t.Fatalf("EncodePDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("output is not a PDF document")
	}
}

func TestEncodePDFEmptyDataset(t *testing.T) {
	font := ResolvedFont{Mode: FontFallbackASCII}

	data, err := EncodePDF(Dataset{}, Summarize(Dataset{}), testFilters(), font, DefaultRowLimits())
	if err != nil {
		t.Fatalf("EncodePDF on empty dataset: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty dataset must still produce a cover and summary")
	}
}

func TestRowLimitsFor(t *testing.T) {
	limits := DefaultRowLimits()

	combined := testFilters()
	if got := limits.For(combined); got != 20 {
		t.Fatalf("combined export cap = %d, want 20", got)
	}

	single := testFilters()
	single.RecordType = TypeTasks
	if got := limits.For(single); got != 50 {
		t.Fatalf("single-type export cap = %d, want 50", got)
	}
}
