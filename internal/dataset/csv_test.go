package dataset

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_ValidInput(t *testing.T) {
	input := "date,ABTC,BTC\n2024-01-01,100,200\n2024-01-02,110,190\n2024-01-03,90,210\n"
	series, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", series.Len())
	}
	if got := series.Prices["ABTC"]; got[0] != 100 || got[2] != 90 {
		t.Errorf("unexpected ABTC prices: %v", got)
	}
	if got := series.Prices["BTC"]; got[1] != 190 {
		t.Errorf("unexpected BTC prices: %v", got)
	}
	if !series.Dates[0].Before(series.Dates[1]) {
		t.Error("row order not preserved")
	}
}

func TestParse_MissingDateColumn(t *testing.T) {
	input := "day,ABTC,BTC\n2024-01-01,100,200\n"
	_, err := Parse(strings.NewReader(input))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if len(fe.Missing) != 1 || fe.Missing[0] != "date" {
		t.Errorf("unexpected missing columns: %v", fe.Missing)
	}
}

func TestParse_MissingAssetColumn(t *testing.T) {
	input := "date,ABTC\n2024-01-01,100\n"
	_, err := Parse(strings.NewReader(input))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if len(fe.Missing) != 1 || fe.Missing[0] != "BTC" {
		t.Errorf("unexpected missing columns: %v", fe.Missing)
	}
}

func TestParse_EmptyBody(t *testing.T) {
	input := "date,ABTC,BTC\n"
	_, err := Parse(strings.NewReader(input))
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("expected DataError, got %v", err)
	}
}

func TestParse_BadNumericCell(t *testing.T) {
	input := "date,ABTC,BTC\n2024-01-01,abc,200\n"
	_, err := Parse(strings.NewReader(input))
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("expected DataError, got %v", err)
	}
}

func TestParse_BadDateCell(t *testing.T) {
	input := "date,ABTC,BTC\nyesterday,100,200\n"
	_, err := Parse(strings.NewReader(input))
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("expected DataError, got %v", err)
	}
}

func TestParse_EmptyFile(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError for empty file, got %v", err)
	}
}
