package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"TrendChart/internal/model"
)

// Source supplies an ordered price series for rendering.
type Source interface {
	Load() (*model.PriceSeries, error)
	Name() string
}

// CSVSource loads price data from a local CSV file. The header must contain
// a "date" column plus one column per chart asset; row order defines
// chronological order and is not re-sorted.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSVSource for the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Name() string { return "csv:" + s.Path }

// Load opens the file and parses it into a PriceSeries.
func (s *CSVSource) Load() (*model.PriceSeries, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads CSV price data from r. It returns a FormatError when the
// required columns are missing from the header and a DataError when the body
// is empty or a cell fails conversion.
func Parse(r io.Reader) (*model.PriceSeries, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &FormatError{Missing: requiredColumns()}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	var missing []string
	if _, ok := cols["date"]; !ok {
		missing = append(missing, "date")
	}
	for _, asset := range model.Assets {
		if _, ok := cols[asset]; !ok {
			missing = append(missing, asset)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &FormatError{Missing: missing}
	}

	series := &model.PriceSeries{Prices: make(map[string][]float64, len(model.Assets))}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DataError{Reason: "read row", Err: err}
		}

		date, err := parseDate(row[cols["date"]])
		if err != nil {
			return nil, &DataError{Reason: fmt.Sprintf("parse date %q", row[cols["date"]]), Err: err}
		}
		series.Dates = append(series.Dates, date)

		for _, asset := range model.Assets {
			cell := row[cols[asset]]
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, &DataError{Reason: fmt.Sprintf("parse %s value %q", asset, cell), Err: err}
			}
			series.Prices[asset] = append(series.Prices[asset], value)
		}
	}

	if len(series.Dates) == 0 {
		return nil, &DataError{Reason: "no data rows in price csv"}
	}
	return series, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func requiredColumns() []string {
	cols := []string{"date"}
	cols = append(cols, model.Assets[:]...)
	return cols
}
