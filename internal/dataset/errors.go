package dataset

import "strings"

// FormatError reports required columns absent from the input header. It is
// raised before any data row is read.
type FormatError struct {
	Missing []string
}

func (e *FormatError) Error() string {
	return "csv missing required columns: " + strings.Join(e.Missing, ", ")
}

// DataError reports an input with a usable header but unusable body: no data
// rows at all, or a cell that fails numeric or date conversion.
type DataError struct {
	Reason string
	Err    error
}

func (e *DataError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *DataError) Unwrap() error { return e.Err }
