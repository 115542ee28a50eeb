package forecasting

import (
	"errors"
	"fmt"
)

// MinRecords is the minimum number of usable records a forecast needs.
const MinRecords = 5

// ErrInsufficientData is returned when a forecast is requested over fewer
// than MinRecords records. Surfaced to the caller as an inline message, no
// forecast is computed.
var ErrInsufficientData = errors.New("at least 5 load records are required to forecast")

// FormatError reports a CSV header missing a required column. Parsing aborts
// entirely; there is no partial result.
type FormatError struct {
	Column string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("csv is missing required column %q", e.Column)
}

// IsFormatError reports whether err is (or wraps) a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
