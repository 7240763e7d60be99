// Package dates normalizes the mixed date representations found in
// ad-platform spreadsheet exports into a single DD/MM/YYYY display form.
// Depending on export locale and tool version the same column can carry an
// ISO string, an already-formatted display string, a native date cell, or a
// raw spreadsheet serial number; all four must be tolerated without error.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DisplayLayout is the Go layout for DD/MM/YYYY.
	DisplayLayout = "02/01/2006"

	// serialEpochOffset is the number of days between the spreadsheet
	// reference point (1899-12-30, carrying the 1900 leap-year bug) and the
	// Unix epoch.
	serialEpochOffset = 25569

	secondsPerDay = 86400
)

// Normalize converts a date cell of any supported shape to DD/MM/YYYY.
// Unrecognized inputs are stringified as-is rather than rejected.
func Normalize(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return normalizeString(v)
	case time.Time:
		return v.Format(DisplayLayout)
	case float64:
		return FromSerial(v)
	case int:
		return FromSerial(float64(v))
	case int64:
		return FromSerial(float64(v))
	default:
		return fmt.Sprint(v)
	}
}

// NormalizeCell normalizes a cell that arrived as text from the spreadsheet
// reader. Serial date cells lose their numeric typing on the way through the
// reader, so a bare number here is re-interpreted as a serial before the
// string rules apply.
func NormalizeCell(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		return FromSerial(serial)
	}
	return normalizeString(raw)
}

// FromSerial converts a spreadsheet serial day count to DD/MM/YYYY.
func FromSerial(serial float64) string {
	seconds := int64((serial - serialEpochOffset) * secondsPerDay)
	return time.Unix(seconds, 0).UTC().Format(DisplayLayout)
}

func normalizeString(value string) string {
	if value == "" {
		return ""
	}
	// ISO YYYY-MM-DD reorders by field; no calendar validation, matching the
	// tolerance of the rest of the pipeline.
	if strings.Contains(value, "-") {
		parts := strings.SplitN(value, "-", 3)
		if len(parts) == 3 {
			return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0])
		}
	}
	// Anything without a hyphen is assumed to already be display-formatted.
	return value
}
