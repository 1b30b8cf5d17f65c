package excel

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Spreadsheet serials are counted from an epoch of 30 December 1899, offset
// by one day, so that the format's historical 1900 leap-year quirk cancels
// out for modern dates. All arithmetic is done in UTC: using local calendar
// fields here shifts dates by a day for hosts west of UTC.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var (
	exactDateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	looseDateRe = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`)
)

// NormalizeValue turns date-like cell values into a DD/MM/YYYY string.
//
//   - values already in DD/MM/YYYY pass through unchanged
//   - looser D/M/YYYY or D-M-YYYY strings are zero-padded
//   - numbers inside the [min, max) serial sanity window are converted from
//     the spreadsheet epoch
//   - anything else passes through unmodified
func NormalizeValue(value string, min, max float64) string {
	if exactDateRe.MatchString(value) {
		return value
	}
	if m := looseDateRe.FindStringSubmatch(value); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%02d/%02d/%s", day, month, m[3])
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial >= min && serial < max {
			return SerialToDate(serial)
		}
	}
	return value
}

// SerialToDate converts a spreadsheet date serial to DD/MM/YYYY using the
// serial's UTC calendar fields. Fractional day parts (time of day) are kept
// in the arithmetic but do not affect the printed date unless they cross
// midnight.
func SerialToDate(serial float64) string {
	d := serialEpoch.Add(time.Duration((serial - 1) * float64(24*time.Hour)))
	return d.UTC().Format("02/01/2006")
}
