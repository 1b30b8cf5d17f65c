package excel

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kien39/mil-mang/app/models"
)

// Reader loads the personnel roster from a spreadsheet file. Every call
// re-reads the file from disk; the reader holds no state between reads.
type Reader struct {
	Path string
	// Serial sanity window, inclusive-exclusive. Numbers outside it are left
	// untouched.
	SerialMin float64
	SerialMax float64
}

// Read parses the first sheet into one Person per row. The header row names
// the columns; date-like cells are normalized to DD/MM/YYYY and every
// unknown column is preserved in Extra. Rows without a parsable TT are
// skipped, since TT is the join key for all derived state.
func (r *Reader) Read() ([]*models.Person, error) {
	f, err := excelize.OpenFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.Path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", r.Path)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	people := make([]*models.Person, 0, len(rows)-1)
	for i, row := range rows[1:] {
		p := &models.Person{Extra: map[string]string{}}
		hasTT := false
		for col, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" {
				continue
			}
			var cell string
			if col < len(row) {
				cell = strings.TrimSpace(row[col])
			}
			switch header {
			case models.ColTT:
				tt, err := strconv.Atoi(cell)
				if err != nil {
					continue
				}
				p.TT = tt
				hasTT = true
			case models.ColAttendance:
				p.Attendance = parseBool(cell)
			case models.ColName:
				p.Name = NormalizeValue(cell, r.SerialMin, r.SerialMax)
			case models.ColRole:
				p.Role = NormalizeValue(cell, r.SerialMin, r.SerialMax)
			case models.ColUnit:
				p.Unit = NormalizeValue(cell, r.SerialMin, r.SerialMax)
			default:
				p.Extra[header] = NormalizeValue(cell, r.SerialMin, r.SerialMax)
			}
		}
		if !hasTT {
			log.Printf("Skipping row %d of %s: no TT value", i+2, r.Path)
			continue
		}
		people = append(people, p)
	}
	return people, nil
}

func parseBool(cell string) bool {
	switch strings.ToLower(cell) {
	case "1", "true", "x":
		return true
	}
	return false
}
