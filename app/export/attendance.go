// Package export builds the spreadsheet reports from current roster, task
// and survey state. Sheet names and column headers are the Vietnamese
// literals the unit's paperwork expects; exports with zero qualifying rows
// still produce a valid workbook with a placeholder row.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kien39/mil-mang/app/models"
)

// NoReasonPlaceholder replaces an empty absence reason in reports.
const NoReasonPlaceholder = "(Chưa có lý do)"

// Attendance builds the four-sheet attendance report: summary, per-unit
// breakdown, absentee detail and the full roster. Returns the workbook and
// the date-stamped filename.
func Attendance(people []models.Person, now time.Time) (*excelize.File, string, error) {
	f := excelize.NewFile()

	total := len(people)
	absent := 0
	for _, p := range people {
		if p.Absent {
			absent++
		}
	}
	present := total - absent

	// Tóm tắt
	summary := "Tóm tắt"
	if _, err := f.NewSheet(summary); err != nil {
		return nil, "", err
	}
	summaryRows := [][]interface{}{
		{"Metric", "Value"},
		{"Tổng quân số", total},
		{"Quân số có mặt", present},
		{"Quân số vắng", absent},
		{"", ""},
		{"Ngày xuất báo cáo", now.Format("02/01/2006")},
	}
	if err := writeRows(f, summary, summaryRows); err != nil {
		return nil, "", err
	}

	// Vắng theo đơn vị
	byUnit := "Vắng theo đơn vị"
	if _, err := f.NewSheet(byUnit); err != nil {
		return nil, "", err
	}
	unitRows := [][]interface{}{
		{"Đơn vị", "Tổng quân số", "Quân số vắng", "Quân số có mặt"},
	}
	for _, cat := range models.UnitCategories {
		totalInUnit, absentInUnit := 0, 0
		for _, p := range people {
			if !cat.Matches(p.Unit) {
				continue
			}
			totalInUnit++
			if p.Absent {
				absentInUnit++
			}
		}
		unitRows = append(unitRows, []interface{}{cat.Name, totalInUnit, absentInUnit, totalInUnit - absentInUnit})
	}
	if err := writeRows(f, byUnit, unitRows); err != nil {
		return nil, "", err
	}
	f.SetColWidth(byUnit, "A", "A", 20)
	f.SetColWidth(byUnit, "B", "D", 15)

	// Danh sách vắng
	absentSheet := "Danh sách vắng"
	if _, err := f.NewSheet(absentSheet); err != nil {
		return nil, "", err
	}
	absentRows := [][]interface{}{
		{"STT", "TT", "Họ và tên", "Chức vụ", "Đơn vị", "Lý do vắng"},
	}
	stt := 0
	for _, p := range people {
		if !p.Absent {
			continue
		}
		stt++
		absentRows = append(absentRows, []interface{}{
			stt, p.TT, p.Name, p.Role, p.Unit, reasonOrPlaceholder(p.Reason),
		})
	}
	if stt == 0 {
		absentRows = [][]interface{}{{"Message"}, {"Không có quân số vắng"}}
	}
	if err := writeRows(f, absentSheet, absentRows); err != nil {
		return nil, "", err
	}
	f.SetColWidth(absentSheet, "A", "B", 8)
	f.SetColWidth(absentSheet, "C", "C", 30)
	f.SetColWidth(absentSheet, "D", "D", 25)
	f.SetColWidth(absentSheet, "E", "E", 20)
	f.SetColWidth(absentSheet, "F", "F", 40)

	// Toàn bộ danh sách
	allSheet := "Toàn bộ danh sách"
	if _, err := f.NewSheet(allSheet); err != nil {
		return nil, "", err
	}
	allRows := [][]interface{}{
		{"STT", "TT", "Họ và tên", "Chức vụ", "Đơn vị", "Trạng thái", "Lý do vắng"},
	}
	for i, p := range people {
		status, reason := "Có mặt", "-"
		if p.Absent {
			status = "Vắng"
			reason = reasonOrPlaceholder(p.Reason)
		}
		allRows = append(allRows, []interface{}{i + 1, p.TT, p.Name, p.Role, p.Unit, status, reason})
	}
	if err := writeRows(f, allSheet, allRows); err != nil {
		return nil, "", err
	}
	f.SetColWidth(allSheet, "A", "B", 8)
	f.SetColWidth(allSheet, "C", "C", 30)
	f.SetColWidth(allSheet, "D", "D", 25)
	f.SetColWidth(allSheet, "E", "E", 20)
	f.SetColWidth(allSheet, "F", "F", 15)
	f.SetColWidth(allSheet, "G", "G", 40)

	f.DeleteSheet("Sheet1")
	filename := fmt.Sprintf("BaoCaoDiemDanh_%s.xlsx", now.Format("02012006"))
	return f, filename, nil
}

func reasonOrPlaceholder(reason string) string {
	if strings.TrimSpace(reason) == "" {
		return NoReasonPlaceholder
	}
	return reason
}

// writeRows fills a sheet from row 1 downward.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}
	return nil
}
