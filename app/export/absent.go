package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kien39/mil-mang/app/models"
	"github.com/kien39/mil-mang/app/services"
)

// UnreportedPlaceholder stands in for a missing reason in the aggregated
// absentee report.
const UnreportedPlaceholder = "Không khai báo"

// AbsentMatrix builds the aggregated absentee report: a unit × reason count
// matrix (with totals) and a per-person detail sheet.
func AbsentMatrix(people []models.Person, now time.Time) (*excelize.File, string, error) {
	f := excelize.NewFile()

	var absentees []models.Person
	for _, p := range people {
		if p.Absent {
			absentees = append(absentees, p)
		}
	}

	reasons := services.AbsentReasons(people, UnreportedPlaceholder)

	unitNames := make([]string, 0, len(models.UnitCategories)+1)
	for _, cat := range models.UnitCategories {
		unitNames = append(unitNames, cat.Name)
	}
	unitNames = append(unitNames, models.FallbackUnitName)

	summary := "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return nil, "", err
	}

	header := []interface{}{"Đơn vị", "Tổng quân", "Tổng vắng"}
	for _, r := range reasons {
		header = append(header, r)
	}
	header = append(header, "Có mặt")

	rows := [][]interface{}{
		{"Báo cáo điểm danh"},
		{},
		header,
	}
	for _, unit := range unitNames {
		totalPeople, absentPeople := 0, 0
		reasonCounts := make([]int, len(reasons))
		for _, p := range people {
			if models.UnitNameFor(p.Unit) != unit {
				continue
			}
			totalPeople++
			if !p.Absent {
				continue
			}
			absentPeople++
			pr := normalizeReason(p.Reason)
			for i, r := range reasons {
				if r == pr {
					reasonCounts[i]++
					break
				}
			}
		}
		row := []interface{}{unit, totalPeople, absentPeople}
		for _, c := range reasonCounts {
			row = append(row, c)
		}
		row = append(row, totalPeople-absentPeople)
		rows = append(rows, row)
	}

	totals := []interface{}{"Tổng", len(people), len(absentees)}
	for _, r := range reasons {
		n := 0
		for _, p := range absentees {
			if normalizeReason(p.Reason) == r {
				n++
			}
		}
		totals = append(totals, n)
	}
	totals = append(totals, len(people)-len(absentees))
	rows = append(rows, []interface{}{}, totals)

	if err := writeRows(f, summary, rows); err != nil {
		return nil, "", err
	}

	details := "Details"
	if _, err := f.NewSheet(details); err != nil {
		return nil, "", err
	}
	detailRows := [][]interface{}{
		{"TT", "Họ và tên", "Chức vụ", "Đơn vị", "Lý do"},
	}
	for _, p := range absentees {
		detailRows = append(detailRows, []interface{}{
			p.TT, p.Name, p.Role, p.Unit, normalizeReason(p.Reason),
		})
	}
	if err := writeRows(f, details, detailRows); err != nil {
		return nil, "", err
	}

	f.DeleteSheet("Sheet1")
	filename := fmt.Sprintf("absent_report_%s.xlsx", now.Format("2006-01-02-15-04-05"))
	return f, filename, nil
}

func normalizeReason(reason string) string {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return UnreportedPlaceholder
	}
	return reason
}
