package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kien39/mil-mang/app/models"
)

// ThoughtResults builds the survey outcome export: one row per retained
// evaluation with the tier label and the localized submission time.
func ThoughtResults(evaluations []models.ThoughtEvaluation, now time.Time) (*excelize.File, string, error) {
	f := excelize.NewFile()

	sheet := "Kết quả tư tưởng"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, "", err
	}

	rows := [][]interface{}{
		{"TT", "Họ và tên", "Phân loại", "Thời gian khảo sát"},
	}
	for _, e := range evaluations {
		rows = append(rows, []interface{}{e.TT, e.Name, e.LevelLabel, localizeTimestamp(e.EvaluatedAt)})
	}
	if len(evaluations) == 0 {
		rows = append(rows, []interface{}{"", "Chưa có kết quả khảo sát", "", ""})
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return nil, "", err
	}
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "C", 25)
	f.SetColWidth(sheet, "D", "D", 22)

	f.DeleteSheet("Sheet1")
	filename := fmt.Sprintf("KetQuaTuTuong_%s.xlsx", now.Format("02012006"))
	return f, filename, nil
}

// localizeTimestamp renders a stored RFC3339 timestamp in the dd/mm/yyyy
// style the reports use. Unparsable values pass through unchanged.
func localizeTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("02/01/2006 15:04:05")
}
