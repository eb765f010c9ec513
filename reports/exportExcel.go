package reports

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportHealthCheckExcel renders the weighted health-check report as a
// spreadsheet for download.
func ExportHealthCheckExcel(ctx context.Context) (*excelize.File, error) {
	report, err := GetHealthCheckReport(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Health Check"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheet, "A1", "Category")
	f.SetCellValue(sheet, "B1", "Weight")
	f.SetCellValue(sheet, "C1", "Score")
	f.SetCellValue(sheet, "D1", "Status")
	f.SetCellValue(sheet, "E1", "Trend")

	for i, c := range report.Categories {
		row := i + 2
		f.SetCellValue(sheet, "A"+fmt.Sprint(row), c.Name)
		f.SetCellValue(sheet, "B"+fmt.Sprint(row), c.Weight)
		f.SetCellValue(sheet, "C"+fmt.Sprint(row), c.Score)
		f.SetCellValue(sheet, "D"+fmt.Sprint(row), string(c.Status))
		f.SetCellValue(sheet, "E"+fmt.Sprint(row), string(c.Trend))
	}

	summaryRow := len(report.Categories) + 3
	f.SetCellValue(sheet, "A"+fmt.Sprint(summaryRow), "Overall")
	f.SetCellValue(sheet, "C"+fmt.Sprint(summaryRow), report.OverallScore)
	f.SetCellValue(sheet, "D"+fmt.Sprint(summaryRow), string(report.OverallStatus))
	f.SetCellValue(sheet, "A"+fmt.Sprint(summaryRow+1), "Generated")
	f.SetCellValue(sheet, "B"+fmt.Sprint(summaryRow+1), report.GeneratedAt.Format("2006-01-02 15:04"))

	return f, nil
}
