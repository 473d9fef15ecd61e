package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"diningres/internal/models"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

var reportHeaders = []string{"#", "Date", "Time", "Name", "Adults", "Children", "Subtotal"}

// ExcelExporter writes billing reports as .xlsx workbooks into a directory.
type ExcelExporter struct {
	dir    string
	logger *zerolog.Logger
}

func NewExcelExporter(dir string, logger *zerolog.Logger) *ExcelExporter {
	if logger == nil {
		l := zerolog.Nop()
		logger = &l
	}
	return &ExcelExporter{dir: dir, logger: logger}
}

// ExportReport создает Excel файл с отчетом и возвращает путь к нему
func (e *ExcelExporter) ExportReport(ctx context.Context, report models.Report, generatedAt time.Time) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	if err := writeHeader(f); err != nil {
		return "", err
	}

	row := 2
	for _, r := range report.Rows {
		values := []interface{}{r.ID, r.Date(), r.Time(), r.GuestName, r.Adults, r.Children, r.Subtotal}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return "", fmt.Errorf("error writing row %d: %w", row, err)
		}
		row++
	}

	if err := writeTotals(f, row+1, report); err != nil {
		return "", err
	}

	_ = f.SetColWidth(sheetName, "A", "A", 6)
	_ = f.SetColWidth(sheetName, "B", "C", 15)
	_ = f.SetColWidth(sheetName, "D", "D", 25)
	_ = f.SetColWidth(sheetName, "E", "G", 12)

	// Удаляем стандартный лист
	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("reservation_report_%s.xlsx", generatedAt.Format(models.ExportTimestampLayout))
	filePath := filepath.Join(e.dir, fileName)

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}

	e.logger.Info().Str("file_path", filePath).Int("rows", len(report.Rows)).Msg("Excel report created")
	return filePath, nil
}

func writeHeader(f *excelize.File) error {
	headers := make([]interface{}, len(reportHeaders))
	for i, h := range reportHeaders {
		headers[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}
	lastCell, _ := excelize.CoordinatesToCellName(len(reportHeaders), 1)
	return f.SetCellStyle(sheetName, "A1", lastCell, style)
}

func writeTotals(f *excelize.File, row int, report models.Report) error {
	totals := []struct {
		label string
		value interface{}
	}{
		{"Total Adults", report.TotalAdults},
		{"Total Children", report.TotalChildren},
		{"Grand Total (" + report.Currency + ")", report.GrandTotal},
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("error creating totals style: %w", err)
	}

	for _, total := range totals {
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(len(reportHeaders), row)
		_ = f.SetCellValue(sheetName, labelCell, total.label)
		_ = f.SetCellValue(sheetName, valueCell, total.value)
		_ = f.SetCellStyle(sheetName, labelCell, labelCell, style)
		row++
	}
	return nil
}
