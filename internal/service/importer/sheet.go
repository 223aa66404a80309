package importer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-analytics-go/internal/domain/session"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

const maxSheetRows = 100000

// readSheet extracts all cell rows from an uploaded spreadsheet. Modern
// .xlsx files go through excelize; legacy .xls workbooks go through the ole2
// reader and must contain a single worksheet.
func readSheet(filename string, data []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("failed to open xls workbook: %w", err)
		}
		if workbook.NumSheets() == 0 {
			return nil, session.ErrNoWorksheet
		}
		if workbook.NumSheets() > 1 {
			return nil, session.ErrMultipleSheets
		}
		rows := workbook.ReadAllCells(maxSheetRows)
		if len(rows) == 0 {
			return nil, session.ErrEmptySheet
		}
		return rows, nil
	case ".xlsx":
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open xlsx workbook: %w", err)
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, session.ErrNoWorksheet
		}

		rows, err := file.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to read worksheet: %w", err)
		}
		if len(rows) == 0 {
			return nil, session.ErrEmptySheet
		}
		return rows, nil
	default:
		return nil, session.ErrUnsupportedFile
	}
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

var dateLayouts = []string{"2006-01-02", "1/2/2006", "01/02/2006", "2006/01/02"}

// parseCellDate accepts ISO and slash date strings plus raw excel date
// serials, which excelize surfaces for unformatted date cells.
func parseCellDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
