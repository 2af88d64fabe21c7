package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet はワークシート1枚分の表データ。
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Filename はエクスポートのダウンロード名を生成時刻付きで組み立てる。
// 例: "categories-02012006-150405.xlsx"
func Filename(entity string, now time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", entity, now.Format("02012006-150405"))
}

// Write はシートをxlsxとしてwに書き出す。ヘッダ行は太字、列幅は固定。
func Write(w io.Writer, sheet Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return err
	}

	for i, h := range sheet.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet.Name, cell, h); err != nil {
			return err
		}
	}
	lastCol, err := excelize.ColumnNumberToName(len(sheet.Headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet.Name, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet.Name, "A", lastCol, 22); err != nil {
		return err
	}

	for r, row := range sheet.Rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet.Name, cell, v); err != nil {
				return err
			}
		}
	}

	_, err = f.WriteTo(w)
	return err
}
