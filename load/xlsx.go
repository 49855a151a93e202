package load

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"thermistor/types"
	"thermistor/utils"

	"github.com/xuri/excelize/v2"
)

// SheetName 导出 XLSX 时使用的工作表名称。
const SheetName = "Sheet1"

// ReadXLSX 读取第一个工作表，第一行为表头。
// 单元格取原始值，避免数字格式截断精度；超出表头的列补 "Unnamed: i" 列名。
func ReadXLSX(r io.Reader) (*types.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ParseError{Format: FormatXLSX, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ParseError{Format: FormatXLSX, Err: ErrEmpty}
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &ParseError{Format: FormatXLSX, Err: err}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Format: FormatXLSX, Err: ErrEmpty}
	}
	t := types.NewTable(utils.Cells(rows[0]))
	for _, row := range rows[1:] {
		for i := len(t.Header); i < len(row); i++ {
			t.Header = append(t.Header, "Unnamed: "+strconv.Itoa(i))
		}
		t.Rows = append(t.Rows, utils.Cells(row))
	}
	return t, nil
}

// WriteXLSX 写出 XLSX，可解析为数值的单元格写为数字。
func WriteXLSX(w io.Writer, t *types.Table) error {
	f := excelize.NewFile()
	defer f.Close()
	for r, record := range t.Records() {
		for c, cell := range record {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			var value any = cell
			if v, ok := utils.ToFloat(cell); ok && r > 0 && !math.IsInf(v, 0) {
				value = v
			}
			if err := f.SetCellValue(SheetName, name, value); err != nil {
				return fmt.Errorf("写出单元格 %s 失败: %w", name, err)
			}
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("写出 XLSX 失败: %w", err)
	}
	return nil
}
