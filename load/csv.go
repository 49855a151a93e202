package load

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"thermistor/types"
	"thermistor/utils"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadCSV 读取 CSV 表格，第一行为表头。
// 可选的 UTF-8 BOM 会被去掉；允许数据行比表头短，不允许更长。
// 单元格保留原文，包括首尾空白。
func ReadCSV(r io.Reader) (*types.Table, error) {
	// 去掉 BOM，表格软件导出的文件通常带有 BOM
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(bufio.NewReader(dec))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Format: FormatCSV, Err: ErrEmpty}
	}
	if err != nil {
		return nil, &ParseError{Format: FormatCSV, Err: err}
	}
	t := types.NewTable(utils.Cells(header))
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Format: FormatCSV, Err: err}
		}
		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, &ParseError{Format: FormatCSV, Err: fmt.Errorf("第 %d 行: 字段数 %d 超过表头 %d", line, len(record), len(header))}
		}
		t.Rows = append(t.Rows, utils.Cells(record))
	}
	return t, nil
}

// WriteCSV 以带 BOM 的 UTF-8 写出 CSV，方便表格软件直接打开。
// 单元格按原文写出，不改变已计算数值的精度。
func WriteCSV(w io.Writer, t *types.Table) error {
	enc := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	writer := csv.NewWriter(enc)
	if err := writer.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("写出 CSV 失败: %w", err)
	}
	return enc.Close()
}
