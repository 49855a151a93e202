package types

import "thermistor/utils"

// Table 测量表格：表头加若干行。
// 按位置取列：第 0 列为标签列，第 1 列为数值列，列名不参与计算。
type Table struct {
	Header utils.Cells   // 表头
	Rows   []utils.Cells // 数据行，行长度可以不一致
}

// NewTable 创建表格
func NewTable(header utils.Cells, rows ...utils.Cells) *Table {
	return &Table{Header: header, Rows: rows}
}

// NumColumns 列数，取表头长度。
func (t *Table) NumColumns() int { return len(t.Header) }

// NumRows 数据行数。
func (t *Table) NumRows() int { return len(t.Rows) }

// Column 取第 i 列，缺失的单元格返回空字符串。
func (t *Table) Column(i int) utils.Cells {
	col := make(utils.Cells, len(t.Rows))
	for r, row := range t.Rows {
		col[r] = row.ParseString(i, "")
	}
	return col
}

// Labels 标签列。
func (t *Table) Labels() utils.Cells { return t.Column(LabelColumn) }

// Values 数值列。
func (t *Table) Values() utils.Cells { return t.Column(ValueColumn) }

// AppendColumn 追加一列并返回新表格，原表格不变。
// 短行先补齐到表头宽度，保证新列对齐到表头位置。
func (t *Table) AppendColumn(name string, cells utils.Cells) *Table {
	width := t.NumColumns()
	out := &Table{
		Header: append(append(utils.Cells{}, t.Header...), name),
		Rows:   make([]utils.Cells, len(t.Rows)),
	}
	for r, row := range t.Rows {
		n := make(utils.Cells, max(width, len(row)), max(width, len(row))+1)
		copy(n, row)
		out.Rows[r] = append(n, cells.ParseString(r, ""))
	}
	return out
}

// Records 表头与数据行合并，便于写出。
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Header)
	for _, row := range t.Rows {
		records = append(records, row)
	}
	return records
}
