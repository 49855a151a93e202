// Package thermistor 热敏电阻标定换算引擎。
//
// 调用方选择参数集（公式1或公式2），提供至少两列的测量表格，
// Process 对第二列逐行换算，返回追加了派生列的新表格与统计信息。
// 整个过程是纯函数，不持有任何全局状态。
package thermistor

import (
	"errors"
	"fmt"
	"io"
	"thermistor/batch"
	"thermistor/formula"
	"thermistor/load"
	"thermistor/types"
)

// 批量级错误，整体中止计算，不产生派生列。
var (
	ErrTooFewColumns = errors.New("数据文件需要至少包含两列：时间和数值")
	ErrNoParams      = errors.New("未提供计算参数")
	ErrNoTable       = errors.New("未提供数据表格")
)

// Result 一次换算的输出。
type Result struct {
	Params  formula.Params // 使用的参数集
	Input   *types.Table   // 原始表格
	Table   *types.Table   // 追加派生列后的表格
	Column  *batch.Column  // 派生列
	Summary batch.Summary  // 统计信息
}

// Process 对表格第二列逐行换算。
// 表格少于两列时返回 ErrTooFewColumns；单行的换算失败只体现在派生列中。
func Process(p formula.Params, t *types.Table, opts ...batch.Option) (*Result, error) {
	if p == nil {
		return nil, ErrNoParams
	}
	if t == nil {
		return nil, ErrNoTable
	}
	if t.NumColumns() < types.MinColumns {
		return nil, ErrTooFewColumns
	}
	column := batch.ApplyCells(p, t.Values(), opts...)
	return &Result{
		Params:  p,
		Input:   t,
		Table:   t.AppendColumn(p.ColumnName(), column.Strings()),
		Column:  column,
		Summary: column.Summary(),
	}, nil
}

// ProcessReader 按格式解析输入后换算。
func ProcessReader(p formula.Params, r io.Reader, format load.Format, opts ...batch.Option) (*Result, error) {
	t, err := load.Read(r, format)
	if err != nil {
		return nil, err
	}
	return Process(p, t, opts...)
}

// ProcessFile 读取表格文件后换算，格式由扩展名决定。
func ProcessFile(p formula.Params, filename string, opts ...batch.Option) (*Result, error) {
	t, err := load.LoadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("处理文件时出错: %w", err)
	}
	return Process(p, t, opts...)
}

// Export 写出追加了派生列的表格。
func (res *Result) Export(w io.Writer, format load.Format) error {
	return load.Write(w, res.Table, format)
}

// ExportFile 写出到文件，格式由扩展名决定。
func (res *Result) ExportFile(filename string) error {
	return load.SaveFile(filename, res.Table)
}
