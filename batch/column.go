package batch

import (
	"math"
	"thermistor/formula"
	"thermistor/utils"
)

// Column 派生列：与输入数值列等长、同序的换算结果。
// 创建后不再修改，所有访问方法都返回副本。
type Column struct {
	results []formula.Result
}

// NewColumn 由结果切片创建派生列（复制一份）。
func NewColumn(results []formula.Result) *Column {
	return &Column{results: append([]formula.Result(nil), results...)}
}

// Length 行数。
func (c *Column) Length() int { return len(c.results) }

// Get 第 i 行结果。
func (c *Column) Get(i int) formula.Result { return c.results[i] }

// Valid 第 i 行是否有效。
func (c *Column) Valid(i int) bool { return c.results[i].Valid() }

// Results 结果副本。
func (c *Column) Results() []formula.Result {
	return append([]formula.Result(nil), c.results...)
}

// Values 数值副本，无效行为 NaN。
func (c *Column) Values() []float64 {
	out := make([]float64, len(c.results))
	for i, r := range c.results {
		if r.Valid() {
			out[i] = r.Value
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// ValidValues 仅有效行的数值，保持原顺序。
func (c *Column) ValidValues() []float64 {
	out := make([]float64, 0, len(c.results))
	for _, r := range c.results {
		if r.Valid() {
			out = append(out, r.Value)
		}
	}
	return out
}

// Strings 导出用的单元格文本，无效行为空单元格。
func (c *Column) Strings() utils.Cells {
	out := make(utils.Cells, len(c.results))
	for i, r := range c.results {
		if r.Valid() {
			out[i] = utils.FormatFloat(r.Value)
		}
	}
	return out
}

// Summary 统计信息。
func (c *Column) Summary() Summary { return Summarize(c) }
