// Package batch 把换算函数逐行应用到数值列，并对派生列做统计。
package batch

import (
	"sync"
	"thermistor/formula"
	"thermistor/utils"
)

// config 批量计算选项。
type config struct {
	workers int // 并行协程数，<=1 时顺序计算
}

// Option 批量计算选项函数。
type Option func(*config)

// WithWorkers 设置并行协程数。
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// minChunk 每个协程至少处理的行数，过小的表格不值得拆分。
const minChunk = 256

// Apply 对数值列逐行换算，得到等长、同序的派生列。
// 不能转换为数值的单元格得到 ReasonNotNumber，任何一行的失败都不影响其他行。
func Apply(p formula.Params, values []any, opts ...Option) *Column {
	return apply(p, len(values), func(i int) formula.Result {
		v, ok := utils.ToFloat(values[i])
		if !ok {
			return formula.Invalid(formula.ReasonNotNumber)
		}
		return p.Convert(v)
	}, opts)
}

// ApplyFloats 数值切片版本的 Apply。
func ApplyFloats(p formula.Params, values []float64, opts ...Option) *Column {
	return apply(p, len(values), func(i int) formula.Result {
		return p.Convert(values[i])
	}, opts)
}

// ApplyCells 单元格文本版本的 Apply。
func ApplyCells(p formula.Params, cells utils.Cells, opts ...Option) *Column {
	return Apply(p, cells.Any(), opts...)
}

func apply(p formula.Params, n int, row func(i int) formula.Result, opts []Option) *Column {
	cfg := config{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	results := make([]formula.Result, n)
	if p == nil {
		for i := range results {
			results[i] = formula.Invalid(formula.ReasonNotNumber)
		}
		return &Column{results: results}
	}
	workers := cfg.workers
	if limit := n / minChunk; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		for i := range results {
			results[i] = row(i)
		}
		return &Column{results: results}
	}
	// 每个协程只写自己的区间，结果自然保持原始行序
	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				results[i] = row(i)
			}
		}(start, end)
	}
	wg.Wait()
	return &Column{results: results}
}
