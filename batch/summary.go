package batch

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary 派生列统计：数据点数、有效计算点数与有效值的均值。
// 没有有效值时 Mean、Min、Max 为 NaN；有效值少于两个时 StdDev 为 NaN。
type Summary struct {
	Count  int     `json:"count"`
	Valid  int     `json:"valid"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"stddev"`
}

// Invalid 无效行数。
func (s Summary) Invalid() int { return s.Count - s.Valid }

// HasMean 均值是否有定义。
func (s Summary) HasMean() bool { return s.Valid > 0 }

// Summarize 统计派生列，无效行不计入均值。
func Summarize(c *Column) Summary {
	valid := c.ValidValues()
	s := Summary{
		Count:  c.Length(),
		Valid:  len(valid),
		Mean:   math.NaN(),
		Min:    math.NaN(),
		Max:    math.NaN(),
		StdDev: math.NaN(),
	}
	if s.Valid == 0 {
		return s
	}
	s.Mean = floats.Sum(valid) / float64(s.Valid)
	s.Min = floats.Min(valid)
	s.Max = floats.Max(valid)
	if s.Valid > 1 {
		s.StdDev = stat.StdDev(valid, nil)
	}
	return s
}
