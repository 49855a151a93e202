// Package sample 生成用于试算的示例数据。
package sample

import (
	"math"
	"math/rand"
	"strconv"
	"thermistor/formula"
	"thermistor/types"
	"thermistor/utils"
)

// Temperature 温度示例：20 + 10·sin(0.1·t) 叠加 σ=0.5 的噪声。
func Temperature(n int, rng *rand.Rand) *types.Table {
	return generate(types.ColumnTemp, n, func(t float64) float64 {
		return 20 + 10*math.Sin(0.1*t) + rng.NormFloat64()*0.5
	})
}

// Resistance 电阻示例：10000·exp(-0.01·t) 叠加 σ=100 的噪声。
func Resistance(n int, rng *rand.Rand) *types.Table {
	return generate(types.ColumnOhm, n, func(t float64) float64 {
		return 10000*math.Exp(-0.01*t) + rng.NormFloat64()*100
	})
}

// ForMode 按模式生成示例数据
func ForMode(mode formula.Mode, n int, rng *rand.Rand) *types.Table {
	if mode == formula.ModeResistance {
		return Resistance(n, rng)
	}
	return Temperature(n, rng)
}

func generate(name string, n int, value func(t float64) float64) *types.Table {
	t := types.NewTable(utils.Cells{types.ColumnTime, name})
	t.Rows = make([]utils.Cells, n)
	for i := range t.Rows {
		t.Rows[i] = utils.Cells{strconv.Itoa(i), utils.FormatFloat(value(float64(i)))}
	}
	return t
}
