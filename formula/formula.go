// Package formula 实现热敏电阻两种闭式标定模型的逆公式。
//
// 两个模型都来自 ln(R) = a + b/T + c/T² 这一 Steinhart–Hart 形式的二次关系，
// 取 x = 1/T 的一个根：T = 2c / (-b + sqrt(b² - 4c(a - ln R)))。
// 所有算术异常都以 Result.Reason 返回，不会 panic。
package formula

import (
	"math"
	"thermistor/types"
)

// ConvertA 公式1：把旧参数下的温度 t(°C) 换算到新参数下的温度(°C)。
//
//	T(t) = 2C / (-B + sqrt(B² - 4C(A - a - (c + b·tk)/tk²))) - 273.15,  tk = t + 273.15
func ConvertA(p ParamsA, t float64) Result {
	if math.IsNaN(t) {
		return Invalid(ReasonNotNumber)
	}
	tk := t + types.KelvinOffset
	tk2 := tk * tk
	if tk2 == 0 {
		return Invalid(ReasonZeroKelvin)
	}
	inner := p.ANew - p.AOld - (p.COld+p.BOld*tk)/tk2
	return solve(p.BNew, p.CNew, inner)
}

// ConvertB 公式2：由电阻 R(Ω) 计算温度(°C)。
//
//	t = 2c / (-b + sqrt(b² - 4c(a - ln R))) - 273.15
func ConvertB(p ParamsB, r float64) Result {
	if math.IsNaN(r) {
		return Invalid(ReasonNotNumber)
	}
	// 先检查定义域再取对数
	if r <= 0 {
		return Invalid(ReasonNonPositiveResistance)
	}
	return solve(p.B, p.C, p.A-math.Log(r))
}

// solve 计算 2c / (-b + sqrt(b² - 4c·k)) 并转回摄氏度。
// 判别式恰好为零（重根）视为有效。
func solve(b, c, k float64) Result {
	disc := b*b - 4*c*k
	if disc < 0 {
		return Invalid(ReasonNegativeDiscriminant)
	}
	den := -b + math.Sqrt(disc)
	if den == 0 {
		return Invalid(ReasonZeroDenominator)
	}
	v := 2*c/den - types.KelvinOffset
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Invalid(ReasonNotFinite)
	}
	return Valued(v)
}
