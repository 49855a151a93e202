package formula

import "math"

// Reason 单行换算无效的原因。
type Reason uint8

const (
	ReasonNone                  Reason = iota // 有效
	ReasonNotNumber                           // 非数值或缺失
	ReasonZeroKelvin                          // 绝对温度为零（除零）
	ReasonNonPositiveResistance               // 电阻不大于零（对数定义域）
	ReasonNegativeDiscriminant                // 判别式为负
	ReasonZeroDenominator                     // 分母为零
	ReasonNotFinite                           // 结果不是有限值
)

var reasonNames = [...]string{
	ReasonNone:                  "ok",
	ReasonNotNumber:             "not-number",
	ReasonZeroKelvin:            "zero-kelvin",
	ReasonNonPositiveResistance: "non-positive-resistance",
	ReasonNegativeDiscriminant:  "negative-discriminant",
	ReasonZeroDenominator:       "zero-denominator",
	ReasonNotFinite:             "not-finite",
}

// String 原因名称。
func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Result 单行换算结果。
// Reason 为 ReasonNone 时 Value 有效，否则 Value 为 NaN。
type Result struct {
	Value  float64
	Reason Reason
}

// Valid 是否为有效结果。
func (r Result) Valid() bool { return r.Reason == ReasonNone }

// Valued 构造有效结果。
func Valued(v float64) Result { return Result{Value: v} }

// Invalid 构造无效标记。
func Invalid(reason Reason) Result { return Result{Value: math.NaN(), Reason: reason} }
