package formula

import (
	"fmt"
	"strings"
	"thermistor/types"
)

// Mode 换算模式。
type Mode uint8

const (
	ModeUnknown    Mode = iota
	ModeRemap           // 公式1: 旧参数温度 -> 新参数温度
	ModeResistance      // 公式2: 电阻 -> 温度
)

// String 模式名称。
func (m Mode) String() string {
	switch m {
	case ModeRemap:
		return "A"
	case ModeResistance:
		return "B"
	}
	return "?"
}

// ParseMode 解析模式名称，接受 A/B、1/2 以及 remap/resistance。
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "1", "remap", "temperature":
		return ModeRemap, nil
	case "b", "2", "resistance", "ohm":
		return ModeResistance, nil
	}
	return ModeUnknown, fmt.Errorf("未知计算模式: %q", s)
}

// Params 参数集，只由 ParamsA 与 ParamsB 实现。
// 批量计算通过它选择换算函数。
type Params interface {
	Mode() Mode
	Convert(x float64) Result // 单行换算
	ColumnName() string       // 输出列名
	Values() map[string]float64
	sealed()
}

// ParamsA 公式1参数：旧参数 a,b,c 与新参数 A,B,C。
type ParamsA struct {
	AOld float64 `mapstructure:"a_old" json:"a_old"`
	BOld float64 `mapstructure:"b_old" json:"b_old"`
	COld float64 `mapstructure:"c_old" json:"c_old"`
	ANew float64 `mapstructure:"a_new" json:"a_new"`
	BNew float64 `mapstructure:"b_new" json:"b_new"`
	CNew float64 `mapstructure:"c_new" json:"c_new"`
}

// DefaultParamsA 表单默认值：旧参数取出厂标定，新参数为零。
func DefaultParamsA() ParamsA {
	return ParamsA{AOld: -0.22467, BOld: 2658.1185, COld: -78140.2863}
}

func (ParamsA) Mode() Mode { return ModeRemap }

func (p ParamsA) Convert(t float64) Result { return ConvertA(p, t) }

func (ParamsA) ColumnName() string { return types.ColumnRemap }

func (ParamsA) sealed() {}

// Values 参数名到值的映射。
func (p ParamsA) Values() map[string]float64 {
	return map[string]float64{
		"a_old": p.AOld, "b_old": p.BOld, "c_old": p.COld,
		"a_new": p.ANew, "b_new": p.BNew, "c_new": p.CNew,
	}
}

// ParamsB 公式2参数 a,b,c。
type ParamsB struct {
	A float64 `mapstructure:"a" json:"a"`
	B float64 `mapstructure:"b" json:"b"`
	C float64 `mapstructure:"c" json:"c"`
}

func (ParamsB) Mode() Mode { return ModeResistance }

func (p ParamsB) Convert(r float64) Result { return ConvertB(p, r) }

func (ParamsB) ColumnName() string { return types.ColumnResistance }

func (ParamsB) sealed() {}

// Values 参数名到值的映射。
func (p ParamsB) Values() map[string]float64 {
	return map[string]float64{"a": p.A, "b": p.B, "c": p.C}
}
