package utils

import (
	"math"
	"strconv"
	"strings"
)

// Cells 表格中的一行或一列原始单元格
type Cells []string

// Any 转换为 []any，便于交给批量计算
func (cells Cells) Any() []any {
	result := make([]any, len(cells))
	for i, v := range cells {
		result[i] = v
	}
	return result
}

// FormatFloat 以最短可往返精度格式化浮点数，NaN 输出为空单元格
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ToFloat 将单元格值转换为浮点数
// 空值、非数值以及 NaN 返回 false
func ToFloat(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	case uint:
		f = float64(val)
	case uint32:
		f = float64(val)
	case uint64:
		f = float64(val)
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = p
	case []byte:
		return ToFloat(string(val))
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// ParseString 读取第 i 个单元格，越界返回默认值
func (cells Cells) ParseString(i int, defaultValue string) string {
	if i < len(cells) {
		return cells[i]
	}
	return defaultValue
}
