package types

// 温标常量定义
const (
	KelvinOffset = 273.15 // 摄氏度转开尔文偏移
)

// 默认列名
const (
	ColumnRemap      = "新温度(°C)"
	ColumnResistance = "计算温度(°C)"
	ColumnTime       = "时间(s)"
	ColumnTemp       = "温度(°C)"
	ColumnOhm        = "电阻(Ω)"
)

// 表格布局常量定义
const (
	MinColumns   = 2   // 表格最少列数：标签列 + 数值列
	LabelColumn  = 0   // 标签列位置
	ValueColumn  = 1   // 数值列位置
	SampleLength = 100 // 示例数据行数
)
