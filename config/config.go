// Package config 读取运行配置，基于 viper。
//
// 配置来源按优先级：命令行（由调用方写入）、环境变量 THERMISTOR_*、配置文件、默认值。
package config

import (
	"fmt"
	"strconv"
	"strings"
	"thermistor/formula"

	"github.com/spf13/viper"
)

// Config 运行配置
type Config struct {
	Mode       string          `mapstructure:"mode"`       // A 或 B
	Input      string          `mapstructure:"input"`      // 输入表格文件
	Output     string          `mapstructure:"output"`     // 输出表格文件
	Report     string          `mapstructure:"report"`     // JSON 报告文件
	Chart      string          `mapstructure:"chart"`      // HTML 曲线文件
	Plot       string          `mapstructure:"plot"`       // PNG/SVG 曲线文件
	Workers    int             `mapstructure:"workers"`    // 并行协程数
	LogLevel   string          `mapstructure:"log-level"`  // 日志级别
	Listen     string          `mapstructure:"listen"`     // HTTP 监听地址
	MaxUpload  int64           `mapstructure:"max-upload"` // 上传文件大小上限（字节）
	Remap      formula.ParamsA `mapstructure:"remap"`      // 公式1参数
	Resistance formula.ParamsB `mapstructure:"resistance"` // 公式2参数
}

// 参数键名，配置文件、环境变量与表单共用。
var (
	RemapKeys      = []string{"a_old", "b_old", "c_old", "a_new", "b_new", "c_new"}
	ResistanceKeys = []string{"a", "b", "c"}
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("mode", "A")
	v.SetDefault("workers", 1)
	v.SetDefault("log-level", "INFO")
	v.SetDefault("listen", ":8080")
	v.SetDefault("max-upload", 32<<20)
	for _, key := range []string{"input", "output", "report", "chart", "plot"} {
		v.SetDefault(key, "")
	}
	for key, value := range formula.DefaultParamsA().Values() {
		v.SetDefault("remap."+key, value)
	}
	for key, value := range (formula.ParamsB{}).Values() {
		v.SetDefault("resistance."+key, value)
	}
	v.SetEnvPrefix("thermistor")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Default 默认配置
func Default() *Config {
	c, err := Load("")
	if err != nil {
		panic(err)
	}
	return c
}

// Load 读取配置文件，path 为空时只使用默认值与环境变量。
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	return &c, nil
}

// Params 按模式构造参数集
func (c *Config) Params() (formula.Params, error) {
	mode, err := formula.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	if mode == formula.ModeRemap {
		return c.Remap, nil
	}
	return c.Resistance, nil
}

// Set 设置单个键值，键名同配置文件（mode、workers、a_old、a ...）。
func (c *Config) Set(key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	switch key {
	case "mode":
		if _, err := formula.ParseMode(value); err != nil {
			return err
		}
		c.Mode = value
		return nil
	case "workers":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("参数 %s 无效: %w", key, err)
		}
		c.Workers = n
		return nil
	}
	target := c.param(key)
	if target == nil {
		return fmt.Errorf("未知参数: %q", key)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("参数 %s 无效: %w", key, err)
	}
	*target = f
	return nil
}

// SetValues 批量设置，值为空的键忽略。
func (c *Config) SetValues(values map[string]string) error {
	for key, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if err := c.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Clone 复制配置
func (c *Config) Clone() *Config {
	n := *c
	return &n
}

// param 按键名定位参数字段。带 remap. 或 resistance. 前缀时只在对应参数集中查找。
func (c *Config) param(key string) *float64 {
	if k, ok := strings.CutPrefix(key, "remap."); ok {
		return c.remapParam(k)
	}
	if k, ok := strings.CutPrefix(key, "resistance."); ok {
		return c.resistanceParam(k)
	}
	if p := c.remapParam(key); p != nil {
		return p
	}
	return c.resistanceParam(key)
}

func (c *Config) remapParam(key string) *float64 {
	switch key {
	case "a_old":
		return &c.Remap.AOld
	case "b_old":
		return &c.Remap.BOld
	case "c_old":
		return &c.Remap.COld
	case "a_new":
		return &c.Remap.ANew
	case "b_new":
		return &c.Remap.BNew
	case "c_new":
		return &c.Remap.CNew
	}
	return nil
}

func (c *Config) resistanceParam(key string) *float64 {
	switch key {
	case "a":
		return &c.Resistance.A
	case "b":
		return &c.Resistance.B
	case "c":
		return &c.Resistance.C
	}
	return nil
}
