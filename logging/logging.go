// Package logging 分级日志，基于 go-logging。
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/op/go-logging"
)

// Log 全局日志
var Log = logging.MustGetLogger("thermistor")

var (
	mu      sync.Mutex
	leveled logging.LeveledBackend
	format  = logging.MustStringFormatter(
		"%{color}%{time:15:04:05.000} %{level:.4s} [%{shortfunc}] ▶ %{message}%{color:reset}",
	)
	plain = logging.MustStringFormatter(
		"%{time:15:04:05.000} %{level:.4s} [%{shortfunc}] %{message}",
	)
)

// InitializeLogging 安装日志后端，默认 INFO 级别。
// w 为 nil 时输出到标准错误，非终端输出不带颜色。
func InitializeLogging(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	f := plain
	if w == nil {
		w, f = os.Stderr, format
	}
	backend := logging.NewLogBackend(w, "", 0)
	leveled = logging.AddModuleLevel(logging.NewBackendFormatter(backend, f))
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// ConfigureLogging 设置日志级别（DEBUG、INFO、WARNING、ERROR ...）。
func ConfigureLogging(level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return fmt.Errorf("无效的日志级别 %q: %w", level, err)
	}
	mu.Lock()
	defer mu.Unlock()
	if leveled == nil {
		logging.SetLevel(lvl, "")
		return nil
	}
	leveled.SetLevel(lvl, "")
	return nil
}
