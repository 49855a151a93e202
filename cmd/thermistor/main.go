package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"thermistor"
	"thermistor/batch"
	"thermistor/config"
	"thermistor/formula"
	"thermistor/load"
	"thermistor/logging"
	"thermistor/render"
	"thermistor/sample"
	"thermistor/server"
	"time"
)

// 命令行参数名到配置键的映射
var flagKeys = map[string]string{
	"mode":      "mode",
	"in":        "input",
	"out":       "output",
	"report":    "report",
	"chart":     "chart",
	"plot":      "plot",
	"log-level": "log-level",
	"listen":    "listen",
}

func main() {
	configPath := flag.String("config", "", "配置文件路径 (yaml/json/toml)")
	flag.String("mode", "A", "计算模式: A=温度转换, B=电阻到温度")
	flag.String("in", "", "输入表格文件 (.csv / .xlsx)")
	flag.String("out", "", "输出表格文件 (.csv / .xlsx)")
	flag.String("report", "", "JSON 报告文件")
	flag.String("chart", "", "HTML 曲线文件")
	flag.String("plot", "", "曲线图片文件 (.png / .svg / .pdf)")
	flag.String("log-level", "INFO", "日志级别")
	flag.String("listen", ":8080", "HTTP 监听地址")
	flag.Int("workers", 1, "并行协程数")
	for _, key := range append(append([]string{}, config.RemapKeys...), config.ResistanceKeys...) {
		flag.String(key, "", "参数 "+key)
	}
	serve := flag.Bool("serve", false, "启动 HTTP 服务")
	sampleRows := flag.Int("sample", 0, "生成 n 行示例数据到 -out（或标准输出）后退出")
	seed := flag.Int64("seed", 0, "示例数据随机种子，0 表示使用当前时间")
	flag.Parse()

	logging.InitializeLogging(nil)
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if err := logging.ConfigureLogging(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	switch {
	case *serve:
		err = server.New(cfg).ListenAndServe()
	case *sampleRows > 0:
		err = writeSample(cfg, *sampleRows, *seed)
	default:
		err = run(cfg, os.Stdout)
	}
	if err != nil {
		logging.Log.Criticalf("%v", err)
		os.Exit(1)
	}
}

// loadConfig 读取配置文件并用显式给出的命令行参数覆盖。
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	var setErr error
	flag.Visit(func(f *flag.Flag) {
		if setErr != nil {
			return
		}
		value := f.Value.String()
		if key, ok := flagKeys[f.Name]; ok {
			switch key {
			case "mode":
				setErr = cfg.Set("mode", value)
			case "input":
				cfg.Input = value
			case "output":
				cfg.Output = value
			case "report":
				cfg.Report = value
			case "chart":
				cfg.Chart = value
			case "plot":
				cfg.Plot = value
			case "log-level":
				cfg.LogLevel = value
			case "listen":
				cfg.Listen = value
			}
			return
		}
		switch f.Name {
		case "config", "serve", "sample", "seed":
			return
		}
		setErr = cfg.Set(f.Name, value)
	})
	if setErr != nil {
		return nil, setErr
	}
	return cfg, nil
}

// run 读取输入、换算并输出结果。
func run(cfg *config.Config, stdout io.Writer) error {
	if cfg.Input == "" {
		return fmt.Errorf("需要指定输入文件 -in")
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	logging.Log.Debugf("模式 %s, 参数 %v", params.Mode(), params.Values())

	res, err := thermistor.ProcessFile(params, cfg.Input, batch.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}
	printSummary(stdout, res)

	if cfg.Output != "" {
		if err := res.ExportFile(cfg.Output); err != nil {
			return fmt.Errorf("导出数据失败: %w", err)
		}
		logging.Log.Infof("已导出 %s", cfg.Output)
	}
	if cfg.Report != "" {
		if err := writeFile(cfg.Report, func(w io.Writer) error {
			return render.NewRecord(res, true).Render(w)
		}); err != nil {
			return err
		}
	}
	if cfg.Chart != "" {
		if err := writeFile(cfg.Chart, render.NewCharts(res).Render); err != nil {
			return err
		}
	}
	if cfg.Plot != "" {
		if err := writeFile(cfg.Plot, func(w io.Writer) error {
			return render.Plot(w, res, filepath.Ext(cfg.Plot))
		}); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(w io.Writer, res *thermistor.Result) {
	s := res.Summary
	mean := "-"
	if s.HasMean() {
		mean = strconv.FormatFloat(s.Mean, 'f', 2, 64) + "°C"
	}
	fmt.Fprintf(w, "数据点数: %d\n", s.Count)
	fmt.Fprintf(w, "有效计算点数: %d\n", s.Valid)
	if res.Params.Mode() == formula.ModeRemap {
		fmt.Fprintf(w, "平均新温度: %s\n", mean)
	} else {
		fmt.Fprintf(w, "平均温度: %s\n", mean)
	}
}

func writeSample(cfg *config.Config, n int, seed int64) error {
	mode, err := formula.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	t := sample.ForMode(mode, n, rand.New(rand.NewSource(seed)))
	if cfg.Output == "" {
		return load.WriteCSV(os.Stdout, t)
	}
	return load.SaveFile(cfg.Output, t)
}

func writeFile(name string, fn func(w io.Writer) error) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := fn(file); err != nil {
		file.Close()
		return fmt.Errorf("写出 %s 失败: %w", name, err)
	}
	return file.Close()
}
