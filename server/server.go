// Package server 提供上传表格、换算并下载结果的 HTTP 接口。
package server

import (
	"bytes"
	"fmt"
	"math/rand"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"thermistor"
	"thermistor/batch"
	"thermistor/config"
	"thermistor/formula"
	"thermistor/load"
	"thermistor/logging"
	"thermistor/render"
	"thermistor/sample"
	"thermistor/types"
	"time"
)

// 下载文件名
var downloadNames = map[formula.Mode]string{
	formula.ModeRemap:      "转换后的温度数据",
	formula.ModeResistance: "电阻转换温度数据",
}

// Server HTTP 服务
type Server struct {
	cfg *config.Config
	mux *http.ServeMux
}

// New 创建服务，cfg 提供默认参数与上传限制。
func New(cfg *config.Config) *Server {
	s := &Server{cfg: cfg, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /convert", s.handleConvert)
	s.mux.HandleFunc("POST /summary", s.handleSummary)
	s.mux.HandleFunc("POST /chart", s.handleChart)
	s.mux.HandleFunc("GET /sample", s.handleSample)
	return s
}

// ServeHTTP 实现 http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	logging.Log.Debugf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
}

// ListenAndServe 启动服务
func (s *Server) ListenAndServe() error {
	logging.Log.Infof("监听 %s", s.cfg.Listen)
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// process 解析上传文件与表单参数并换算，请求体超过 MaxUpload 字节时报错。
func (s *Server) process(w http.ResponseWriter, r *http.Request) (*thermistor.Result, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUpload)
	if err := r.ParseMultipartForm(s.cfg.MaxUpload); err != nil {
		return nil, fmt.Errorf("解析上传数据失败: %w", err)
	}
	cfg := s.cfg.Clone()
	values := map[string]string{"mode": r.FormValue("mode")}
	for _, key := range append(append([]string{}, config.RemapKeys...), config.ResistanceKeys...) {
		values[key] = r.FormValue(key)
	}
	if err := cfg.SetValues(values); err != nil {
		return nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("缺少上传文件: %w", err)
	}
	defer file.Close()
	format, err := load.FormatFromName(header.Filename)
	if name := r.FormValue("format"); name != "" {
		format, err = load.ParseFormat(name)
	}
	if err != nil {
		return nil, err
	}
	res, err := thermistor.ProcessReader(params, file, format, batch.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, err
	}
	logging.Log.Infof("%s: 模式 %s, 数据点数 %d, 有效计算点数 %d",
		header.Filename, params.Mode(), res.Summary.Count, res.Summary.Valid)
	return res, nil
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	res, err := s.process(w, r)
	if err != nil {
		badRequest(w, err)
		return
	}
	format := load.FormatCSV
	if name := r.URL.Query().Get("output"); name != "" {
		if format, err = load.ParseFormat(name); err != nil {
			badRequest(w, err)
			return
		}
	}
	var buf bytes.Buffer
	if err := res.Export(&buf, format); err != nil {
		internalError(w, err)
		return
	}
	contentType := "text/csv; charset=utf-8"
	if format == load.FormatXLSX {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	attachment(w, downloadNames[res.Params.Mode()]+"."+format.String(), contentType)
	w.Write(buf.Bytes())
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	res, err := s.process(w, r)
	if err != nil {
		badRequest(w, err)
		return
	}
	rows, _ := strconv.ParseBool(r.URL.Query().Get("rows"))
	var buf bytes.Buffer
	if err := render.NewRecord(res, rows).Render(&buf); err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	res, err := s.process(w, r)
	if err != nil {
		badRequest(w, err)
		return
	}
	render.NewCharts(res).Handler(w, r)
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mode := formula.ModeRemap
	if m := q.Get("mode"); m != "" {
		var err error
		if mode, err = formula.ParseMode(m); err != nil {
			badRequest(w, err)
			return
		}
	}
	n := types.SampleLength
	if v := q.Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 || parsed > 1_000_000 {
			badRequest(w, fmt.Errorf("行数无效: %q", v))
			return
		}
		n = parsed
	}
	seed := time.Now().UnixNano()
	if v := q.Get("seed"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = parsed
		}
	}
	t := sample.ForMode(mode, n, rand.New(rand.NewSource(seed)))
	var buf bytes.Buffer
	if err := load.WriteCSV(&buf, t); err != nil {
		internalError(w, err)
		return
	}
	name := "示例温度数据.csv"
	if mode == formula.ModeResistance {
		name = "示例电阻数据.csv"
	}
	attachment(w, name, "text/csv; charset=utf-8")
	w.Write(buf.Bytes())
}

func attachment(w http.ResponseWriter, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
}

func badRequest(w http.ResponseWriter, err error) {
	logging.Log.Warningf("请求失败: %v", err)
	http.Error(w, strings.TrimSpace(err.Error()), http.StatusBadRequest)
}

func internalError(w http.ResponseWriter, err error) {
	logging.Log.Errorf("处理失败: %v", err)
	http.Error(w, "处理文件时出错", http.StatusInternalServerError)
}
