// Package render 输出换算结果：JSON 报告、HTML 曲线与图片曲线。
package render

import (
	"io"
	"math"
	"thermistor"
	"thermistor/formula"

	"github.com/ugorji/go/codec"
)

// Row 单行记录，无效行 Value 为空。
type Row struct {
	Label  string   `codec:"label"`
	Input  string   `codec:"input"`
	Value  *float64 `codec:"value"`
	Reason string   `codec:"reason"`
}

// Stats 统计信息，未定义的值为空。
type Stats struct {
	Count  int      `codec:"count"`
	Valid  int      `codec:"valid"`
	Mean   *float64 `codec:"mean"`
	Min    *float64 `codec:"min"`
	Max    *float64 `codec:"max"`
	StdDev *float64 `codec:"stddev"`
}

// Record 一次换算的完整记录
type Record struct {
	Mode    string             `codec:"mode"`
	Column  string             `codec:"column"`
	Params  map[string]float64 `codec:"params"`
	Summary Stats              `codec:"summary"`
	Rows    []Row              `codec:"rows,omitempty"`
}

// NewRecord 由换算结果构造记录，withRows 为假时只保留统计信息。
func NewRecord(res *thermistor.Result, withRows bool) *Record {
	s := res.Summary
	rec := &Record{
		Mode:   res.Params.Mode().String(),
		Column: res.Params.ColumnName(),
		Params: res.Params.Values(),
		Summary: Stats{
			Count:  s.Count,
			Valid:  s.Valid,
			Mean:   finite(s.Mean),
			Min:    finite(s.Min),
			Max:    finite(s.Max),
			StdDev: finite(s.StdDev),
		},
	}
	if !withRows {
		return rec
	}
	labels, inputs := res.Input.Labels(), res.Input.Values()
	rec.Rows = make([]Row, res.Column.Length())
	for i := range rec.Rows {
		r := res.Column.Get(i)
		rec.Rows[i] = Row{Label: labels[i], Input: inputs[i], Reason: r.Reason.String()}
		if r.Reason == formula.ReasonNone {
			rec.Rows[i].Value = finite(r.Value)
		}
	}
	return rec
}

// Render 格式和输出内容
func (rec *Record) Render(w io.Writer) error {
	h := new(codec.JsonHandle)
	h.Indent = 2
	return codec.NewEncoder(w, h).Encode(rec)
}

// Decode 读取记录
func Decode(r io.Reader) (*Record, error) {
	var rec Record
	if err := codec.NewDecoder(r, new(codec.JsonHandle)).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
