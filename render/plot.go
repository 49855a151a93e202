package render

import (
	"fmt"
	"image/color"
	"io"
	"slices"
	"strings"
	"thermistor"
	"thermistor/utils"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// 图片尺寸
var (
	PlotWidth  = 8 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// PlotFormats 支持的图片格式
var PlotFormats = []string{"png", "svg", "pdf", "jpg"}

// Points 有效行的绘图点。
// 标签列全部可解析为数值时以标签为横轴，否则以行号为横轴。
func Points(res *thermistor.Result) (pts plotter.XYs, byLabel bool) {
	labels := res.Input.Labels()
	xs := make([]float64, len(labels))
	byLabel = len(labels) > 0
	for i, l := range labels {
		v, ok := utils.ToFloat(l)
		if !ok {
			byLabel = false
			break
		}
		xs[i] = v
	}
	pts = make(plotter.XYs, 0, res.Summary.Valid)
	for i, r := range res.Column.Results() {
		if !r.Valid() {
			continue
		}
		x := float64(i)
		if byLabel {
			x = xs[i]
		}
		pts = append(pts, plotter.XY{X: x, Y: r.Value})
	}
	return pts, byLabel
}

// Plot 绘制计算结果曲线，format 为 png、svg、pdf 或 jpg。
func Plot(w io.Writer, res *thermistor.Result, format string) error {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if !slices.Contains(PlotFormats, format) {
		return fmt.Errorf("不支持的图片格式 %q", format)
	}
	pts, byLabel := Points(res)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("mode %s: %d/%d valid", res.Params.Mode(), res.Summary.Valid, res.Summary.Count)
	p.X.Label.Text = "row"
	if byLabel {
		p.X.Label.Text = "label"
	}
	p.Y.Label.Text = "T (°C)"
	p.Add(plotter.NewGrid())

	if len(pts) > 0 {
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("创建曲线失败: %w", err)
		}
		line.Color = color.RGBA{R: 199, G: 25, B: 121, A: 255}
		points.Color = line.Color
		points.Radius = vg.Points(1.5)
		p.Add(line, points)
		p.Legend.Add("T", line, points)
	}

	wt, err := p.WriterTo(PlotWidth, PlotHeight, format)
	if err != nil {
		return fmt.Errorf("不支持的图片格式 %q: %w", format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}
