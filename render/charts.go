package render

import (
	"fmt"
	"io"
	"net/http"
	"thermistor"
	"thermistor/formula"
	"thermistor/logging"
	"thermistor/types"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	echartstypes "github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	*thermistor.Result
}

// NewCharts 由换算结果创建曲线
func NewCharts(res *thermistor.Result) *Charts { return &Charts{Result: res} }

func lineOpts(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "热敏电阻参数计算",
			Theme:     echartstypes.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(true),
	}
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	labels := c.Input.Labels()
	inputName := c.Input.Header.ParseString(types.ValueColumn, "")

	// 原始数据，非数值行留空
	lineIn := charts.NewLine()
	lineIn.SetGlobalOptions(lineOpts("原始数据", inputName)...)
	itemsIn := make([]opts.LineData, len(labels))
	for i, cell := range c.Input.Values() {
		itemsIn[i].Value = "-"
		if r := c.Column.Get(i); r.Reason != formula.ReasonNotNumber {
			itemsIn[i].Value = cell
		}
	}
	lineIn.SetXAxis(labels).AddSeries(inputName, itemsIn)

	// 计算结果，无效行留空
	name := c.Params.ColumnName()
	lineOut := charts.NewLine()
	lineOut.SetGlobalOptions(lineOpts("计算结果", fmt.Sprintf("有效计算点数 %d / %d", c.Summary.Valid, c.Summary.Count))...)
	itemsOut := make([]opts.LineData, c.Column.Length())
	for i, v := range c.Column.Values() {
		itemsOut[i].Value = "-"
		if c.Column.Valid(i) {
			itemsOut[i].Value = v
		}
	}
	lineOut.SetXAxis(labels).AddSeries(name, itemsOut)

	// 无效原因分布
	counts := make(map[formula.Reason]int)
	for _, r := range c.Column.Results() {
		counts[r.Reason]++
	}
	items := make([]opts.PieData, 0, len(counts))
	for reason := formula.ReasonNone; reason <= formula.ReasonNotFinite; reason++ {
		if n := counts[reason]; n > 0 {
			items = append(items, opts.PieData{Name: reason.String(), Value: n})
		}
	}
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: echartstypes.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: "计算状态", Subtitle: "各行换算结果分类"}),
	)
	pie.AddSeries("状态", items)

	// 构建界面
	page := components.NewPage()
	page.PageTitle = "热敏电阻参数计算"
	page.AddCharts(
		lineIn,
		lineOut,
		pie,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func (c *Charts) Error(err error) { logging.Log.Errorf("渲染曲线失败: %v", err) }
