package render

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"thermistor"
	"thermistor/formula"
	"thermistor/types"
	"thermistor/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(t *testing.T, labels ...string) *thermistor.Result {
	t.Helper()
	p := formula.DefaultParamsA()
	p.ANew, p.BNew, p.CNew = p.AOld, p.BOld, p.COld
	tbl := types.NewTable(utils.Cells{"时间(s)", "温度(°C)"})
	values := []string{"20", "abc", "22.5", "-273.15"}
	for i, v := range values {
		tbl.Rows = append(tbl.Rows, utils.Cells{labels[i], v})
	}
	res, err := thermistor.Process(p, tbl)
	require.NoError(t, err)
	return res
}

func TestRecord(t *testing.T) {
	res := result(t, "0", "1", "2", "3")
	var buf bytes.Buffer
	require.NoError(t, NewRecord(res, true).Render(&buf))

	rec, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "A", rec.Mode)
	assert.Equal(t, types.ColumnRemap, rec.Column)
	assert.Len(t, rec.Params, 6)
	assert.Equal(t, 4, rec.Summary.Count)
	assert.Equal(t, 2, rec.Summary.Valid)
	require.NotNil(t, rec.Summary.Mean)
	assert.InDelta(t, 21.25, *rec.Summary.Mean, 1e-6)

	require.Len(t, rec.Rows, 4)
	assert.Equal(t, "ok", rec.Rows[0].Reason)
	require.NotNil(t, rec.Rows[0].Value)
	assert.InDelta(t, 20, *rec.Rows[0].Value, 1e-6)
	assert.Equal(t, "not-number", rec.Rows[1].Reason)
	assert.Nil(t, rec.Rows[1].Value)
	assert.Equal(t, "abc", rec.Rows[1].Input)
	assert.Equal(t, "zero-kelvin", rec.Rows[3].Reason)
}

func TestRecordSummaryOnly(t *testing.T) {
	p := formula.ParamsB{}
	tbl := types.NewTable(utils.Cells{"t", "r"}, utils.Cells{"0", "100"})
	res, err := thermistor.Process(p, tbl)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewRecord(res, false).Render(&buf))
	assert.NotContains(t, buf.String(), "rows")

	rec, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "B", rec.Mode)
	assert.Equal(t, 0, rec.Summary.Valid)
	assert.Nil(t, rec.Summary.Mean, "无有效值时均值为空")
}

func TestCharts(t *testing.T) {
	res := result(t, "0", "1", "2", "3")
	var buf bytes.Buffer
	require.NoError(t, NewCharts(res).Render(&buf))
	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "not-number")

	rec := httptest.NewRecorder()
	NewCharts(res).Handler(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
}

func TestPoints(t *testing.T) {
	pts, byLabel := Points(result(t, "0", "1", "2.5", "3"))
	assert.True(t, byLabel)
	require.Len(t, pts, 2)
	assert.Equal(t, 2.5, pts[1].X)
	assert.InDelta(t, 22.5, pts[1].Y, 1e-6)

	pts, byLabel = Points(result(t, "a", "b", "c", "d"))
	assert.False(t, byLabel)
	require.Len(t, pts, 2)
	assert.Equal(t, 2.0, pts[1].X)
}

func TestPlot(t *testing.T) {
	res := result(t, "0", "1", "2", "3")

	var png bytes.Buffer
	require.NoError(t, Plot(&png, res, "png"))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	require.NoError(t, Plot(&svg, res, ".SVG"))
	assert.Contains(t, svg.String(), "<svg")

	var out bytes.Buffer
	err := Plot(&out, res, "bmp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不支持的图片格式")
	assert.Zero(t, out.Len())
}
