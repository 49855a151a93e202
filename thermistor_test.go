package thermistor

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"thermistor/batch"
	"thermistor/formula"
	"thermistor/load"
	"thermistor/types"
	"thermistor/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity() formula.ParamsA {
	p := formula.DefaultParamsA()
	p.ANew, p.BNew, p.CNew = p.AOld, p.BOld, p.COld
	return p
}

// TestProcessIdentity 公式1恒等换算：输出温度等于输入温度。
func TestProcessIdentity(t *testing.T) {
	tbl := types.NewTable(utils.Cells{"时间(s)", "温度(°C)"},
		utils.Cells{"0", "20"},
		utils.Cells{"1", "25.5"},
		utils.Cells{"2", "-12.25"},
		utils.Cells{"3", "80"},
	)
	res, err := Process(identity(), tbl)
	require.NoError(t, err)

	require.Equal(t, 4, res.Column.Length())
	for i, row := range tbl.Rows {
		in, _ := utils.ToFloat(row[1])
		r := res.Column.Get(i)
		require.True(t, r.Valid(), "第 %d 行", i)
		assert.InDelta(t, in, r.Value, 1e-6)
	}
	assert.Equal(t, utils.Cells{"时间(s)", "温度(°C)", types.ColumnRemap}, res.Table.Header)
	assert.Equal(t, 2, tbl.NumColumns(), "原表格不应被修改")
	assert.Equal(t, 4, res.Summary.Count)
	assert.Equal(t, 4, res.Summary.Valid)
	assert.InDelta(t, (20+25.5-12.25+80)/4, res.Summary.Mean, 1e-6)
}

// TestProcessResistanceDomain 电阻列 [-5, 0, 100]。
func TestProcessResistanceDomain(t *testing.T) {
	f := formula.DefaultParamsA()
	p := formula.ParamsB{A: f.AOld, B: f.BOld, C: f.COld}
	tbl, err := load.ReadCSV(strings.NewReader("时间(s),电阻(Ω)\n0,-5\n1,0\n2,100\n"))
	require.NoError(t, err)

	res, err := Process(p, tbl)
	require.NoError(t, err)
	assert.False(t, res.Column.Valid(0))
	assert.False(t, res.Column.Valid(1))
	require.True(t, res.Column.Valid(2))
	assert.False(t, math.IsInf(res.Column.Get(2).Value, 0))

	// 无效行导出为空单元格
	assert.Equal(t, "", res.Table.Rows[0][2])
	assert.Equal(t, "", res.Table.Rows[1][2])
	assert.Equal(t, utils.FormatFloat(res.Column.Get(2).Value), res.Table.Rows[2][2])
}

// TestProcessSingleColumn 单列表格为批量级错误，不产生派生列。
func TestProcessSingleColumn(t *testing.T) {
	tbl := types.NewTable(utils.Cells{"温度"}, utils.Cells{"1"}, utils.Cells{"2"})
	res, err := Process(identity(), tbl)
	assert.ErrorIs(t, err, ErrTooFewColumns)
	assert.Nil(t, res)

	_, err = ProcessReader(identity(), strings.NewReader("温度\n1\n"), load.FormatCSV)
	assert.ErrorIs(t, err, ErrTooFewColumns)

	_, err = Process(nil, tbl)
	assert.ErrorIs(t, err, ErrNoParams)
	_, err = Process(identity(), nil)
	assert.ErrorIs(t, err, ErrNoTable)
}

// TestProcessAllInvalid 全部无效：有效点数为 0，均值未定义，总数不变。
func TestProcessAllInvalid(t *testing.T) {
	tbl := types.NewTable(utils.Cells{"t", "v"},
		utils.Cells{"0", "abc"},
		utils.Cells{"1", "20"},
		utils.Cells{"2"},
	)
	res, err := Process(formula.DefaultParamsA(), tbl, batch.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Summary.Count)
	assert.Equal(t, 0, res.Summary.Valid)
	assert.True(t, math.IsNaN(res.Summary.Mean))
	assert.Equal(t, formula.ReasonNotNumber, res.Column.Get(0).Reason)
	assert.Equal(t, formula.ReasonZeroDenominator, res.Column.Get(1).Reason)
	assert.Equal(t, formula.ReasonNotNumber, res.Column.Get(2).Reason)
	assert.Len(t, res.Table.Rows[2], 3, "短行补齐后追加派生列")
}

// TestProcessFileExport 读取文件、换算并导出。
func TestProcessFileExport(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	src := types.NewTable(utils.Cells{"时间(s)", "温度(°C)"}, utils.Cells{"0", "25"}, utils.Cells{"1", "x"})
	require.NoError(t, load.SaveFile(in, src))

	res, err := ProcessFile(identity(), in)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.Export(&buf, load.FormatCSV))
	assert.True(t, strings.HasPrefix(buf.String(), "\xef\xbb\xbf"))
	assert.Contains(t, buf.String(), types.ColumnRemap)

	out := filepath.Join(dir, "out.xlsx")
	require.NoError(t, res.ExportFile(out))
	back, err := load.LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, res.Table.Header, back.Header)

	_, err = ProcessFile(identity(), filepath.Join(dir, "in.txt"))
	assert.ErrorIs(t, err, load.ErrUnsupportedFormat)
}
