package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"thermistor/config"
	"thermistor/load"
	"thermistor/types"
	"thermistor/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, load.SaveFile(in, types.NewTable(utils.Cells{"时间(s)", "电阻(Ω)"},
		utils.Cells{"0", "-5"}, utils.Cells{"1", "0"}, utils.Cells{"2", "100"})))

	cfg := config.Default()
	require.NoError(t, cfg.SetValues(map[string]string{"mode": "B", "a": "-0.22467", "b": "2658.1185", "c": "-78140.2863"}))
	cfg.Input = in
	cfg.Output = filepath.Join(dir, "out.xlsx")
	cfg.Report = filepath.Join(dir, "report.json")
	cfg.Chart = filepath.Join(dir, "chart.html")
	cfg.Plot = filepath.Join(dir, "plot.png")

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	assert.Contains(t, out.String(), "数据点数: 3")
	assert.Contains(t, out.String(), "有效计算点数: 1")
	assert.Contains(t, out.String(), "平均温度: ")

	for _, name := range []string{cfg.Output, cfg.Report, cfg.Chart, cfg.Plot} {
		info, err := os.Stat(name)
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
	back, err := load.LoadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, types.ColumnResistance, back.Header[2])
}

func TestRunNoValid(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, load.SaveFile(in, types.NewTable(utils.Cells{"t", "v"}, utils.Cells{"0", "20"})))

	cfg := config.Default()
	cfg.Input = in
	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	assert.Contains(t, out.String(), "有效计算点数: 0")
	assert.Contains(t, out.String(), "平均新温度: -")
}

func TestRunErrors(t *testing.T) {
	cfg := config.Default()
	assert.Error(t, run(cfg, &bytes.Buffer{}))

	dir := t.TempDir()
	in := filepath.Join(dir, "one.csv")
	require.NoError(t, os.WriteFile(in, []byte("温度\n1\n"), 0o644))
	cfg.Input = in
	err := run(cfg, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "两列")
}

func TestWriteSample(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = "B"
	cfg.Output = filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, writeSample(cfg, 20, 1))

	tbl, err := load.LoadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, types.ColumnOhm, tbl.Header[1])
	assert.Len(t, tbl.Rows, 20)
}
