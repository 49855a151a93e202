// Package load 读取与写出测量表格（CSV / XLSX）。
package load

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"thermistor/types"
)

// Format 表格文件格式。
type Format uint8

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatXLSX
)

// String 格式扩展名。
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatXLSX:
		return "xlsx"
	}
	return "unknown"
}

// 批量级错误
var (
	ErrUnsupportedFormat = errors.New("不支持的文件格式")
	ErrEmpty             = errors.New("文件为空")
)

// ParseError 文件无法按声明格式解析。
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string { return fmt.Sprintf("解析%s文件失败: %v", e.Format, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// ParseFormat 解析格式名称（csv / xlsx，可带前导点）。
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromName 由文件名扩展名推断格式。
func FormatFromName(name string) (Format, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return ParseFormat(ext)
}

// Read 按格式读取表格。
func Read(r io.Reader, format Format) (*types.Table, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatXLSX:
		return ReadXLSX(r)
	}
	return nil, ErrUnsupportedFormat
}

// LoadFile 读取表格文件，格式由扩展名决定。
func LoadFile(filename string) (*types.Table, error) {
	format, err := FormatFromName(filename)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file, format)
}

// Write 按格式写出表格。
func Write(w io.Writer, t *types.Table, format Format) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatXLSX:
		return WriteXLSX(w, t)
	}
	return ErrUnsupportedFormat
}

// SaveFile 写出表格文件，格式由扩展名决定。
func SaveFile(filename string, t *types.Table) error {
	format, err := FormatFromName(filename)
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(file, t, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
