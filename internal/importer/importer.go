// Package importer は Excel / CSV の単語リストを読み込みます。
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Config は列の割り当てと読み込み開始行です
type Config struct {
	OriginalColumn    string // 単語
	TranslationColumn string // 訳
	ContextColumn     string // 例文 (任意)
	CategoryColumn    string // カテゴリ名 (任意)
	SheetName         string // 空なら先頭シート
	StartRow          int    // 1始まり。2ならヘッダー1行を飛ばす
}

func DefaultConfig() Config {
	return Config{
		OriginalColumn:    "A",
		TranslationColumn: "B",
		ContextColumn:     "C",
		CategoryColumn:    "D",
		StartRow:          2,
	}
}

// Row はファイル1行分の単語データです
type Row struct {
	Line        int
	Original    string
	Translation string
	Context     string
	Category    string
}

// RowError は読み飛ばした行とその理由です
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Line, e.Reason)
}

var ErrUnsupportedFormat = errors.New("unsupported file format")

// Parse は拡張子で形式を判定して読み込みます (.xlsx / .csv)
func Parse(r io.Reader, filename string, cfg Config) ([]Row, []RowError, error) {
	cols, err := resolveColumns(cfg)
	if err != nil {
		return nil, nil, err
	}

	var records [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		records, err = readExcel(r, cfg.SheetName)
	case ".csv":
		records, err = readCSV(r)
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return nil, nil, err
	}

	start := cfg.StartRow
	if start < 1 {
		start = 1
	}

	var rows []Row
	var rowErrs []RowError
	for i, rec := range records {
		line := i + 1
		if line < start || isBlank(rec) {
			continue
		}
		row := Row{
			Line:        line,
			Original:    cell(rec, cols.original),
			Translation: cell(rec, cols.translation),
			Context:     cell(rec, cols.context),
			Category:    cell(rec, cols.category),
		}
		switch {
		case row.Original == "":
			rowErrs = append(rowErrs, RowError{Line: line, Reason: "missing original word"})
		case row.Translation == "":
			rowErrs = append(rowErrs, RowError{Line: line, Reason: "missing translation"})
		default:
			rows = append(rows, row)
		}
	}
	return rows, rowErrs, nil
}

func readExcel(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // 列数が行ごとに違ってもよい
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	return records, nil
}

type columnIndexes struct {
	original, translation, context, category int
}

func resolveColumns(cfg Config) (columnIndexes, error) {
	var idx columnIndexes
	var err error
	if idx.original, err = columnIndex(cfg.OriginalColumn); err != nil {
		return idx, err
	}
	if idx.translation, err = columnIndex(cfg.TranslationColumn); err != nil {
		return idx, err
	}
	if idx.context, err = columnIndex(cfg.ContextColumn); err != nil {
		return idx, err
	}
	if idx.category, err = columnIndex(cfg.CategoryColumn); err != nil {
		return idx, err
	}
	return idx, nil
}

// columnIndex は "A" を 0 に変換します。空なら -1 (未使用)
func columnIndex(col string) (int, error) {
	if col == "" {
		return -1, nil
	}
	n, err := excelize.ColumnNameToNumber(col)
	if err != nil {
		return -1, fmt.Errorf("invalid column %q: %w", col, err)
	}
	return n - 1, nil
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
