package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/nickproject/snipe/internal/filter"
	"github.com/nickproject/snipe/internal/settings"
	"github.com/nickproject/snipe/internal/ui"
)

// ExportFormat 输出格式
type ExportFormat string

const (
	FormatTable ExportFormat = "table"
	FormatJSON  ExportFormat = "json"
	FormatCSV   ExportFormat = "csv"
)

// Row 一个设置项的显示行
type Row struct {
	Key         string `json:"key"`
	Setting     string `json:"setting"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	placeholder bool
}

// Rows 按文件顺序生成显示行, 值已做未设置/敏感处理
func Rows(file *settings.File, f *filter.Filter) []Row {
	if f != nil && f.IsEmpty() {
		f = nil
	}

	rows := make([]Row, 0, len(file.Entries))
	for _, e := range file.Entries {
		if f != nil && !f.Match(e.Key) {
			continue
		}
		row := Row{
			Key:     e.Key,
			Setting: settings.FormatKey(e.Key),
			Value:   e.Display(),
		}
		row.placeholder = row.Value == settings.NotSetDisplay || row.Value == settings.RedactedDisplay
		if def, ok := settings.Lookup(e.Key); ok {
			row.Description = def.Description
		}
		rows = append(rows, row)
	}
	return rows
}

// Export 按格式输出
func Export(w io.Writer, rows []Row, format ExportFormat) error {
	switch format {
	case FormatTable:
		return exportTable(rows, w)
	case FormatJSON:
		return exportJSON(rows, w)
	case FormatCSV:
		return exportCSV(rows, w)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// exportTable 每行 "<Setting>: <value>"
func exportTable(rows []Row, w io.Writer) error {
	for _, row := range rows {
		value := row.Value
		if row.placeholder {
			value = ui.PlaceholderStyle.Render(value)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", ui.KeyStyle.Render(row.Setting+":"), value); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(rows []Row, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

func exportCSV(rows []Row, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"key", "setting", "value", "description"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write([]string{row.Key, row.Setting, row.Value, row.Description}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ParseFormat 解析格式字符串
func ParseFormat(s string) (ExportFormat, error) {
	switch s {
	case "", "table", "TABLE":
		return FormatTable, nil
	case "json", "JSON":
		return FormatJSON, nil
	case "csv", "CSV":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: table, json, csv)", s)
	}
}
