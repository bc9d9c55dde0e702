package settings

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// FileName 设置文件名
	FileName = "snipe-yourself.yml"

	// NotSetDisplay 未设置时的显示值
	NotSetDisplay = "[not set]"
	// RedactedDisplay 敏感值的显示值
	RedactedDisplay = "[redacted]"
)

// Definition 已知设置项
type Definition struct {
	Key         string
	Description string
	Sensitive   bool
}

// Template 默认设置模板, 顺序即写入顺序
var Template = []Definition{
	{Key: "client_id", Description: "Your osu! OAuth client's ID"},
	{Key: "client_secret", Description: "Your osu! OAuth client's secret", Sensitive: true},
	{Key: "profile_id", Description: "Your osu! profile's ID"},
}

// Lookup 查找已知设置项
func Lookup(key string) (Definition, bool) {
	for _, def := range Template {
		if def.Key == key {
			return def, true
		}
	}
	return Definition{}, false
}

// DefaultContent 根据模板生成默认文件内容, 每项为空值
func DefaultContent() []byte {
	var b strings.Builder
	for _, def := range Template {
		b.WriteString(formatLine(def.Key, ""))
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// FormatKey 格式化设置名用于显示: client_id -> Client Id
func FormatKey(key string) string {
	return cases.Title(language.Und, cases.NoLower).String(strings.ReplaceAll(key, "_", " "))
}
