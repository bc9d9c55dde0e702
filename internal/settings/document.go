package settings

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Document 按行保存的设置文件, 未修改的行保持原样
type Document struct {
	lines   []docLine
	entries []docEntry
}

type docLine struct {
	text string // 不含换行符
	eol  string // "\n", "\r\n" 或 "" (最后一行)
}

// docEntry 一个设置项占用的行, 多行值包含续行
type docEntry struct {
	key    string
	indent string
	first  int // lines 下标
	last   int
}

// ParseDocument 解析设置文件, 键和所在行取自 yaml 节点
func ParseDocument(path string, data []byte) (*Document, error) {
	pairs, err := parseMapping(path, data)
	if err != nil {
		return nil, err
	}

	doc := &Document{lines: splitLines(data)}
	for i, p := range pairs {
		first := p.key.Line - 1
		if first < 0 || first >= len(doc.lines) {
			return nil, &ParseError{Path: path, Line: p.key.Line, Err: &KeyNotFoundError{Key: p.key.Value}}
		}

		next := len(doc.lines)
		if i+1 < len(pairs) {
			next = pairs[i+1].key.Line - 1
		}

		text := doc.lines[first].text
		indent := text[:len(text)-len(strings.TrimLeft(text, " \t"))]
		entry := docEntry{key: p.key.Value, indent: indent, first: first, last: first}
		if !fitsOnLine(text, p.value) {
			entry.last = lastValueLine(doc.lines, first, next)
		}
		doc.entries = append(doc.entries, entry)
	}
	return doc, nil
}

func splitLines(data []byte) []docLine {
	var lines []docLine
	for _, raw := range strings.SplitAfter(string(data), "\n") {
		if raw == "" {
			continue
		}
		line := docLine{text: raw}
		switch {
		case strings.HasSuffix(raw, "\r\n"):
			line.text, line.eol = raw[:len(raw)-2], "\r\n"
		case strings.HasSuffix(raw, "\n"):
			line.text, line.eol = raw[:len(raw)-1], "\n"
		}
		lines = append(lines, line)
	}
	return lines
}

// fitsOnLine 单独解析该行能否得到同样的值
func fitsOnLine(text string, value *yaml.Node) bool {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(strings.TrimLeft(text, " \t")), &node); err != nil {
		return false
	}
	if len(node.Content) != 1 || node.Content[0].Kind != yaml.MappingNode || len(node.Content[0].Content) != 2 {
		return false
	}
	v := node.Content[0].Content[1]
	return v.Kind == yaml.ScalarNode && v.Tag == value.Tag && v.Value == value.Value
}

// lastValueLine 返回多行值的最后一行, 跳过其后的空行和顶格注释
func lastValueLine(lines []docLine, first, next int) int {
	last := first
	for i := first + 1; i < next && i < len(lines); i++ {
		text := lines[i].text
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		last = i
	}
	return last
}

// Keys 返回文件中的设置名, 按文件顺序
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		keys = append(keys, e.key)
	}
	return keys
}

// Set 用一行 "key: value" 替换该设置项占用的所有行, 其余行不变
func (d *Document) Set(key, value string) error {
	for i, e := range d.entries {
		if e.key != key {
			continue
		}

		replaced := docLine{
			text: e.indent + formatLine(encodeKey(key), value),
			eol:  d.lines[e.last].eol,
		}
		removed := e.last - e.first
		lines := make([]docLine, 0, len(d.lines)-removed)
		lines = append(lines, d.lines[:e.first]...)
		lines = append(lines, replaced)
		lines = append(lines, d.lines[e.last+1:]...)
		d.lines = lines

		d.entries[i].last = e.first
		for j := i + 1; j < len(d.entries); j++ {
			d.entries[j].first -= removed
			d.entries[j].last -= removed
		}
		return nil
	}
	return &KeyNotFoundError{Key: key}
}

// Bytes 序列化
func (d *Document) Bytes() []byte {
	var b strings.Builder
	for _, line := range d.lines {
		b.WriteString(line.text)
		b.WriteString(line.eol)
	}
	return []byte(b.String())
}

func formatLine(key, value string) string {
	if value == "" {
		return key + ":"
	}
	return key + ": " + encodeValue(value)
}

// encodeKey 普通键原样写入, 否则使用双引号
func encodeKey(key string) string {
	if isPlainSafe(key) && !strings.ContainsAny(key, ":#") {
		return key
	}
	return quote(key)
}

// encodeValue 能原样读回的值直接写入, 否则使用双引号
func encodeValue(value string) string {
	if isPlainSafe(value) {
		return value
	}
	return quote(value)
}

func quote(s string) string {
	out, err := yaml.Marshal(&yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.DoubleQuotedStyle,
		Value: s,
	})
	if err != nil {
		return s
	}
	return strings.TrimSuffix(string(out), "\n")
}

func isPlainSafe(value string) bool {
	if strings.ContainsAny(value, "\r\n") || strings.TrimSpace(value) != value {
		return false
	}
	var node yaml.Node
	if err := yaml.Unmarshal([]byte("k: "+value), &node); err != nil {
		return false
	}
	if len(node.Content) != 1 || node.Content[0].Kind != yaml.MappingNode || len(node.Content[0].Content) != 2 {
		return false
	}
	v := node.Content[0].Content[1]
	return v.Kind == yaml.ScalarNode && v.Style == 0 && v.Tag != nullTag && v.Value == value
}
