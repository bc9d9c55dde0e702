package settings

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const nullTag = "!!null"

// Entry 单个设置项
type Entry struct {
	Key   string
	Value string
	Set   bool // false 表示空值或 null
}

// Display 返回用于显示的值
func (e Entry) Display() string {
	if !e.Set || e.Value == "" {
		return NotSetDisplay
	}
	if def, ok := Lookup(e.Key); ok && def.Sensitive {
		return RedactedDisplay
	}
	return e.Value
}

// File 有序的设置映射
type File struct {
	Entries []Entry
}

// Keys 返回所有设置名, 按文件顺序
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.Entries))
	for _, e := range f.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Get 读取设置值
func (f *File) Get(key string) (Entry, bool) {
	for _, e := range f.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Has 判断设置项是否存在
func (f *File) Has(key string) bool {
	_, ok := f.Get(key)
	return ok
}

// ParseFile 解析设置文件, 只接受扁平的标量映射
func ParseFile(path string, data []byte) (*File, error) {
	pairs, err := parseMapping(path, data)
	if err != nil {
		return nil, err
	}

	file := &File{Entries: make([]Entry, 0, len(pairs))}
	for _, p := range pairs {
		entry := Entry{Key: p.key.Value}
		if p.value.Tag != nullTag {
			entry.Value = p.value.Value
			entry.Set = p.value.Value != ""
		}
		file.Entries = append(file.Entries, entry)
	}
	return file, nil
}

// pair 映射中的一组键值节点
type pair struct {
	key   *yaml.Node
	value *yaml.Node
}

// parseMapping 解析并校验顶层映射, 按文件顺序返回键值节点
func parseMapping(path string, data []byte) ([]pair, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	mapping := root.Content[0]
	if mapping.Kind == yaml.ScalarNode && mapping.Tag == nullTag {
		return nil, nil
	}
	if mapping.Kind != yaml.MappingNode {
		return nil, &ParseError{Path: path, Line: mapping.Line, Err: errors.New("expected a list of \"key: value\" lines")}
	}

	pairs := make([]pair, 0, len(mapping.Content)/2)
	seen := make(map[string]bool, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		k, v := mapping.Content[i], mapping.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, &ParseError{Path: path, Line: k.Line, Err: errors.New("setting names must be plain strings")}
		}
		if seen[k.Value] {
			return nil, &ParseError{Path: path, Line: k.Line, Err: fmt.Errorf("setting %q is defined more than once", k.Value)}
		}
		seen[k.Value] = true

		if v.Kind != yaml.ScalarNode {
			return nil, &ParseError{Path: path, Line: v.Line, Err: fmt.Errorf("value of %q must be a single value", k.Value)}
		}
		pairs = append(pairs, pair{key: k, value: v})
	}
	return pairs, nil
}
