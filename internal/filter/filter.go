package filter

import (
	"path"
	"strings"
)

// Filter 设置名过滤器
type Filter struct {
	includePatterns []string
	excludePatterns []string
}

// New 创建过滤器
func New(include, exclude []string) *Filter {
	return &Filter{
		includePatterns: normalizePatterns(include),
		excludePatterns: normalizePatterns(exclude),
	}
}

// normalizePatterns 规范化通配符模式
func normalizePatterns(patterns []string) []string {
	result := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(strings.ToLower(p))
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// Match 判断设置项是否应该显示
func (f *Filter) Match(key string) bool {
	key = strings.ToLower(key)

	// 排除优先
	for _, pattern := range f.excludePatterns {
		if matchPattern(pattern, key) {
			return false
		}
	}

	// 没有包含列表时默认显示
	if len(f.includePatterns) == 0 {
		return true
	}

	for _, pattern := range f.includePatterns {
		if matchPattern(pattern, key) {
			return true
		}
	}

	return false
}

// matchPattern 支持 * 和 ? 通配符, 例如 client_* 匹配 client_id, client_secret
func matchPattern(pattern, key string) bool {
	matched, err := path.Match(pattern, key)
	if err != nil {
		return false
	}
	return matched
}

// IsEmpty 检查过滤器是否为空（无任何规则）
func (f *Filter) IsEmpty() bool {
	return len(f.includePatterns) == 0 && len(f.excludePatterns) == 0
}
