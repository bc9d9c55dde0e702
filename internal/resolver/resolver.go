// Package resolver 将拼错的设置名映射到已存在的设置项.
//
// 完全匹配直接返回; 否则按相似度选出最接近的设置项, 经用户确认后替换.
// 相似度使用字符二元组的 Sørensen–Dice 系数, 当输入是设置名的模糊子序列
// (例如 "secret" 之于 "client_secret") 时, 得分不低于输入覆盖设置名的比例.
// 得分相同时取文件中靠前的设置项.
package resolver

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"

	"github.com/nickproject/snipe/internal/logger"
	"github.com/nickproject/snipe/internal/prompt"
	"github.com/nickproject/snipe/internal/settings"
)

// Match 候选设置项
type Match struct {
	Key   string
	Score float64 // 0..1
}

// UnknownSettingError 没有足够相似的设置项
type UnknownSettingError struct {
	Input string
	Best  Match // Key 为空表示没有任何候选
}

func (e *UnknownSettingError) Error() string {
	if e.Best.Key == "" {
		return fmt.Sprintf("setting \"%s\" does not exist", e.Input)
	}
	return fmt.Sprintf("setting \"%s\" does not exist and nothing similar was found (closest: %s, %.2f)",
		e.Input, settings.FormatKey(e.Best.Key), e.Best.Score)
}

// Resolver 设置名解析
type Resolver struct {
	confirm       prompt.Confirmer
	minConfidence float64
}

// New 创建 Resolver, minConfidence 为给出建议所需的最低相似度
func New(confirm prompt.Confirmer, minConfidence float64) *Resolver {
	return &Resolver{confirm: confirm, minConfidence: minConfidence}
}

// Question 返回纠错确认问题
func Question(input, key string) string {
	return fmt.Sprintf("Setting \"%s\" does not exist. Did you mean %s?", input, settings.FormatKey(key))
}

// Resolve 返回 input 对应的设置名, 用户拒绝时返回 settings.ErrUserAborted
func (r *Resolver) Resolve(input string, keys []string) (string, error) {
	for _, k := range keys {
		if k == input {
			return k, nil
		}
	}

	best, ok := BestMatch(input, keys)
	if !ok || best.Score < r.minConfidence {
		return "", &UnknownSettingError{Input: input, Best: best}
	}

	accepted, err := r.confirm.Confirm(Question(input, best.Key))
	if err != nil {
		return "", err
	}
	if !accepted {
		logger.Debug("用户拒绝纠错", "input", input, "suggestion", best.Key)
		return "", settings.ErrUserAborted
	}

	logger.Debug("设置名已纠正", "input", input, "key", best.Key, "score", best.Score)
	return best.Key, nil
}

// BestMatch 返回得分最高的设置项, 平分时取靠前者
func BestMatch(input string, keys []string) (Match, bool) {
	if len(keys) == 0 {
		return Match{}, false
	}

	scores := make([]float64, len(keys))
	for i, k := range keys {
		scores[i] = Similarity(input, k)
	}
	for _, m := range fuzzy.Find(input, keys) {
		coverage := float64(len([]rune(input))) / float64(len([]rune(keys[m.Index])))
		if coverage > scores[m.Index] {
			scores[m.Index] = coverage
		}
	}

	best := 0
	for i := 1; i < len(keys); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return Match{Key: keys[best], Score: scores[best]}, true
}

// Similarity 计算 Sørensen–Dice 系数 (忽略大小写和空白)
func Similarity(a, b string) float64 {
	a, b = normalize(a), normalize(b)
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	bigrams := make(map[string]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		bigrams[string(ra[i:i+2])]++
	}

	intersection := 0
	for i := 0; i < len(rb)-1; i++ {
		bg := string(rb[i : i+2])
		if bigrams[bg] > 0 {
			bigrams[bg]--
			intersection++
		}
	}

	return 2 * float64(intersection) / float64(len(ra)+len(rb)-2)
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
