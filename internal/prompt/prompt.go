// Package prompt 提供交互式确认
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	// ErrNoInput 输入结束但没有得到回答
	ErrNoInput = errors.New("no answer was given to the prompt")
	// ErrInterrupted 用户按下 Ctrl+C
	ErrInterrupted = errors.New("prompt interrupted")
)

// Confirmer 是/否确认
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ConfirmFunc 函数适配器
type ConfirmFunc func(question string) (bool, error)

// Confirm 实现 Confirmer
func (f ConfirmFunc) Confirm(question string) (bool, error) {
	return f(question)
}

// New 终端下使用交互界面, 否则逐行读取
func New(in *os.File, out io.Writer) Confirmer {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return NewTerminal(in, out)
	}
	return NewLine(in, out)
}

// Line 从 reader 逐行读取回答
type Line struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLine 创建逐行确认
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{r: bufio.NewReader(in), out: out}
}

// Confirm 实现 Confirmer
func (l *Line) Confirm(question string) (bool, error) {
	fmt.Fprintf(l.out, "%s (y/N) ", question)

	answer, err := l.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read answer: %w", err)
		}
		if strings.TrimSpace(answer) == "" {
			fmt.Fprintln(l.out)
			return false, ErrNoInput
		}
	}
	return IsYes(answer), nil
}

// IsYes 判断回答是否为肯定
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
