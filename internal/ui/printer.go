package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer 带前缀的彩色消息输出
type Printer struct {
	out io.Writer
}

// NewPrinter 创建 Printer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Success 输出 [SUCCESS] 消息
func (p *Printer) Success(format string, args ...interface{}) {
	p.print(successStyle, "[SUCCESS]", format, args...)
}

// Warn 输出 [WARN] 消息
func (p *Printer) Warn(format string, args ...interface{}) {
	p.print(warningStyle, "[WARN]", format, args...)
}

// Error 输出 [ERROR] 消息
func (p *Printer) Error(format string, args ...interface{}) {
	p.print(errorStyle, "[ERROR]", format, args...)
}

// Notice 输出无前缀的提示
func (p *Printer) Notice(format string, args ...interface{}) {
	fmt.Fprintln(p.out, noticeStyle.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) print(style lipgloss.Style, label, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.out, style.Bold(true).Render(label)+" "+style.Render(msg))
}
