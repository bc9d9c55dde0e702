package ui

import "github.com/charmbracelet/lipgloss"

var (
	// 颜色定义
	primaryColor   = lipgloss.Color("39")  // 青色
	secondaryColor = lipgloss.Color("243") // 灰色
	successColor   = lipgloss.Color("42")  // 绿色
	warningColor   = lipgloss.Color("214") // 橙色
	errorColor     = lipgloss.Color("196") // 红色

	successStyle = lipgloss.NewStyle().Foreground(successColor)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	noticeStyle  = lipgloss.NewStyle().Foreground(secondaryColor)

	// 设置名样式
	KeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// 未设置/已隐藏的值
	PlaceholderStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(secondaryColor)
)
