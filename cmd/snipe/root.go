package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nickproject/snipe/internal/config"
	"github.com/nickproject/snipe/internal/logger"
	"github.com/nickproject/snipe/internal/prompt"
	"github.com/nickproject/snipe/internal/settings"
	"github.com/nickproject/snipe/internal/ui"
)

var version = "dev"

// app 命令运行环境
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	in      *os.File
	out     io.Writer
	errOut  io.Writer
	confirm prompt.Confirmer // nil 表示根据 stdin 自动选择
}

func newApp(in *os.File, out, errOut io.Writer) *app {
	return &app{
		v:      viper.New(),
		cfg:    config.Default(),
		in:     in,
		out:    out,
		errOut: errOut,
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "snipe",
		Short:         "Find the scores worth sniping on an osu! profile",
		Long:          `snipe keeps your osu! API credentials in a local config file and rates profiles.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path (default: <user config dir>/"+settings.FileName+")")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-file", "", "log file path")
	rootCmd.PersistentFlags().Float64("autocorrect-confidence", 0, "minimum similarity (0-1) before a mistyped setting is suggested")

	// 绑定到 viper
	a.v.BindPFlag("settings.path", rootCmd.PersistentFlags().Lookup("config"))
	a.v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	a.v.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))
	a.v.BindPFlag("resolver.autocorrect_confidence", rootCmd.PersistentFlags().Lookup("autocorrect-confidence"))

	rootCmd.AddCommand(newConfigCmd(a), newProfileCmd(a))
	return rootCmd
}

// setup 读取参数并初始化日志
func (a *app) setup() error {
	if err := a.v.Unmarshal(a.cfg); err != nil {
		return fmt.Errorf("parse options: %w", err)
	}

	if c := a.cfg.Resolver.AutocorrectConfidence; c < 0 || c > 1 {
		return fmt.Errorf("--autocorrect-confidence must be between 0 and 1, got %v", c)
	}

	logCfg := logger.Config{
		Level:     a.cfg.Logging.Level,
		File:      a.cfg.Logging.File,
		MaxSizeMB: a.cfg.Logging.MaxSizeMB,
		MaxFiles:  a.cfg.Logging.MaxFiles,
		Console:   a.errOut,
	}
	if err := logger.Init(logCfg); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	return nil
}

// store 打开设置文件, 不存在时写入默认内容
func (a *app) store() (*settings.Store, error) {
	store, err := settings.NewStore(a.cfg.Settings.Path)
	if err != nil {
		return nil, err
	}
	if _, err := store.EnsureExists(); err != nil {
		return nil, err
	}
	return store, nil
}

func (a *app) confirmer() prompt.Confirmer {
	if a.confirm == nil {
		a.confirm = prompt.New(a.in, a.out)
	}
	return a.confirm
}

// execute 运行命令并返回退出码
func execute(a *app, args []string) int {
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	if errors.Is(err, settings.ErrUserAborted) {
		ui.NewPrinter(a.errOut).Notice("Aborted, nothing was changed.")
		return 1
	}

	logger.Debug("命令失败", "error", err)
	ui.NewPrinter(a.errOut).Error("%s", describe(err))
	return 1
}

// describe 将错误转换为用户可读的消息
func describe(err error) string {
	var (
		ioErr    *settings.IOError
		parseErr *settings.ParseError
	)
	switch {
	case errors.As(err, &parseErr):
		return parseErr.Error() + ". Run `snipe config reset` to restore the defaults."
	case errors.As(err, &ioErr):
		return ioErr.Error()
	case errors.Is(err, prompt.ErrNoInput), errors.Is(err, prompt.ErrInterrupted):
		return "No answer was given, nothing was changed."
	default:
		return err.Error()
	}
}
