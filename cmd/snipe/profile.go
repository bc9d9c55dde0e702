package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nickproject/snipe/internal/ui"
)

// validModes 支持的游戏模式
var validModes = []string{"osu", "mania", "taiko", "fruits"}

func newProfileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "profile <id> [mode]",
		Short:   "Rate a profile's chokes from its ID",
		Example: "  snipe profile 2 taiko",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.ParseUint(args[0], 10, 64); err != nil {
				return fmt.Errorf("%q is not a valid number, and therefore can not be a user ID", args[0])
			}

			mode := "osu"
			if len(args) == 2 {
				mode = strings.ToLower(args[1])
			}
			if !isValidMode(mode) {
				return fmt.Errorf("%q is not a valid gamemode, choose one of: %s", args[1], strings.Join(validModes, ", "))
			}

			store, err := a.store()
			if err != nil {
				return err
			}
			file, err := store.Load()
			if err != nil {
				return err
			}

			printer := ui.NewPrinter(cmd.OutOrStdout())
			for _, key := range []string{"client_id", "client_secret"} {
				if e, ok := file.Get(key); !ok || !e.Set {
					printer.Warn("%s is not set, use `snipe config set %s <value>` first.", key, key)
				}
			}
			printer.Warn("Profile rating is not implemented yet.")
			return nil
		},
	}
}

func isValidMode(mode string) bool {
	for _, m := range validModes {
		if m == mode {
			return true
		}
	}
	return false
}
