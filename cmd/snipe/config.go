package main

import (
	"github.com/spf13/cobra"

	"github.com/nickproject/snipe/internal/export"
	"github.com/nickproject/snipe/internal/filter"
	"github.com/nickproject/snipe/internal/logger"
	"github.com/nickproject/snipe/internal/resolver"
	"github.com/nickproject/snipe/internal/settings"
	"github.com/nickproject/snipe/internal/ui"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View or modify the config",
	}
	configCmd.AddCommand(newConfigListCmd(a), newConfigSetCmd(a), newConfigResetCmd(a))
	return configCmd
}

func newConfigListCmd(a *app) *cobra.Command {
	var (
		format  string
		include []string
		exclude []string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "View the current config",
		Example: "  snipe config list\n  snipe config list --include 'client_*' --format json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exportFormat, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			store, err := a.store()
			if err != nil {
				return err
			}
			file, err := store.Load()
			if err != nil {
				return err
			}

			rows := export.Rows(file, filter.New(include, exclude))
			return export.Export(cmd.OutOrStdout(), rows, exportFormat)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table|json|csv)")
	cmd.Flags().StringSliceVar(&include, "include", nil, "only show settings matching these patterns")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "hide settings matching these patterns")
	return cmd
}

func newConfigSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "set <setting> [value]",
		Short:   "Update a setting, or clear it when no value is given",
		Example: "  snipe config set client_id 12345\n  snipe config set profile_id",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			setting, value := args[0], ""
			if len(args) == 2 {
				value = args[1]
			}

			store, err := a.store()
			if err != nil {
				return err
			}
			file, err := store.Load()
			if err != nil {
				return err
			}

			key, err := resolver.New(a.confirmer(), a.cfg.Resolver.AutocorrectConfidence).Resolve(setting, file.Keys())
			if err != nil {
				return err
			}
			if err := store.Set(key, value); err != nil {
				return err
			}
			logger.Info("设置已更新", "key", key)

			printer := ui.NewPrinter(cmd.OutOrStdout())
			name := settings.FormatKey(key)
			def, _ := settings.Lookup(key)
			switch {
			case value == "":
				printer.Success("Successfully cleared %s", name)
			case def.Sensitive:
				printer.Success("Successfully updated %s", name)
			default:
				printer.Success("Successfully updated %s to %s", name, value)
			}
			return nil
		},
	}
}

func newConfigResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the config to the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}

			reset, err := store.Reset(a.confirmer())
			if err != nil {
				return err
			}

			printer := ui.NewPrinter(cmd.OutOrStdout())
			if reset {
				printer.Success("The config has been successfully reset!")
			} else {
				printer.Notice("The config was not reset.")
			}
			return nil
		},
	}
}
