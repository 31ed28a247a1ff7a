package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/csskit/internal/config"
)

func newConfigCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the csskit config file",
	}
	cmd.AddCommand(newConfigInitCmd(c), newConfigSetCmd(c))
	return cmd
}

// targetPath is the file config subcommands edit: --config, else the file
// that was loaded, else the project-local default.
func (c *cli) targetPath() string {
	if c.cfgFile != "" {
		return c.cfgFile
	}
	if used := c.viper.ConfigFileUsed(); used != "" {
		if _, err := os.Stat(used); err == nil {
			return used
		}
	}
	return config.LocalConfigPath
}

func newConfigInitCmd(c *cli) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented default config file",
		Args:  cobra.NoArgs,
		// A missing --config file is what init creates, so loading is skipped.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := c.cfgFile
			if path == "" {
				path = config.LocalConfigPath
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func newConfigSetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a value in the config file",
		Long: `Set a dotted key in the config file, keeping its comments.

Examples:
  csskit config set output.format preserve
  csskit config set tracing.enabled true`,
		Args: cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.cfgFile != "" {
				if _, err := os.Stat(c.cfgFile); os.IsNotExist(err) {
					return nil
				}
			}
			return c.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.targetPath()
			if err := config.SetValue(path, args[0], args[1]); err != nil {
				return err
			}
			if _, err := config.Load(viper.New(), path); err != nil {
				return fmt.Errorf("%s updated but no longer valid: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "set %s = %s in %s\n", args[0], args[1], path)
			return nil
		},
	}
}
