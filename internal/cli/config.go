package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/imgajeed76/tabview/internal/config"
	"github.com/imgajeed76/tabview/internal/util"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get and set tabview options",
		Long: `Get and set tabview configuration options.

Options:
` + config.GenerateHelpText() + `
Status badge colours are set per label with status.colors.<status>.

Examples:
  tabview config view.page_size            # Get value
  tabview config view.page_size 25         # Set value
  tabview config status.colors.Pendente "#ffc107"
  tabview config --list                    # List all config
  tabview config --path                    # Show the config file`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}

	cmd.Flags().BoolP("list", "l", false, "List all configuration")
	cmd.Flags().Bool("path", false, "Print the config file path")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	listAll, _ := cmd.Flags().GetBool("list")
	showPath, _ := cmd.Flags().GetBool("path")
	out := cmd.OutOrStdout()

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}

	if showPath {
		fmt.Fprintln(out, path)
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if listAll {
		for _, key := range config.ListKeys() {
			value, _ := cfg.GetValue(key)
			fmt.Fprintf(out, "%s=%s\n", key, value)
		}
		if len(cfg.Source.Columns) > 0 {
			fmt.Fprintf(out, "source.columns=%s\n", strings.Join(cfg.Source.Columns, ","))
		}
		for _, status := range slices.Sorted(maps.Keys(cfg.Status.Colors)) {
			fmt.Fprintf(out, "status.colors.%s=%s\n", status, cfg.Status.Colors[status])
		}
		return nil
	}

	if len(args) == 0 {
		return util.MissingArgumentError("key", "tabview config view.page_size")
	}

	key := args[0]

	// Get or set?
	if len(args) == 1 {
		value, ok := cfg.GetValue(key)
		if !ok {
			return unknownKeyError(key)
		}
		fmt.Fprintln(out, value)
		return nil
	}

	if err := cfg.SetValue(key, args[1]); err != nil {
		return util.NewError("Cannot set config value").
			WithMessage(err.Error()).
			WithSuggestion("tabview config --help")
	}

	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func unknownKeyError(key string) error {
	return util.NewError(fmt.Sprintf("Unknown config key: %s", key)).
		WithMessage("Available keys: " + strings.Join(config.ListKeys(), ", ")).
		WithSuggestion("tabview config --list")
}
