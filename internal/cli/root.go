package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/imgajeed76/tabview/internal/log"
	"github.com/imgajeed76/tabview/internal/ui/styles"
	"github.com/imgajeed76/tabview/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabview",
		Short: "Filter, sort and page through process reports",
		Long: `tabview shows a process report as a paged table with text, type and
status filters, sortable columns and per-status counts.

Rows can come from JSON (comments allowed), YAML, CSV, a previously
exported HTML report, a SQLite file or a PostgreSQL URL. The same view can
be browsed interactively, printed, or exported as a standalone HTML page.

Examples:
  tabview view processos.json
  tabview view processos.csv --status Pendente --sort data_abertura --desc
  tabview view postgres://localhost/erp -q "SELECT * FROM processos"
  tabview export processos.yaml -o relatorio.html
  tabview stats processos.json --type todos`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().String("config", "", "Config file (default: user config dir)")
	cmd.PersistentFlags().String("log-file", "", "Append a log of every run to this file")

	cmd.SetVersionTemplate(fmt.Sprintf("tabview version %s\n  commit: %s\n  built:  %s\n", Version, CommitSHA, BuildDate))

	// Set up pre-run to handle global flags
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor {
			styles.SetNoColor(true)
		}
		return setupLogger(cmd)
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = log.Default().Close()
	}

	cmd.AddCommand(
		newVersionCmd(),
		newViewCmd(),
		newExportCmd(),
		newStatsCmd(),
		newConfigCmd(),
		newCompletionCmd(),
	)
	return cmd
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		// Check if it's a structured TabviewError
		var tvErr *util.TabviewError
		if errors.As(err, &tvErr) {
			fmt.Fprintln(os.Stderr, tvErr.Format())
		} else {
			// Simple error - still format nicely
			fmt.Fprintln(os.Stderr, styles.ErrorMsg(err.Error()))
		}
		return err
	}
	return nil
}

// setupLogger installs the process-wide logger from --verbose and --log-file.
func setupLogger(cmd *cobra.Command) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logFile, _ := cmd.Flags().GetString("log-file")

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	if logFile == "" {
		log.SetDefault(log.NewWriter(level, cmd.ErrOrStderr()))
		return nil
	}

	logger, err := log.New(level, logFile)
	if err != nil {
		return util.NewError("Cannot open log file").
			WithContext(logFile).
			Wrap(err)
	}
	log.SetDefault(logger)
	log.Debugf("tabview %s: %v", Version, os.Args[1:])
	return nil
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for tabview.

To load completions:

Bash:
  $ source <(tabview completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ tabview completion bash > /etc/bash_completion.d/tabview
  # macOS:
  $ tabview completion bash > $(brew --prefix)/etc/bash_completion.d/tabview

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ tabview completion zsh > "${fpath[1]}/_tabview"

Fish:
  $ tabview completion fish | source

  # To load completions for each session, execute once:
  $ tabview completion fish > ~/.config/fish/completions/tabview.fish

PowerShell:
  PS> tabview completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(out)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tabview version %s\n", Version)
			fmt.Fprintf(out, "  commit: %s\n", CommitSHA)
			fmt.Fprintf(out, "  built:  %s\n", BuildDate)
		},
	}
}
