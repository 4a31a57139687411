// Command filedialog demonstrates the file dialog popup. Run without
// arguments, it hosts the dialog inside a small application (ctrl+o
// opens it). The pick subcommand runs the dialog on its own and prints
// the chosen paths, one per line.
package main

import (
	"fmt"
	"os"

	"github.com/BrandonIrizarry/filedialog"
	"github.com/BrandonIrizarry/filedialog/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type options struct {
	cfgFile string
	debug   bool
	cfg     config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "filedialog",
		Short:        "Browse the filesystem and pick files in a terminal popup",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHost(opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/filedialog/config.toml)")
	flags.Int("width", 60, "popup width in percent")
	flags.Int("height", 40, "popup height in percent")
	flags.String("dir", "", "starting directory (default is the working directory)")
	flags.String("filter", "", `file filter, e.g. "ext:toml", "sub:notes" or "glob:*.go"`)
	flags.Bool("multi", false, "allow selecting several files")
	flags.Bool("hidden", false, "show hidden files")
	flags.Bool("hints", true, "show the key binding hint line")
	flags.BoolVar(&opts.debug, "debug", false, "write debug traces to "+filedialog.DefaultLogFile)

	rootCmd.AddCommand(newPickCmd(opts))

	return rootCmd
}

func newPickCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Run the dialog on its own and print the picked paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, opts)
		},
	}
}

// load reads the config file, then lets explicitly set flags
// override it.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("dir") {
		cfg.Dir, _ = flags.GetString("dir")
	}
	if flags.Changed("filter") {
		cfg.Filter, _ = flags.GetString("filter")
	}
	if flags.Changed("multi") {
		cfg.MultiSelection, _ = flags.GetBool("multi")
	}
	if flags.Changed("hidden") {
		cfg.ShowHidden, _ = flags.GetBool("hidden")
	}
	if flags.Changed("hints") {
		cfg.ShowHints, _ = flags.GetBool("hints")
	}
	if o.debug && cfg.LogFile == "" {
		cfg.LogFile = filedialog.DefaultLogFile
	}

	o.cfg = cfg
	return nil
}

// dialogConfig builds the dialog configuration, opening the log file
// if one is configured. The returned close function must be called
// once the program is done.
func (o *options) dialogConfig() (filedialog.Config, func(), error) {
	dcfg, err := o.cfg.Dialog()
	if err != nil {
		return filedialog.Config{}, nil, err
	}

	if o.cfg.LogFile == "" {
		return dcfg, func() {}, nil
	}

	logger, logFile, err := filedialog.NewFileLogger(o.cfg.LogFile)
	if err != nil {
		return filedialog.Config{}, nil, err
	}
	dcfg.Logger = logger

	return dcfg, func() { logFile.Close() }, nil
}

func runHost(opts *options) error {
	dcfg, closeLog, err := opts.dialogConfig()
	if err != nil {
		return err
	}
	defer closeLog()

	d, err := filedialog.New(dcfg)
	if err != nil {
		return fmt.Errorf("cannot create file dialog: %w", err)
	}

	_, err = tea.NewProgram(newApp(d), tea.WithAltScreen()).Run()
	return err
}

func runPick(cmd *cobra.Command, opts *options) error {
	dcfg, closeLog, err := opts.dialogConfig()
	if err != nil {
		return err
	}
	defer closeLog()

	m, err := filedialog.NewModel(dcfg)
	if err != nil {
		return fmt.Errorf("cannot create file dialog: %w", err)
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	for _, path := range final.(filedialog.Model).Selected {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	return nil
}
