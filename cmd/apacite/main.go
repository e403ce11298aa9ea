// Package main is the apacite terminal citation builder.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iw2rmb/apacite/internal/config"
	"github.com/iw2rmb/apacite/reference"
)

var errNotTerminal = errors.New("apacite needs an interactive terminal")

var rootCmd = &cobra.Command{
	Use:   "apacite",
	Short: "Build an APA citation in the terminal",
	Long: `apacite asks for a citation type, lets you fill in its fields and copies the
formatted APA reference to the clipboard when you press ctrl+s.

Supported types are webpages, newspaper articles and dictionary entries.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./apacite.yaml or ~/.config/apacite/apacite.yaml)")

	f := rootCmd.Flags()
	f.String("lang", "en", "language of the retrieval date: en or es")
	f.String("type", "", "start editing this type: website, newspaper or dictionary")
	f.String("print", "none", "echo the citation after exit: none, text or yaml")
	f.Bool("no-clipboard", false, "do not copy the citation")
	f.Bool("no-color", false, "disable colors")
	f.Bool("alt-screen", false, "use the alternate screen buffer")
	f.Bool("debug", false, "log to the debug log file")
}

func run(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if cfg.File != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", cfg.File)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}
	if cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if cfg.Debug {
		f, err := tea.LogToFile(cfg.DebugLog, "apacite")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	final, err := tea.NewProgram(newApp(cfg, sinkFor(cfg.Clipboard), reference.SystemClock{}), opts...).Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	form := final.(app).form
	if err := form.Err(); err != nil {
		return err
	}
	return writeResult(os.Stdout, cfg.Print, form)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "apacite:", err)
		os.Exit(1)
	}
}
