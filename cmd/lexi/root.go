package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/lexi/internal/adapter/dictapi"
	"github.com/mmcdole/lexi/internal/config"
	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/log"
	"github.com/mmcdole/lexi/internal/output"
	"github.com/mmcdole/lexi/internal/route"
	"github.com/mmcdole/lexi/internal/service"
	"github.com/mmcdole/lexi/internal/store"
	"github.com/mmcdole/lexi/internal/tui"
)

var (
	cfgFile      string
	outputFormat string
	apiURL       string

	loader  *config.Loader
	cfg     *config.Config
	logger  *slog.Logger
	printer *output.Printer
)

var rootCmd = &cobra.Command{
	Use:   "lexi [route]",
	Short: "Terminal client for the dictionary API",
	Long: `Lexi browses, searches and edits a dictionary served by a REST API.

Without a subcommand it opens the interactive browser, optionally at a route:
  lexi                          # all entries
  lexi /entries/word/cat        # entries for one word
  lexi /entries/letter/q/page/3 # third page of words starting with q
  lexi /entries/add             # add form`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         browse,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ~/.config/lexi/config.yaml or ./config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, yaml or json",
	)
	rootCmd.PersistentFlags().StringVar(
		&apiURL, "api", "", "dictionary API base URL (overrides api.url)",
	)

	// Load config and logging before any command runs
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		printer = output.NewPrinter(cmd.OutOrStdout(), format)

		loader = config.NewLoader(cfgFile)
		cfg, err = loader.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if apiURL != "" {
			cfg.API.URL = apiURL
		}

		logger, err = log.SetupLogger(&cfg.Logging)
		if err != nil {
			// Fall back to null logger if file logging fails
			logger = log.NullLogger()
		}
		slog.SetDefault(logger)
		return nil
	}

	rootCmd.AddCommand(versionCmd)
}

func browse(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the interactive browser needs a terminal; use a subcommand such as 'lexi list' instead")
	}

	start := route.Home
	if len(args) == 1 {
		loc, err := route.Parse(args[0])
		if err != nil {
			return err
		}
		start = loc
	}

	logger.Info("starting lexi", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cmd, cfg)
	}

	app, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer app.close()

	model := tui.NewModel(tui.Services{
		Entries: app.entries,
		Search:  app.search,
		History: app.history,
	}, start)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	logger.Info("starting TUI", "route", start.Path())

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// app holds the services shared by the browser and the subcommands
type app struct {
	client  *dictapi.Client
	entries *service.EntryService
	search  *service.SearchService
	history *service.HistoryService
}

func newApp(cfg *config.Config) (*app, error) {
	if !cfg.IsConfigured() {
		return nil, fmt.Errorf("%w: run lexi once to set it up, or pass --api", domain.ErrNotConfigured)
	}

	client := dictapi.NewClient(cfg.API.URL, log.For(logger, "dictapi"))

	var historyStore domain.HistoryStore
	if cfg.History.Enabled {
		s, err := store.NewHistoryStore(cfg.History.File, cfg.API.URL, cfg.History.Size)
		if err != nil {
			// History is optional; keep going without it
			logger.Warn("history unavailable", "file", cfg.History.File, "error", err)
		} else {
			historyStore = s
		}
	}

	svcLogger := log.For(logger, "service")
	history := service.NewHistoryService(historyStore, svcLogger)
	return &app{
		client:  client,
		entries: service.NewEntryService(client, history, svcLogger),
		search:  service.NewSearchService(client, svcLogger),
		history: history,
	}, nil
}

func (a *app) close() {
	if err := a.history.Close(); err != nil {
		logger.Warn("failed to close history", "error", err)
	}
}
