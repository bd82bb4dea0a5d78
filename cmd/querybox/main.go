// Command querybox is an interactive single-line query editor.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/querybox"
	"github.com/iw2rmb/querybox/config"
	"github.com/iw2rmb/querybox/editor"
	"github.com/iw2rmb/querybox/focus"
	"github.com/iw2rmb/querybox/internal/logging"
	"github.com/iw2rmb/querybox/tui"
)

type options struct {
	configPath  string
	logFile     string
	logLevel    string
	showVersion bool
}

func main() {
	os.Exit(run(parseFlags()))
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML or YAML configuration file")
	flag.StringVar(&opts.logFile, "log-file", "", "Write debug log to this file")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.showVersion, "version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "querybox - interactive query editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: querybox [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: enter edits/validates, tab completes, esc stands by, esc again quits.\n")
	}
	flag.Parse()
	return opts
}

func run(opts options) int {
	if opts.showVersion {
		fmt.Printf("querybox %s\n", querybox.VersionTag())
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger, closer, err := logging.New(cfg.Log.File, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	p := tea.NewProgram(newModel(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "err", err)
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		return 1
	}
	return 0
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, cfg.Validate()
}

func newModel(cfg config.Config, logger *slog.Logger) tui.Model {
	ed := editor.New(editor.Config{
		Vocabulary: cfg.VocabularySet(),
		OnChange: func(ev editor.ChangeEvent) {
			logger.Debug("query changed",
				"version", ev.Version,
				"cursor", ev.Cursor,
				"validation", ev.Validation.String(),
				"inserted", ev.Inserted,
				"deleted", ev.Deleted,
			)
		},
	})
	coord := focus.New(ed,
		focus.WithInitialState(cfg.InitialFocus()),
		focus.WithKeyMap(cfg.FocusKeyMap()),
		focus.WithEditorKeyMap(cfg.EditorKeyMap()),
		focus.WithLogger(logger),
	)
	styles := tui.NewStyles(lipgloss.DefaultRenderer(), cfg.Theme)
	logger.Info("starting", "version", querybox.Version(), "focus", coord.State().String())
	return tui.New(coord, styles)
}
