package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/chainpanel/internal/backend"
	"github.com/atomicstack/chainpanel/internal/devnode"
	"github.com/atomicstack/chainpanel/internal/logging"
	"github.com/atomicstack/chainpanel/internal/logging/events"
	"github.com/atomicstack/chainpanel/internal/panel"
	"github.com/atomicstack/chainpanel/internal/session"
	"github.com/atomicstack/chainpanel/internal/settings"
	"github.com/atomicstack/chainpanel/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const defaultPollInterval = 500 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Width            int
	Height           int
	ShowFooter       bool
	Verbose          bool
	AdvancedControls bool
	Blocktime        time.Duration
	NetworkID        string
	Hostname         string
	SettingsPath     string
	PollInterval     time.Duration
}

// ServerSettings resolves the starting settings: the settings file when one
// is configured, otherwise the command line values.
func (c Config) ServerSettings() (session.ServerSettings, error) {
	base := session.ServerSettings{Blocktime: c.Blocktime, NetworkID: c.NetworkID}
	if c.SettingsPath == "" {
		return base, nil
	}
	fromFile, err := settings.Load(c.SettingsPath)
	if err != nil {
		return session.ServerSettings{}, fmt.Errorf("load settings: %w", err)
	}
	if fromFile.NetworkID == "" {
		fromFile.NetworkID = base.NetworkID
	}
	return fromFile, nil
}

// Run bootstraps the node and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	defer func() { events.App.Stop(err) }()

	initial, err := cfg.ServerSettings()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	node := devnode.New(initial)
	go node.Run(ctx)

	if cfg.SettingsPath != "" {
		fileWatcher, werr := settings.NewWatcher(cfg.SettingsPath, node.SetSettings)
		if werr != nil {
			// hot reload is optional; the loaded settings still apply
			logging.Error(werr)
		} else {
			go fileWatcher.Run(ctx)
		}
	}

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	watcher := backend.NewWatcher(node, interval)
	defer watcher.Stop()

	zone.NewGlobal()
	model := ui.NewModel(ui.Config{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Panel: panel.Options{
			ShowAdvancedControls: cfg.AdvancedControls,
			RPCHost:              cfg.Hostname,
		},
	}, node, watcher)
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
