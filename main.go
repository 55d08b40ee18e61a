package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/chainpanel/internal/app"
	"github.com/atomicstack/chainpanel/internal/config"
	"github.com/atomicstack/chainpanel/internal/logging"
	"github.com/atomicstack/chainpanel/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"logPath": logging.Path(),
		"node": map[string]interface{}{
			"blocktime":        cfg.App.Blocktime.Seconds(),
			"networkID":        cfg.App.NetworkID,
			"rpcHost":          cfg.App.Hostname,
			"settingsFile":     cfg.App.SettingsPath,
			"advancedControls": cfg.App.AdvancedControls,
			"pollInterval":     cfg.App.PollInterval.String(),
		},
		"tty": collectTTYDetails(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type ttyDetails struct {
	Detected *ttySize        `json:"detected,omitempty"`
	Probes   []ttyProbeEntry `json:"probes"`
}

type ttySize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeEntry struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails records which standard descriptors are terminals and the
// first size found, which is what the panel lays itself out against when no
// fixed size is configured.
func collectTTYDetails() ttyDetails {
	var details ttyDetails
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		entry := probeTTY(f)
		if entry.IsTerminal && entry.Error == "" && details.Detected == nil {
			details.Detected = &ttySize{Source: entry.Name, Width: entry.Width, Height: entry.Height}
		}
		details.Probes = append(details.Probes, entry)
	}
	return details
}

func probeTTY(f *os.File) ttyProbeEntry {
	entry := ttyProbeEntry{Name: ttyName(f)}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return entry
	}
	entry.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		entry.Error = err.Error()
		return entry
	}
	entry.Width, entry.Height = width, height
	return entry
}

func ttyName(f *os.File) string {
	switch f {
	case os.Stdin:
		return "stdin"
	case os.Stdout:
		return "stdout"
	case os.Stderr:
		return "stderr"
	}
	return f.Name()
}
