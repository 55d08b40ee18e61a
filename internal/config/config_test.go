package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.PollInterval != 500*time.Millisecond {
		t.Fatalf("expected 500ms poll interval, got %s", cfg.App.PollInterval)
	}
	if cfg.App.NetworkID != "5777" {
		t.Fatalf("expected default network id, got %q", cfg.App.NetworkID)
	}
	if cfg.App.Blocktime != 0 {
		t.Fatalf("expected automining by default, got %s", cfg.App.Blocktime)
	}
	if cfg.App.AdvancedControls {
		t.Fatalf("advanced controls should default off")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{"--width", "100", "--height=30", "--footer", "--advanced-controls", "--blocktime", "0.5", "--network-id", "1337", "--poll-interval", "1s", "--trace", "--log-file", "/tmp/panel.log"}
	cfg, err := LoadArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 100 || cfg.App.Height != 30 {
		t.Fatalf("unexpected size %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter || !cfg.App.AdvancedControls || !cfg.Features.AdvancedControls {
		t.Fatalf("expected footer and advanced controls enabled: %#v", cfg.App)
	}
	if cfg.App.Blocktime != 500*time.Millisecond {
		t.Fatalf("expected 500ms blocktime, got %s", cfg.App.Blocktime)
	}
	if cfg.App.NetworkID != "1337" || cfg.App.PollInterval != time.Second {
		t.Fatalf("unexpected node options %#v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/panel.log" {
		t.Fatalf("unexpected logging %#v", cfg.Logging)
	}
	if cfg.Flags["blocktime"] != "0.5" || cfg.Flags["width"] != "100" {
		t.Fatalf("unexpected flag map %#v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args preserved, got %v", cfg.Args)
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	t.Setenv("CHAINPANEL_WIDTH", "72")
	t.Setenv("CHAINPANEL_HOSTNAME", "node.local:8545")
	t.Setenv("CHAINPANEL_BLOCKTIME", "5")

	cfg, err := LoadArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 72 {
		t.Fatalf("expected width from env, got %d", cfg.App.Width)
	}
	if cfg.App.Hostname != "node.local:8545" {
		t.Fatalf("expected hostname from env, got %q", cfg.App.Hostname)
	}
	if cfg.App.Blocktime != 5*time.Second {
		t.Fatalf("expected 5s blocktime, got %s", cfg.App.Blocktime)
	}

	cfg, err = LoadArgs([]string{"--width", "90"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("flag should override env, got %d", cfg.App.Width)
	}
}

func TestLoadArgsRejectsBadInput(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "wide"}); err == nil {
		t.Fatalf("expected parse error for non-numeric width")
	}
	for _, blocktime := range []string{"-1", "1e10", "1e-10", "NaN"} {
		if cfg, err := LoadArgs([]string{"--blocktime", blocktime}); err == nil {
			t.Fatalf("expected error for blocktime %s, got %s", blocktime, cfg.App.Blocktime)
		}
	}
	if _, err := LoadArgs([]string{"extra"}); err == nil {
		t.Fatalf("expected error for positional arguments")
	}
}

func TestLoadArgsHelp(t *testing.T) {
	if _, err := LoadArgs([]string{"--help"}); !errors.Is(err, ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := cfg
	bad.App.Width = -1
	if err := Validate(bad); err == nil {
		t.Fatalf("expected negative width rejected")
	}
	bad = cfg
	bad.App.PollInterval = 0
	if err := Validate(bad); err == nil {
		t.Fatalf("expected zero poll interval rejected")
	}
}
