package main

import (
	"testing"
	"time"

	"github.com/atomicstack/chainpanel/internal/app"
	"github.com/atomicstack/chainpanel/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestCollectTTYDetailsDetectedMatchesProbe(t *testing.T) {
	info := collectTTYDetails()
	if info.Detected == nil {
		for _, probe := range info.Probes {
			if probe.IsTerminal && probe.Error == "" {
				t.Fatalf("probe %s is a sized terminal but nothing was detected", probe.Name)
			}
		}
		return
	}
	for _, probe := range info.Probes {
		if probe.Name == info.Detected.Source {
			if probe.Width != info.Detected.Width || probe.Height != info.Detected.Height {
				t.Fatalf("detected size %dx%d differs from probe %dx%d", info.Detected.Width, info.Detected.Height, probe.Width, probe.Height)
			}
			return
		}
	}
	t.Fatalf("detected source %q not among probes", info.Detected.Source)
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:            80,
			Height:           24,
			ShowFooter:       true,
			Verbose:          true,
			AdvancedControls: true,
			Blocktime:        5 * time.Second,
			NetworkID:        "5777",
			PollInterval:     time.Second,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"width":            "80",
			"height":           "24",
			"footer":           "true",
			"verbose":          "true",
			"advancedControls": "true",
			"blocktime":        "5",
		},
		Args: []string{"--advanced-controls", "--blocktime", "5"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["advancedControls"] != "true" {
		t.Fatalf("expected advanced controls flag, got %v", flagsValue["advancedControls"])
	}
	if flagsValue["blocktime"] != "5" {
		t.Fatalf("expected blocktime 5, got %v", flagsValue["blocktime"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	node, ok := payload["node"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected node section in payload")
	}
	if node["blocktime"] != 5.0 || node["networkID"] != "5777" || node["advancedControls"] != true {
		t.Fatalf("unexpected node section %#v", node)
	}
	if node["pollInterval"] != "1s" {
		t.Fatalf("expected poll interval 1s, got %v", node["pollInterval"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
