package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/atomicstack/chainpanel/internal/app"
	"github.com/atomicstack/chainpanel/internal/session"
	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose          bool
	AdvancedControls bool
}

// Options is the command line and environment surface.
type Options struct {
	Width            int           `long:"width" env:"CHAINPANEL_WIDTH" default:"0" description:"desired viewport width in cells (0 uses terminal width)"`
	Height           int           `long:"height" env:"CHAINPANEL_HEIGHT" default:"0" description:"desired viewport height in rows (0 uses terminal height)"`
	Footer           bool          `long:"footer" env:"CHAINPANEL_FOOTER" description:"enable footer key help"`
	Trace            bool          `long:"trace" env:"CHAINPANEL_TRACE" description:"enable verbose JSON trace logging"`
	Verbose          bool          `long:"verbose" env:"CHAINPANEL_VERBOSE" description:"print success messages for commands"`
	LogFile          string        `long:"log-file" env:"CHAINPANEL_LOG_FILE" description:"path to the log file"`
	AdvancedControls bool          `long:"advanced-controls" env:"CHAINPANEL_ADVANCED_CONTROLS" description:"show force-mine and snapshot controls"`
	Blocktime        float64       `long:"blocktime" env:"CHAINPANEL_BLOCKTIME" default:"0" description:"seconds between mined blocks (0 automines on every transaction)"`
	NetworkID        string        `long:"network-id" env:"CHAINPANEL_NETWORK_ID" default:"5777" description:"network id reported by the node"`
	Hostname         string        `long:"hostname" env:"CHAINPANEL_HOSTNAME" default:"127.0.0.1:7545" description:"RPC host shown in the status row"`
	Settings         string        `long:"settings" env:"CHAINPANEL_SETTINGS" description:"YAML server settings file, watched for changes"`
	PollInterval     time.Duration `long:"poll-interval" env:"CHAINPANEL_POLL_INTERVAL" default:"500ms" description:"how often the node is polled"`
}

// ErrHelp is returned when --help was requested; the usage text has already
// been printed.
var ErrHelp = errors.New("help requested")

// Load parses configuration from CLI arguments, the environment and an
// optional .env file in the working directory.
func Load() (Config, error) {
	_ = godotenv.Load()
	return LoadArgs(os.Args[1:])
}

// LoadArgs parses args on top of the current environment.
func LoadArgs(args []string) (Config, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "chainpanel"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, flagErr.Message)
			return Config{}, ErrHelp
		}
		return Config{}, err
	}
	if len(rest) > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", rest)
	}

	blocktime, blocktimeErr := session.BlocktimeFromSeconds(opts.Blocktime)
	cfg := Config{
		App: app.Config{
			Width:            opts.Width,
			Height:           opts.Height,
			ShowFooter:       opts.Footer,
			Verbose:          opts.Verbose,
			AdvancedControls: opts.AdvancedControls,
			Blocktime:        blocktime,
			NetworkID:        opts.NetworkID,
			Hostname:         opts.Hostname,
			SettingsPath:     opts.Settings,
			PollInterval:     opts.PollInterval,
		},
		Logging: Logging{
			FilePath: opts.LogFile,
			Trace:    opts.Trace,
		},
		Features: Features{
			Verbose:          opts.Verbose,
			AdvancedControls: opts.AdvancedControls,
		},
		Flags: map[string]string{
			"width":            strconv.Itoa(opts.Width),
			"height":           strconv.Itoa(opts.Height),
			"footer":           strconv.FormatBool(opts.Footer),
			"trace":            strconv.FormatBool(opts.Trace),
			"verbose":          strconv.FormatBool(opts.Verbose),
			"logFile":          opts.LogFile,
			"advancedControls": strconv.FormatBool(opts.AdvancedControls),
			"blocktime":        strconv.FormatFloat(opts.Blocktime, 'f', -1, 64),
			"networkID":        opts.NetworkID,
			"hostname":         opts.Hostname,
			"settings":         opts.Settings,
			"pollInterval":     opts.PollInterval.String(),
		},
		Args: append([]string(nil), args...),
	}
	if blocktimeErr != nil {
		return cfg, blocktimeErr
	}
	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the parsed values are usable.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.Blocktime < 0 {
		return fmt.Errorf("blocktime must be >= 0 (got %s)", cfg.App.Blocktime)
	}
	if cfg.App.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive (got %s)", cfg.App.PollInterval)
	}
	return nil
}
