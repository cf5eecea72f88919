package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/pantry-basket-control/internal/app"
	"github.com/atomicstack/pantry-basket-control/internal/config"
	"github.com/atomicstack/pantry-basket-control/internal/logging"
	"github.com/atomicstack/pantry-basket-control/internal/logging/events"
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

	terminal := probeTerminal(int(os.Stdin.Fd()), int(os.Stdout.Fd()))
	events.App.Start(startupTracePayload(runtimeCfg, terminal))
	if !terminal.Interactive {
		fmt.Fprintf(os.Stderr, "Error: an interactive terminal is required (not a terminal: %s)\n", strings.Join(terminal.NotTerminal, ", "))
		os.Exit(2)
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminalInfo records whether the UI can take over the terminal.
type terminalInfo struct {
	Interactive bool     `json:"interactive"`
	Width       int      `json:"width,omitempty"`
	Height      int      `json:"height,omitempty"`
	NotTerminal []string `json:"notTerminal,omitempty"`
	SizeError   string   `json:"sizeError,omitempty"`
}

// probeTerminal checks that both input and output are terminals and reads the
// output size.
func probeTerminal(stdin, stdout int) terminalInfo {
	var info terminalInfo
	if !term.IsTerminal(stdin) {
		info.NotTerminal = append(info.NotTerminal, "stdin")
	}
	if !term.IsTerminal(stdout) {
		info.NotTerminal = append(info.NotTerminal, "stdout")
		return info
	}
	if width, height, err := term.GetSize(stdout); err == nil {
		info.Width = width
		info.Height = height
	} else {
		info.SizeError = err.Error()
	}
	info.Interactive = len(info.NotTerminal) == 0
	return info
}

// startupTracePayload describes which pantry this run talks to and how the UI
// was configured.
func startupTracePayload(cfg config.Config, terminal terminalInfo) map[string]interface{} {
	return map[string]interface{}{
		"argv": cfg.Args,
		"pantry": map[string]interface{}{
			"apiUrl":      cfg.App.APIURL,
			"pantryId":    maskPantryID(cfg.App.PantryID),
			"minInterval": cfg.App.MinInterval.String(),
		},
		"settings": map[string]interface{}{
			"envFile": cfg.EnvFile,
			"width":   cfg.App.Width,
			"height":  cfg.App.Height,
			"footer":  cfg.App.ShowFooter,
			"verbose": cfg.App.Verbose,
			"trace":   cfg.Logging.Trace,
			"logFile": cfg.Logging.FilePath,
		},
		"terminal": terminal,
	}
}

// maskPantryID keeps the pantry id out of trace files; it is the only
// credential the API takes.
func maskPantryID(id string) string {
	runes := []rune(id)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:4]) + strings.Repeat("*", len(runes)-4)
}
