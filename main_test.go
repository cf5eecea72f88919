package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/pantry-basket-control/internal/app"
	"github.com/atomicstack/pantry-basket-control/internal/config"
)

func TestProbeTerminalRejectsPipes(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	info := probeTerminal(int(r.Fd()), int(w.Fd()))
	if info.Interactive {
		t.Fatalf("expected pipes to be reported as non-interactive")
	}
	if strings.Join(info.NotTerminal, ",") != "stdin,stdout" {
		t.Fatalf("expected stdin and stdout flagged, got %v", info.NotTerminal)
	}
	if info.Width != 0 || info.Height != 0 {
		t.Fatalf("expected no size for pipes, got %dx%d", info.Width, info.Height)
	}
}

func TestMaskPantryID(t *testing.T) {
	cases := []struct{ in, want string }{
		{in: "", want: ""},
		{in: "abc", want: "***"},
		{in: "1a2b3c4d-0000", want: "1a2b*********"},
		{in: "0f3c1234-5678-9abc-def0-123456789abc", want: "0f3c" + strings.Repeat("*", 32)},
	}
	for _, tc := range cases {
		if got := maskPantryID(tc.in); got != tc.want {
			t.Fatalf("maskPantryID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStartupTracePayloadDescribesPantry(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			APIURL:      "https://getpantry.cloud/apiv1/pantry",
			PantryID:    "pantry-1",
			MinInterval: 500 * time.Millisecond,
			Width:       80,
			Height:      24,
			ShowFooter:  true,
			Verbose:     true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		EnvFile: ".env",
		Args:    []string{"--pantry-id", "pantry-1"},
	}
	terminal := terminalInfo{Interactive: true, Width: 120, Height: 40}

	payload := startupTracePayload(cfg, terminal)

	pantry, ok := payload["pantry"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected pantry section in payload")
	}
	if pantry["apiUrl"] != "https://getpantry.cloud/apiv1/pantry" {
		t.Fatalf("expected api url, got %v", pantry["apiUrl"])
	}
	if pantry["pantryId"] != "pant****" {
		t.Fatalf("expected masked pantry id, got %v", pantry["pantryId"])
	}
	if pantry["minInterval"] != "500ms" {
		t.Fatalf("expected min interval 500ms, got %v", pantry["minInterval"])
	}

	settings, ok := payload["settings"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected settings section in payload")
	}
	if settings["envFile"] != ".env" || settings["width"] != 80 || settings["height"] != 24 {
		t.Fatalf("unexpected settings %#v", settings)
	}
	if settings["footer"] != true || settings["verbose"] != true || settings["trace"] != true {
		t.Fatalf("unexpected toggles %#v", settings)
	}
	if settings["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", settings["logFile"])
	}

	if got, ok := payload["terminal"].(terminalInfo); !ok || !got.Interactive || got.Width != 120 || got.Height != 40 {
		t.Fatalf("expected terminal info in payload, got %#v", payload["terminal"])
	}
}
