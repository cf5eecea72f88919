package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/atomicstack/pantry-basket-control/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	EnvFile  string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envAPIURL         = "PANTRY_API_URL"
	envAPIURLLegacy   = "REACT_APP_API_URL"
	envPantryID       = "PANTRY_ID"
	envPantryIDLegacy = "REACT_APP_PANTRY_ID"
	envEnvFile        = "PANTRY_BASKET_CONTROL_ENV_FILE"
	envWidth          = "PANTRY_BASKET_CONTROL_WIDTH"
	envHeight         = "PANTRY_BASKET_CONTROL_HEIGHT"
	envShowFooter     = "PANTRY_BASKET_CONTROL_FOOTER"
	envVerbose        = "PANTRY_BASKET_CONTROL_VERBOSE"
	envTrace          = "PANTRY_BASKET_CONTROL_TRACE"
	envLogFile        = "PANTRY_BASKET_CONTROL_LOG_FILE"
	envMinInterval    = "PANTRY_BASKET_CONTROL_MIN_INTERVAL"

	defaultEnvFile = ".env"
)

// ErrMissingAPIURL and ErrMissingPantryID are returned by Validate.
var (
	ErrMissingAPIURL   = errors.New("api url is required (--api-url or " + envAPIURL + ")")
	ErrMissingPantryID = errors.New("pantry id is required (--pantry-id or " + envPantryID + ")")
)

// Load parses configuration from CLI arguments, environment variables and
// the optional .env file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags beat the
// process environment, which beats values read from the env file.
func LoadArgs(args []string, environ []string) (Config, error) {
	process := parseEnv(environ)

	envFile, explicit := envFilePath(args, process)
	env, err := readEnvFile(envFile, explicit)
	if err != nil {
		return Config{}, err
	}
	for k, v := range process {
		env[k] = v
	}

	fs := flag.NewFlagSet("pantry-basket-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	apiURL := fs.String("api-url", envFirst(env, envAPIURL, envAPIURLLegacy), "base url of the pantry api")
	pantryID := fs.String("pantry-id", envFirst(env, envPantryID, envPantryIDLegacy), "pantry identifier")
	fs.String("env-file", envFile, "path to a .env file with default settings")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	minInterval := fs.Duration("min-interval", envOrDuration(env, envMinInterval, 0), "minimum spacing between api requests (0 disables pacing)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *minInterval < 0 {
		return Config{}, fmt.Errorf("min-interval must be >= 0 (got %s)", *minInterval)
	}

	cfg := Config{
		App: app.Config{
			APIURL:      strings.TrimSpace(*apiURL),
			PantryID:    strings.TrimSpace(*pantryID),
			MinInterval: *minInterval,
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		EnvFile: envFile,
		Flags: map[string]string{
			"apiUrl":      strings.TrimSpace(*apiURL),
			"pantryId":    strings.TrimSpace(*pantryID),
			"envFile":     envFile,
			"minInterval": minInterval.String(),
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"verbose":     strconv.FormatBool(*verbose),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// envFilePath finds the env file before flags are parsed, since its values
// feed the flag defaults.
func envFilePath(args []string, env map[string]string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "env-file="); ok {
			return value, true
		}
		if name == "env-file" && i+1 < len(args) {
			return args[i+1], true
		}
	}
	if v := strings.TrimSpace(env[envEnvFile]); v != "" {
		return v, true
	}
	return defaultEnvFile, false
}

// readEnvFile loads key/value pairs. A missing default file is not an error.
func readEnvFile(path string, explicit bool) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return values, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envFirst(env map[string]string, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(env[key]); v != "" {
			return v
		}
	}
	return ""
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the pantry endpoint is configured.
func Validate(cfg Config) error {
	if cfg.App.APIURL == "" {
		return ErrMissingAPIURL
	}
	if cfg.App.PantryID == "" {
		return ErrMissingPantryID
	}
	u, err := url.Parse(cfg.App.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api url %q: %w", cfg.App.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api url %q: scheme must be http or https", cfg.App.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api url %q: missing host", cfg.App.APIURL)
	}
	return nil
}
