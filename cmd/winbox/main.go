package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/1broseidon/winbox/internal/config"
	"github.com/1broseidon/winbox/internal/platform"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	// newAdapter and stdoutIsTerminal are replaced in tests.
	newAdapter       = platform.New
	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(stdout)
		os.Exit(0)
	}
	os.Exit(run(os.Args[1], os.Args[2:]))
}

func run(cmd string, args []string) int {
	switch cmd {
	case "get":
		return runGet(args)
	case "set":
		return runSet(args)
	case "props":
		return runProps(args)
	case "list":
		return runList(args)
	case "nudge":
		return runNudge(args)
	case "screen":
		return runScreen(args)
	case "permissions":
		return runPermissions(args)
	case "config":
		return runConfig(args)
	case "mcp":
		return runMCP(args)
	case "help", "-h", "--help":
		printMainUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", cmd)
		printMainUsage(stderr)
		return 2
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winbox <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  get <property>           Read a window geometry property")
	fmt.Fprintln(w, "  set <property> <value>   Move or resize a window through one property")
	fmt.Fprintln(w, "  props                    List property names and value kinds")
	fmt.Fprintln(w, "  screen                   Show the screen containing a window's center")
	fmt.Fprintln(w, "  list                     List top-level windows (X11)")
	fmt.Fprintln(w, "  nudge                    Move and resize a window from the keyboard")
	fmt.Fprintln(w, "  permissions              Check macOS accessibility permission")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config print             Print effective configuration")
	fmt.Fprintln(w, "  config validate          Validate configuration")
	fmt.Fprintln(w, "  config path              Print the configuration file path")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve                Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Windows are selected with --window ID (X11 window or HWND, hex or decimal)")
	fmt.Fprintln(w, "or --app NAME --title TITLE (macOS; on X11 WM_CLASS and a title substring).")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'winbox <command> --help' for command-specific options.")
}

// commonFlags are shared by every command that talks to the window system.
type commonFlags struct {
	configPath string
	verbose    bool
	json       bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "Config file path (default: ~/.config/winbox/config.yaml)")
	fs.BoolVar(&c.verbose, "verbose", false, "Log debug output to stderr")
	fs.BoolVar(&c.json, "json", false, "Print JSON (default when stdout is not a terminal)")
}

func (c *commonFlags) wantJSON() bool {
	return c.json || !stdoutIsTerminal()
}

func (c *commonFlags) loadConfig() (*config.Config, error) {
	if c.configPath == "" {
		return config.Load()
	}
	return config.LoadFromPath(c.configPath)
}

// setup loads config and builds the logger and host adapter.
func (c *commonFlags) setup() (platform.Adapter, *slog.Logger, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger(cfg, c.verbose)
	return newAdapter(cfg.PlatformOptions(logger)), logger, nil
}

func newLogger(cfg *config.Config, verbose bool) *slog.Logger {
	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// parseFlags parses args and maps help to exit 0 and bad flags to 2. ok is
// false when the command should return code.
func parseFlags(fs *flag.FlagSet, args []string) (code int, ok bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0, false
		}
		return 2, false
	}
	return 0, true
}

func printJSON(v any) int {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func runPermissions(args []string) int {
	fs := flag.NewFlagSet("permissions", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	prompt := fs.Bool("prompt", false, "Show the system dialog when permission is missing")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winbox permissions [--prompt] [--json]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Check whether this process may script other applications' windows.")
		fmt.Fprintln(stderr, "Exits 1 when permission is missing.")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	adapter, _, err := common.setup()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	required, granted := false, true
	if pc, ok := adapter.(platform.PermissionChecker); ok {
		required = true
		granted = pc.CheckPermissions(*prompt)
	}

	code := 0
	if !granted {
		code = 1
	}
	if common.wantJSON() {
		out := struct {
			Adapter  string `json:"adapter"`
			Required bool   `json:"required"`
			Granted  bool   `json:"granted"`
		}{adapter.Name(), required, granted}
		if rc := printJSON(out); rc != 0 {
			return rc
		}
		return code
	}

	switch {
	case !required:
		fmt.Fprintf(stdout, "%s: no permission required\n", adapter.Name())
	case granted:
		fmt.Fprintf(stdout, "%s: accessibility permission granted\n", adapter.Name())
	default:
		fmt.Fprintf(stdout, "%s: accessibility permission missing (System Settings > Privacy & Security > Accessibility)\n", adapter.Name())
	}
	return code
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  winbox config validate [--path PATH]")
		fmt.Fprintln(stderr, "  winbox config print [--path PATH] [--defaults]")
		fmt.Fprintln(stderr, "  winbox config path")
		return 2
	}

	load := func(path string) (*config.Config, error) {
		if path == "" {
			return config.Load()
		}
		return config.LoadFromPath(path)
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/winbox/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if _, err := load(*path); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, "config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/winbox/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		cfg := config.DefaultConfig()
		if !*printDefaults {
			var err error
			if cfg, err = load(*path); err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
		}
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprint(stdout, string(data))
		return 0

	case "path":
		path, err := config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, path)
		return 0

	default:
		fmt.Fprintf(stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}
