// Package cmd implements the ringmeter CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (render, play).
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/ringmeter/cmd/ringmeter/internal/config"
	"github.com/go-drift/ringmeter/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "ringmeter",
	Short: "ringmeter - animated ring graphs",
	Long: `ringmeter renders animated ring graphs: concentric progress rings that
fill from zero to their values, with fading description labels or a
central progress readout.

Use "ringmeter <command> --help" for more information about a command.`,
	Usage: "ringmeter <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	var filteredArgs []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("ringmeter version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			errors.SetHandler(&errors.LogHandler{Verbose: true})
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --verbose            Log errors with stack traces")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ringmeter render --out frames      Write one PNG per animation frame")
	fmt.Println("  ringmeter play --preset central   Animate in the terminal")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}

// graphOptions are the flags shared by render and play.
type graphOptions struct {
	configPath string
	preset     string
	rest       []string
}

// parseGraphOptions extracts --config and --preset; everything else is
// returned in rest for the command to handle.
func parseGraphOptions(args []string) (graphOptions, error) {
	var opts graphOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--config" || arg == "--preset":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			if arg == "--config" {
				opts.configPath = args[i+1]
			} else {
				opts.preset = args[i+1]
			}
			i++
		case strings.HasPrefix(arg, "--config="):
			opts.configPath = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "--preset="):
			opts.preset = strings.TrimPrefix(arg, "--preset=")
		default:
			opts.rest = append(opts.rest, arg)
		}
	}
	return opts, nil
}

// resolve loads the config named by --config, or ringmeter.yaml from the
// working directory, and applies --preset.
func (o graphOptions) resolve() (*config.Resolved, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		var dir string
		dir, err = os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg, err = config.LoadOptional(dir)
	}
	if err != nil {
		return nil, errors.New("config.Load", errors.KindConfig, err)
	}
	if o.preset != "" {
		cfg.Surface.Preset = o.preset
	}
	resolved, err := config.Resolve(cfg)
	if err != nil {
		return nil, errors.New("config.Resolve", errors.KindConfig, err)
	}
	return resolved, nil
}
