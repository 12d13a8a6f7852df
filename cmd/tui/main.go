// Package main provides the go-tui-retained command line tool.
//
// Usage:
//
//	tui demo [options]        Run the interactive widget demo
//	tui theme [path]          Print the DOS theme, or check a theme file
//	tui help                  Show help
//
// Examples:
//
//	tui demo                          Run the demo with the DOS theme
//	tui demo --theme mytheme.toml     Run the demo with a custom theme
//	tui theme > mytheme.toml          Start a custom theme from the default
//	tui theme mytheme.toml            Check a theme file for errors
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `tui - retained-mode terminal UI toolkit

Usage:
  tui <command> [options] [path]

Commands:
  demo        Run the interactive widget demo
  theme       Print the default theme as TOML, or check a theme file
  version     Print version information
  help        Show this help message

Demo options:
  --theme <file>  Load colors from a TOML theme file
  --log <file>    Write debug logging to file (same as TUI_DEBUG)
  --fps <n>       Target frame rate (default 60)

Examples:
  tui demo                         Run the demo with the DOS theme
  tui demo --theme mytheme.toml    Run the demo with a custom theme
  tui demo --log /tmp/tui.log      Run with debug logging
  tui theme > mytheme.toml         Start a custom theme from the default
  tui theme mytheme.toml           Check a theme file for errors

For more information, see https://github.com/grindlemire/go-tui-retained
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "demo":
		if err := runDemo(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "theme":
		if err := runTheme(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("tui version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
