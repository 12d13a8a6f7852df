package main

import (
	"fmt"
	"io"

	tui "github.com/grindlemire/go-tui-retained"
)

// runTheme implements the theme subcommand. With no path it prints the DOS
// theme as TOML. With a path it loads the file and reports the first error.
func runTheme(args []string, out io.Writer) error {
	switch len(args) {
	case 0:
		data, err := tui.DosTheme().MarshalTOML()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case 1:
		if _, err := tui.LoadThemeFile(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: ok\n", args[0])
		return nil
	}
	return fmt.Errorf("theme takes at most one path, got %d", len(args))
}
