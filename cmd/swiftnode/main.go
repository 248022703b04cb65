// Command swiftnode inspects the node trees produced by the Swift demangler.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/blacktop/go-swiftdemangle/pkg/swift"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "swiftnode: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "swiftnode",
		Usage: "dump, classify and unspecialize demangled Swift node trees",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "trace the parser at debug level"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable coloured output"},
			&cli.IntFlag{Name: "jobs", Aliases: []string{"j"}, Usage: "concurrent workers for load", Value: runtime.NumCPU()},
		},
		Before: setup,
		Commands: []*cli.Command{
			dumpCommand,
			classifyCommand,
			unspecializeCommand,
			yamlCommand,
			loadCommand,
			witnessCommand,
			scanCommand,
		},
	}
}

func setup(c *cli.Context) error {
	noColor := c.Bool("no-color")
	if f, ok := c.App.Writer.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		noColor = true
	}
	color.NoColor = noColor

	level := slog.LevelInfo
	if c.Bool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(c.App.ErrWriter, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	})))
	if c.Bool("debug") {
		swift.SetDebug(true)
	}
	return nil
}
