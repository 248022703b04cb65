package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/blacktop/go-swiftdemangle/pkg/nodeyaml"
	"github.com/blacktop/go-swiftdemangle/pkg/swift"
	"github.com/blacktop/go-swiftdemangle/swift/demangle"
)

var errUsage = errors.Base("usage")

func requireArgs(c *cli.Context, n int) error {
	if c.NArg() < n {
		return errors.WithDetails(
			errors.Errorf("%w: %s needs at least %d argument(s)", errUsage, c.Command.Name, n),
			"args", c.NArg(),
		)
	}
	return nil
}

var dumpCommand = &cli.Command{
	Name:      "dump",
	Usage:     "print the node tree of each mangled name",
	ArgsUsage: "<mangled>...",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "struct", Usage: "pretty-print the YAML document structure instead of the tree"},
	},
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 1); err != nil {
			return err
		}
		w := c.App.Writer
		for _, arg := range c.Args().Slice() {
			n, err := swift.Demangle(arg)
			if err != nil {
				return errors.Errorf("dump %q: %w", arg, err)
			}
			if c.NArg() > 1 {
				fmt.Fprintf(w, "%s:\n", arg)
			}
			if c.Bool("struct") {
				printStruct(w, n)
				continue
			}
			printTree(w, n, 0)
		}
		return nil
	},
}

var predicates = []struct {
	name string
	fn   func(*demangle.Node) bool
}{
	{"simple-type", demangle.IsSimpleType},
	{"space-before-type", demangle.IsNeedSpaceBeforeType},
	{"existential", demangle.IsExistentialType},
	{"class-type", demangle.IsClassType},
	{"alias", demangle.IsAlias},
	{"class", demangle.IsClass},
	{"enum", demangle.IsEnum},
	{"protocol", demangle.IsProtocol},
	{"struct", demangle.IsStruct},
	{"consumes-generic-args", demangle.IsConsumesGenericArgs},
	{"specialized", demangle.IsSpecialized},
}

var classifyCommand = &cli.Command{
	Name:      "classify",
	Usage:     "report the semantic predicates of the entity each name describes",
	ArgsUsage: "<mangled>...",
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 1); err != nil {
			return err
		}
		w := c.App.Writer
		for _, arg := range c.Args().Slice() {
			n, err := swift.Demangle(arg)
			if err != nil {
				return errors.Errorf("classify %q: %w", arg, err)
			}
			e := swift.Entity(n)
			fmt.Fprintf(w, "%s: %s\n", arg, colorKind(e.Kind()))
			for _, p := range predicates {
				fmt.Fprintf(w, "  %-22s %s\n", p.name, yesNo(p.fn(e)))
			}
		}
		return nil
	},
}

var unspecializeCommand = &cli.Command{
	Name:      "unspecialize",
	Usage:     "strip generic specialization from the entity a name describes",
	ArgsUsage: "<mangled>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "diff", Usage: "print a line diff against the specialized tree"},
	},
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 1); err != nil {
			return err
		}
		arg := c.Args().First()
		if c.Bool("diff") {
			out, err := swift.DiffUnspecialized(arg)
			if err != nil {
				return err
			}
			fmt.Fprint(c.App.Writer, out)
			return nil
		}
		n, err := swift.Unspecialize(arg)
		if err != nil {
			return err
		}
		printTree(c.App.Writer, n, 0)
		return nil
	},
}

var yamlCommand = &cli.Command{
	Name:      "yaml",
	Usage:     "write the node tree of a mangled name as YAML",
	ArgsUsage: "<mangled>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write to `FILE` instead of stdout"},
	},
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 1); err != nil {
			return err
		}
		n, err := swift.Demangle(c.Args().First())
		if err != nil {
			return err
		}
		path := c.String("output")
		if path == "" {
			return nodeyaml.Encode(c.App.Writer, n)
		}
		return writeYAMLFile(path, n)
	},
}

func writeYAMLFile(path string, n *demangle.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := nodeyaml.Encode(f, n); err != nil {
		f.Close()
		return err
	}
	return errors.WithStack(f.Close())
}

type loaded struct {
	path string
	node *demangle.Node
}

var loadCommand = &cli.Command{
	Name:      "load",
	Usage:     "decode and validate YAML node trees",
	ArgsUsage: "<file.yaml>...",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "dump", Usage: "print each decoded tree"},
	},
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 1); err != nil {
			return err
		}
		paths := c.Args().Slice()
		results, err := loadTrees(c, paths, c.Int("jobs"))
		if err != nil {
			return err
		}
		w := c.App.Writer
		for _, r := range results {
			fmt.Fprintf(w, "%s: %s nodes=%d specialized=%s\n",
				r.path, colorKind(r.node.Kind()), countNodes(r.node), yesNo(demangle.IsSpecialized(r.node)))
			if c.Bool("dump") {
				printTree(w, r.node, 1)
			}
		}
		return nil
	},
}

func loadTrees(c *cli.Context, paths []string, jobs int) ([]loaded, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]loaded, len(paths))
	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return errors.WithStack(err)
			}
			defer f.Close()
			n, err := nodeyaml.Decode(f)
			if err != nil {
				return errors.Errorf("%s: %w", path, err)
			}
			if err := demangle.Validate(n); err != nil {
				return errors.Errorf("%s: %w", path, err)
			}
			slog.Debug("loaded tree", "path", path, "kind", n.Kind())
			results[i] = loaded{path: path, node: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

var witnessCommand = &cli.Command{
	Name:      "witness",
	Usage:     "list value-witness kinds, or look up the given two-character codes",
	ArgsUsage: "[code]...",
	Action: func(c *cli.Context) error {
		kinds := demangle.ValueWitnessKinds()
		if c.NArg() > 0 {
			kinds = kinds[:0]
			for _, code := range c.Args().Slice() {
				k, ok := demangle.ValueWitnessFromCode(code)
				if !ok {
					return errors.WithDetails(
						errors.Errorf("%w: unknown value witness code %q", errUsage, code), "code", code)
				}
				kinds = append(kinds, k)
			}
		}
		w := c.App.Writer
		for _, k := range kinds {
			fmt.Fprintf(w, "%s  %-36s %s\n", colorValue(k.Code()), k.String(), k.DisplayName())
		}
		return nil
	},
}

var scanCommand = &cli.Command{
	Name:      "scan",
	Usage:     "demangle every Swift symbol found in a text file and report failures",
	ArgsUsage: "<file|->",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "emit-go", Usage: "print Go test case entries for symbols that fail"},
	},
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 1); err != nil {
			return err
		}
		data, err := readInput(c.App.Reader, c.Args().First())
		if err != nil {
			return err
		}

		seen := make(map[string]bool)
		var failed []swift.Symbol
		total := 0
		for _, sym := range swift.DemangleBlob(string(data)) {
			if seen[sym.Mangled] {
				continue
			}
			seen[sym.Mangled] = true
			total++
			if sym.Err != nil {
				failed = append(failed, sym)
			}
		}

		w := c.App.Writer
		fmt.Fprintf(w, "found %d symbols, %d failed\n", total, len(failed))
		for _, sym := range failed {
			fmt.Fprintf(w, "  %s: %s\n", sym.Mangled, colorBad(sym.Err))
		}
		if c.Bool("emit-go") && len(failed) > 0 {
			fmt.Fprintln(w, "\nGo test cases:")
			for _, sym := range failed {
				fmt.Fprintf(w, "\t{%q, false},\n", sym.Mangled)
			}
		}
		return nil
	},
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		return data, errors.WithStack(err)
	}
	data, err := os.ReadFile(strings.TrimSpace(path))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}
