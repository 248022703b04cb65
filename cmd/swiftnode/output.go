package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/k0kubun/pp/v3"

	"github.com/blacktop/go-swiftdemangle/pkg/nodeyaml"
	"github.com/blacktop/go-swiftdemangle/swift/demangle"
)

var (
	colorKind  = color.New(color.FgCyan).SprintFunc()
	colorValue = color.New(color.FgYellow).SprintFunc()
	colorBad   = color.New(color.FgRed, color.Bold).SprintFunc()
	colorGood  = color.New(color.FgGreen).SprintFunc()
)

// printTree writes the same layout as Node.Dump with kinds and values
// coloured.
func printTree(w io.Writer, n *demangle.Node, indent int) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s- %s", strings.Repeat("  ", indent), colorKind(n.Kind()))
	if p := n.Payload(); p.HasValue() {
		v := p.String()
		if s, ok := p.Text(); ok {
			v = s
		}
		fmt.Fprintf(w, " (%s)", colorValue(v))
	}
	fmt.Fprintln(w)
	for _, c := range n.Children() {
		printTree(w, c, indent+1)
	}
}

func printStruct(w io.Writer, n *demangle.Node) {
	printer := pp.New()
	printer.SetColoringEnabled(!color.NoColor)
	printer.SetOmitEmpty(true)
	printer.SetOutput(w)
	printer.Println(nodeyaml.FromNode(n))
}

func yesNo(b bool) string {
	if b {
		return colorGood("yes")
	}
	return colorBad("no")
}

func countNodes(n *demangle.Node) int {
	count := 0
	demangle.Walk(n, func(*demangle.Node) bool {
		count++
		return true
	})
	return count
}
