package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mchmarny/breve/pkg/menu"
)

var errIssues = errors.New("menu has issues")

var (
	cyan  = color.New(color.FgCyan).SprintFunc()
	gray  = color.New(color.FgHiBlack).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

func lint(args []string) error {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	actions := fs.String("actions", "", "Comma separated action names the host binds; empty trusts every action in the file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("lint takes exactly one menu file")
	}
	return runLint(color.Output, fs.Arg(0), splitActions(*actions))
}

func splitActions(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// runLint prints the menu tree of path and the items that would be left out.
// A nil bound list treats every action named in the file as bound.
func runLint(w io.Writer, path string, bound []string) error {
	spec, err := menu.LoadSpec(path)
	if err != nil {
		return err
	}
	if bound == nil {
		bound = spec.Actions()
	}
	actions := make(map[string]func(), len(bound))
	for _, a := range bound {
		actions[a] = func() {}
	}

	printTree(w, spec, 0)

	issues := menu.Lint(spec, actions)
	if len(issues) == 0 {
		fmt.Fprintln(w, green("ok"))
		return nil
	}
	for _, i := range issues {
		fmt.Fprintln(w, red("dropped"), i.String())
	}
	return fmt.Errorf("%w: %d", errIssues, len(issues))
}

func printTree(w io.Writer, spec *menu.Spec, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, e := range spec.Entries() {
		it := e.Item
		switch it.Kind {
		case menu.KindSeparator:
			fmt.Fprintln(w, indent+gray("----"))
			continue
		case menu.KindCategory:
			fmt.Fprintln(w, indent+cyan(e.Label+" >")+note(it))
			printTree(w, it.Children, depth+1)
			continue
		}
		fmt.Fprintln(w, indent+e.Label+note(it))
	}
}

func note(it menu.Item) string {
	var parts []string
	if it.Action != "" {
		parts = append(parts, it.Action)
	}
	if !it.Enabled() {
		parts = append(parts, "disabled")
	}
	if it.Kind == menu.KindUnknown {
		parts = append(parts, "unknown type")
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + gray("("+strings.Join(parts, ", ")+")")
}
