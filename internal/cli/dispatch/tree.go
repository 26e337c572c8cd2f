package dispatch

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Tree is a static command tree rooted at an unnamed group.
type Tree struct {
	// Name is the tool name used in usage lines.
	Name string

	// Summary is the one-line tool description printed at the top of usage.
	Summary string

	// Options are preformatted option lines printed under the summary.
	Options []string

	Root *Group
}

// Positional checks that args, the tokens left after option parsing, hold
// no options. Options must precede the command: one found later would leave
// its value behind as an argument, so it is a usage error.
func Positional(args []string) ([]string, error) {
	for _, a := range args {
		if len(a) > 1 && strings.HasPrefix(a, "-") {
			return nil, Usage(fmt.Sprintf("Option %s must come before the command", a))
		}
	}
	return args, nil
}

// Dispatch walks the tree with tokens and runs the leaf it lands on with the
// unconsumed tokens. A child whose name equals the next token always wins over
// running an action.
func (t *Tree) Dispatch(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return Usage()
	}

	node, rest := t.walk(tokens)
	if leaf, ok := node.(*Leaf); ok && leaf.Action != nil {
		return leaf.Action(ctx, rest)
	}

	return Usage(`Bad command "` + strings.Join(tokens, " ") + `"`)
}

// walk descends while the next token names a child of the current group.
func (t *Tree) walk(tokens []string) (Node, []string) {
	var node Node = t.Root
	for len(tokens) > 0 {
		g, ok := node.(*Group)
		if !ok {
			break
		}
		child, ok := g.Child(tokens[0])
		if !ok {
			break
		}
		node = child
		tokens = tokens[1:]
	}
	return node, tokens
}

// Help writes the usage line and description of the node path resolves to.
// With no path, or a path that does not reach a documented node, it returns
// a UsageError so the caller prints the full tree.
func (t *Tree) Help(w io.Writer, path []string) error {
	if len(path) == 0 {
		return Usage()
	}

	node, rest := t.walk(path)
	syntax, description := node.Info()
	if description == "" {
		return Usage("unknown command")
	}

	parts := []string{t.Name}
	parts = append(parts, path[:len(path)-len(rest)]...)
	if syntax != "" {
		parts = append(parts, syntax)
	}

	fmt.Fprintf(w, "\n  %s\n\n  %s\n", strings.Join(parts, " "), description)
	return nil
}

// PrintTree writes one line per node, indented by one tab per level.
func (t *Tree) PrintTree(w io.Writer) {
	printGroup(w, t.Root, 1)
}

func printGroup(w io.Writer, g *Group, depth int) {
	for _, c := range g.Children {
		syntax, description := c.Node.Info()

		line := c.Name
		if syntax != "" {
			line += " " + syntax
		}
		fmt.Fprintf(w, "%s%s : %s\n", strings.Repeat("\t", depth), line, description)

		if sub, ok := c.Node.(*Group); ok {
			printGroup(w, sub, depth+1)
		}
	}
}

// PrintUsage writes the tool header, the option list, the command tree and
// then each message on its own line.
func (t *Tree) PrintUsage(w io.Writer, msgs ...string) {
	fmt.Fprintf(w, "%s: %s\n", t.Name, t.Summary)
	if len(t.Options) > 0 {
		fmt.Fprintf(w, "\nOptions:\n")
		for _, opt := range t.Options {
			fmt.Fprintf(w, "  %s\n", opt)
		}
	}

	fmt.Fprintf(w, "\nCommands:\n\n")
	t.PrintTree(w)
	fmt.Fprintln(w)

	for _, m := range msgs {
		fmt.Fprintln(w, m)
	}
}
