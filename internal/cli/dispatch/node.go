// Package dispatch provides the command tree used by firebase-admin.
package dispatch

import "context"

// Action runs a leaf command with the positional arguments left over after
// the command path has been matched.
type Action func(ctx context.Context, args []string) error

// Node is a node in the command tree: either a *Group or a *Leaf.
type Node interface {
	// Info returns the syntax hint and description shown in help output.
	Info() (syntax, description string)
}

// Child is a named entry of a Group.
type Child struct {
	Name string
	Node Node
}

// Group is a node with named children and no action.
type Group struct {
	Description string
	Children    []Child
}

// Info implements Node. Groups have no syntax hint.
func (g *Group) Info() (string, string) {
	return "", g.Description
}

// Child returns the child registered under name.
func (g *Group) Child(name string) (Node, bool) {
	for _, c := range g.Children {
		if c.Name == name {
			return c.Node, true
		}
	}
	return nil, false
}

// Add appends a child and returns the group for chaining.
// It panics if name is already taken, since the tree is static.
func (g *Group) Add(name string, n Node) *Group {
	if _, exists := g.Child(name); exists {
		panic("dispatch: command " + name + " already registered")
	}
	g.Children = append(g.Children, Child{Name: name, Node: n})
	return g
}

// Leaf is a node bound to an action.
type Leaf struct {
	Description string
	Syntax      string
	Action      Action
}

// Info implements Node.
func (l *Leaf) Info() (string, string) {
	return l.Syntax, l.Description
}
