package dispatch

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// recorder captures which leaf ran and with what arguments.
type recorder struct {
	called string
	args   []string
	calls  int
}

func (r *recorder) leaf(name, syntax, description string) *Leaf {
	return &Leaf{
		Syntax:      syntax,
		Description: description,
		Action: func(_ context.Context, args []string) error {
			r.called = name
			r.args = args
			r.calls++
			return nil
		},
	}
}

func testTree(r *recorder) *Tree {
	tokens := &Group{Description: "Actions on auth tokens"}
	tokens.Add("add", r.leaf("tokens add", "[databaseName]", "Create a new auth token."))
	tokens.Add("remove", r.leaf("tokens remove", "[databaseName] [token]", "Remove an auth token."))
	tokens.Add("list", r.leaf("tokens list", "[databaseName]", "List all auth tokens."))

	root := &Group{}
	root.Add("create", r.leaf("create", "[databaseName]", "Create a new database."))
	root.Add("delete", r.leaf("delete", "[databaseName]", "Delete a database."))
	root.Add("tokens", tokens)

	return &Tree{Name: "firebase-admin", Summary: "test tool", Root: root}
}

func TestDispatch_Leaves(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		wantLeaf string
		wantArgs []string
	}{
		{"top level leaf", []string{"create", "mydb"}, "create", []string{"mydb"}},
		{"leaf without args", []string{"delete"}, "delete", nil},
		{"nested leaf", []string{"tokens", "add", "mydb"}, "tokens add", []string{"mydb"}},
		{"nested leaf keeps order", []string{"tokens", "remove", "mydb", "abc"}, "tokens remove", []string{"mydb", "abc"}},
		{"extra args passed through", []string{"create", "a", "b", "c"}, "create", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			tree := testTree(r)

			if err := tree.Dispatch(context.Background(), tt.tokens); err != nil {
				t.Fatalf("Dispatch() error = %v", err)
			}
			if r.calls != 1 {
				t.Fatalf("calls = %d, want 1", r.calls)
			}
			if r.called != tt.wantLeaf {
				t.Errorf("called = %q, want %q", r.called, tt.wantLeaf)
			}
			if len(r.args) != len(tt.wantArgs) || (len(tt.wantArgs) > 0 && !reflect.DeepEqual(r.args, tt.wantArgs)) {
				t.Errorf("args = %v, want %v", r.args, tt.wantArgs)
			}
		})
	}
}

func TestDispatch_Unresolved(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		wantMsg string
	}{
		{"no tokens", nil, ""},
		{"unknown top level", []string{"bogus"}, `Bad command "bogus"`},
		{"group without subcommand", []string{"tokens"}, `Bad command "tokens"`},
		{"unknown subcommand", []string{"tokens", "rotate", "db"}, `Bad command "tokens rotate db"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			tree := testTree(r)

			err := tree.Dispatch(context.Background(), tt.tokens)
			var ue *UsageError
			if !errors.As(err, &ue) {
				t.Fatalf("Dispatch() error = %v, want *UsageError", err)
			}
			if r.calls != 0 {
				t.Errorf("action called %d times, want 0", r.calls)
			}
			got := strings.Join(ue.Messages, "\n")
			if got != tt.wantMsg {
				t.Errorf("messages = %q, want %q", got, tt.wantMsg)
			}
			if ue.ExitCode() != 1 {
				t.Errorf("ExitCode() = %d, want 1", ue.ExitCode())
			}
		})
	}
}

func TestDispatch_ChildWinsOverAction(t *testing.T) {
	var called string

	inner := &Group{}
	inner.Add("run", &Leaf{Action: func(context.Context, []string) error {
		called = "child"
		return nil
	}})

	root := &Group{}
	root.Add("run", inner)
	tree := &Tree{Name: "t", Root: root}

	if err := tree.Dispatch(context.Background(), []string{"run", "run"}); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if called != "child" {
		t.Errorf("called = %q, want child", called)
	}
}

func TestDispatch_PropagatesActionError(t *testing.T) {
	want := errors.New("remote failure")

	root := &Group{}
	root.Add("fail", &Leaf{Action: func(context.Context, []string) error { return want }})
	tree := &Tree{Name: "t", Root: root}

	err := tree.Dispatch(context.Background(), []string{"fail"})
	if !errors.Is(err, want) {
		t.Errorf("Dispatch() error = %v, want %v", err, want)
	}
	if IsUsage(err) {
		t.Error("action error should not be a usage error")
	}
}

func TestGroup_AddDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate name")
		}
	}()

	g := &Group{}
	g.Add("x", &Leaf{})
	g.Add("x", &Leaf{})
}

func TestPositional(t *testing.T) {
	got, err := Positional([]string{"tokens", "remove", "db", "tok"})
	if err != nil {
		t.Fatalf("Positional() error = %v", err)
	}
	want := []string{"tokens", "remove", "db", "tok"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Positional() = %v, want %v", got, want)
	}

	if got, err := Positional(nil); err != nil || len(got) != 0 {
		t.Errorf("Positional(nil) = %v, %v, want empty", got, err)
	}

	// A lone dash is an argument, not an option.
	if _, err := Positional([]string{"create", "-"}); err != nil {
		t.Errorf("Positional() with lone dash error = %v", err)
	}
}

func TestPositional_RejectsOptions(t *testing.T) {
	tests := [][]string{
		{"tokens", "remove", "mydb", "-o", "json", "tok"},
		{"create", "--verbose"},
		{"create", "mydb", "--output=json"},
	}

	for _, args := range tests {
		_, err := Positional(args)
		var ue *UsageError
		if !errors.As(err, &ue) {
			t.Fatalf("Positional(%q) error = %v, want *UsageError", args, err)
		}
		if len(ue.Messages) != 1 || !strings.Contains(ue.Messages[0], "must come before the command") {
			t.Errorf("Positional(%q) messages = %q", args, ue.Messages)
		}
	}
}

func TestHelp(t *testing.T) {
	tree := testTree(&recorder{})

	t.Run("resolved leaf", func(t *testing.T) {
		var buf bytes.Buffer
		if err := tree.Help(&buf, []string{"create"}); err != nil {
			t.Fatalf("Help() error = %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "firebase-admin create [databaseName]") {
			t.Errorf("output missing usage line: %q", out)
		}
		if !strings.Contains(out, "Create a new database.") {
			t.Errorf("output missing description: %q", out)
		}
		if strings.Contains(out, "unknown command") {
			t.Errorf("output should not report unknown command: %q", out)
		}
	})

	t.Run("nested leaf", func(t *testing.T) {
		var buf bytes.Buffer
		if err := tree.Help(&buf, []string{"tokens", "remove"}); err != nil {
			t.Fatalf("Help() error = %v", err)
		}
		if !strings.Contains(buf.String(), "firebase-admin tokens remove [databaseName] [token]") {
			t.Errorf("unexpected output: %q", buf.String())
		}
	})

	t.Run("partial path stops at last match", func(t *testing.T) {
		var buf bytes.Buffer
		if err := tree.Help(&buf, []string{"tokens", "bogus"}); err != nil {
			t.Fatalf("Help() error = %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "firebase-admin tokens\n") {
			t.Errorf("usage line should only name matched path: %q", out)
		}
		if !strings.Contains(out, "Actions on auth tokens") {
			t.Errorf("missing group description: %q", out)
		}
	})

	t.Run("no path", func(t *testing.T) {
		var buf bytes.Buffer
		err := tree.Help(&buf, nil)
		if !IsUsage(err) {
			t.Fatalf("Help() error = %v, want usage error", err)
		}
		if buf.Len() != 0 {
			t.Errorf("Help() wrote %q, want nothing", buf.String())
		}
	})

	t.Run("unknown path", func(t *testing.T) {
		var buf bytes.Buffer
		err := tree.Help(&buf, []string{"bogus"})
		var ue *UsageError
		if !errors.As(err, &ue) {
			t.Fatalf("Help() error = %v, want usage error", err)
		}
		if len(ue.Messages) != 1 || ue.Messages[0] != "unknown command" {
			t.Errorf("messages = %v, want [unknown command]", ue.Messages)
		}
	})
}

func TestPrintTree(t *testing.T) {
	tree := testTree(&recorder{})

	var buf bytes.Buffer
	tree.PrintTree(&buf)

	want := "" +
		"\tcreate [databaseName] : Create a new database.\n" +
		"\tdelete [databaseName] : Delete a database.\n" +
		"\ttokens : Actions on auth tokens\n" +
		"\t\tadd [databaseName] : Create a new auth token.\n" +
		"\t\tremove [databaseName] [token] : Remove an auth token.\n" +
		"\t\tlist [databaseName] : List all auth tokens.\n"

	if buf.String() != want {
		t.Errorf("PrintTree() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestPrintUsage(t *testing.T) {
	tree := testTree(&recorder{})
	tree.Options = []string{"--firebaseUser value\tYour Firebase API username."}

	var buf bytes.Buffer
	tree.PrintUsage(&buf, `Bad command "bogus"`)
	out := buf.String()

	for _, want := range []string{
		"firebase-admin: test tool\n",
		"Options:\n  --firebaseUser value",
		"Commands:\n\n\tcreate",
		"\t\tlist [databaseName]",
		"\nBad command \"bogus\"\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("PrintUsage() output missing %q:\n%s", want, out)
		}
	}

	if !strings.HasSuffix(out, "Bad command \"bogus\"\n") {
		t.Errorf("message should come last:\n%s", out)
	}
}

func TestUsageError(t *testing.T) {
	if got := MissingArgument("databaseName").Error(); got != "Missing argument databaseName" {
		t.Errorf("Error() = %q", got)
	}
	if got := Usage().Error(); got != "usage" {
		t.Errorf("Error() = %q, want usage", got)
	}
	wrapped := errors.Join(errors.New("context"), Usage("x"))
	if !IsUsage(wrapped) {
		t.Error("IsUsage should see through wrapping")
	}
}
