package command

import (
	"context"
	"io"

	"github.com/goggledefogger/firebase-admin/internal/cli/account"
	"github.com/goggledefogger/firebase-admin/internal/cli/dispatch"
	"github.com/goggledefogger/firebase-admin/internal/cli/output"
)

// session is the state leaf actions share for one invocation. Run fills in
// the account and format after flags and config are resolved.
type session struct {
	out     io.Writer
	format  output.Format
	account *account.Client
}

// NewTree builds the firebase-admin command tree over s.
func NewTree(s *session) *dispatch.Tree {
	tokens := &dispatch.Group{Description: "Actions on Firebase auth tokens"}
	tokens.
		Add("add", &dispatch.Leaf{
			Description: "Create a new auth token for the selected Firebase.",
			Syntax:      "[databaseName]",
			Action:      s.tokensAdd,
		}).
		Add("remove", &dispatch.Leaf{
			Description: "Remove an auth token from the selected Firebase.",
			Syntax:      "[databaseName] [token]",
			Action:      s.tokensRemove,
		}).
		Add("list", &dispatch.Leaf{
			Description: "List all auth tokens on the selected Firebase",
			Syntax:      "[databaseName]",
			Action:      s.tokensList,
		})

	tree := &dispatch.Tree{
		Name:    ToolName,
		Summary: summary,
		Options: flagLines(),
		Root:    &dispatch.Group{},
	}

	tree.Root.
		Add("create", &dispatch.Leaf{
			Description: "Create a new Firebase database.",
			Syntax:      "[databaseName]",
			Action:      s.create,
		}).
		Add("help", &dispatch.Leaf{
			Description: "Provide help for the given command.",
			Syntax:      "[command]",
			Action: func(_ context.Context, args []string) error {
				return tree.Help(s.out, args)
			},
		}).
		Add("delete", &dispatch.Leaf{
			Description: "Delete a Firebase database.",
			Syntax:      "[databaseName]",
			Action:      s.delete,
		}).
		Add("tokens", tokens)

	return tree
}

// arg returns args[i], or a missing-argument usage error naming it.
func arg(args []string, i int, name string) (string, error) {
	if i >= len(args) || args[i] == "" {
		return "", dispatch.MissingArgument(name)
	}
	return args[i], nil
}

// emit writes plain in plain mode and structured otherwise.
func (s *session) emit(plain, structured any) error {
	if s.format == output.FormatPlain {
		return output.NewFormatter(s.format).Format(s.out, plain)
	}
	return output.NewFormatter(s.format).Format(s.out, structured)
}
