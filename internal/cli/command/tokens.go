package command

import (
	"context"
	"strings"

	"github.com/goggledefogger/firebase-admin/internal/cli/dispatch"
)

type tokenResult struct {
	Database string `json:"database" yaml:"database"`
	Token    string `json:"token" yaml:"token"`
	Removed  bool   `json:"removed,omitempty" yaml:"removed,omitempty"`
}

func (s *session) tokensAdd(ctx context.Context, args []string) error {
	name, err := arg(args, 0, "databaseName")
	if err != nil {
		return err
	}

	db, err := s.account.GetDatabase(ctx, name)
	if err != nil {
		return err
	}
	token, err := db.AddAuthToken(ctx)
	if err != nil {
		return err
	}

	return s.emit(token, tokenResult{Database: name, Token: token})
}

func (s *session) tokensRemove(ctx context.Context, args []string) error {
	name, err := arg(args, 0, "databaseName")
	if err != nil {
		return err
	}
	token, err := arg(args, 1, "token")
	if err != nil {
		return err
	}

	// Tokens are often pasted with stray whitespace. An all-blank token
	// would address the whole secrets collection, so it counts as missing.
	token = strings.TrimSpace(token)
	if token == "" {
		return dispatch.MissingArgument("token")
	}

	db, err := s.account.GetDatabase(ctx, name)
	if err != nil {
		return err
	}
	if err := db.RemoveAuthToken(ctx, token); err != nil {
		return err
	}

	return s.emit("Done!", tokenResult{Database: name, Token: token, Removed: true})
}

func (s *session) tokensList(ctx context.Context, args []string) error {
	name, err := arg(args, 0, "databaseName")
	if err != nil {
		return err
	}

	db, err := s.account.GetDatabase(ctx, name)
	if err != nil {
		return err
	}
	tokens, err := db.AuthTokens(ctx)
	if err != nil {
		return err
	}
	if tokens == nil {
		tokens = []string{}
	}

	return s.emit(tokens, tokens)
}
