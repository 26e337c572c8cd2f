package command

import (
	"context"
	"fmt"

	"github.com/goggledefogger/firebase-admin/internal/cli/output"
)

type databaseResult struct {
	Name    string `json:"name" yaml:"name"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	Deleted bool   `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}

func (s *session) create(ctx context.Context, args []string) error {
	name, err := arg(args, 0, "databaseName")
	if err != nil {
		return err
	}

	db, err := s.account.CreateDatabase(ctx, name)
	if err != nil {
		return err
	}

	return s.emit(
		"Done! New URL is "+db.String(),
		databaseResult{Name: db.Name, URL: db.String()},
	)
}

func (s *session) delete(ctx context.Context, args []string) error {
	name, err := arg(args, 0, "databaseName")
	if err != nil {
		return err
	}

	if s.format == output.FormatPlain {
		fmt.Fprintf(s.out, "Deleting Firebase %s because you told me to.\n", name)
	}

	db, err := s.account.GetDatabase(ctx, name)
	if err != nil {
		return err
	}
	if err := s.account.DeleteDatabase(ctx, db); err != nil {
		return err
	}

	return s.emit(
		fmt.Sprintf("Successfully deleted %s.", name),
		databaseResult{Name: name, Deleted: true},
	)
}
