package toggle

import (
	"context"

	"VideoHub.com/pkg/database"
	"github.com/pkg/errors"
)

// Store holds presence records for one uniqueness scope type S.
// InsertOne must return database.ErrDuplicate when the store's unique
// index rejects the record.
type Store[S any] interface {
	DeleteOne(ctx context.Context, scope S) (bool, error)
	InsertOne(ctx context.Context, scope S) error
}

// Actions names the two outcomes, e.g. liked / unliked.
type Actions struct {
	On  string
	Off string
}

type Result struct {
	Action string `json:"action"`
	Active bool   `json:"active"`
}

// Flip removes the record if present, otherwise creates it. Removal is a
// single atomic delete; losing an insert race to a concurrent toggle leaves
// exactly one record and is reported as the applied state.
func Flip[S any](ctx context.Context, store Store[S], scope S, actions Actions) (Result, error) {
	removed, err := store.DeleteOne(ctx, scope)
	if err != nil {
		return Result{}, errors.WithMessage(err, "toggle delete")
	}
	if removed {
		return Result{Action: actions.Off, Active: false}, nil
	}
	if err = store.InsertOne(ctx, scope); err != nil && !errors.Is(err, database.ErrDuplicate) {
		return Result{}, errors.WithMessage(err, "toggle insert")
	}
	return Result{Action: actions.On, Active: true}, nil
}
