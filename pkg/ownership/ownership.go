package ownership

import (
	"context"
	"strings"

	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/identity"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owned is implemented by every document that only its creator may mutate.
type Owned interface {
	OwnerID() primitive.ObjectID
}

// Finder loads a document by id and returns database.ErrNotFound when absent.
type Finder[T Owned] func(ctx context.Context, id primitive.ObjectID) (T, error)

// Check loads the resource and verifies caller owns it.
// kind names the resource in client messages, e.g. "Comment".
func Check[T Owned](ctx context.Context, kind string, id primitive.ObjectID, caller identity.Caller, find Finder[T]) (T, error) {
	res, err := Load(ctx, kind, id, find)
	if err != nil {
		return res, err
	}
	if !caller.Is(res.OwnerID()) {
		var zero T
		return zero, errno.AuthorizationFailedErr.WithMessage("You are not authorized to modify this " + strings.ToLower(kind))
	}
	return res, nil
}

// Load fetches the resource and maps absence to a NotFound error.
func Load[T Owned](ctx context.Context, kind string, id primitive.ObjectID, find Finder[T]) (T, error) {
	res, err := find(ctx, id)
	if err != nil {
		var zero T
		if errors.Is(err, database.ErrNotFound) {
			return zero, errno.NotFoundErr.WithMessage(kind + " not found")
		}
		return zero, errors.WithMessagef(err, "load %s", strings.ToLower(kind))
	}
	return res, nil
}
