package database

import (
	"VideoHub.com/pkg/errno"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate document")
)

// ConvertMongoError maps driver errors onto the package sentinels so callers
// can test with errors.Is without importing the driver.
func ConvertMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return errors.Wrap(ErrDuplicate, err.Error())
	default:
		return errors.WithStack(&DriverError{Cause: err})
	}
}

// DriverError is an unexpected driver failure. It unwraps to both the cause
// and errno.MongoErr, which is what clients see.
type DriverError struct {
	Cause error
}

func (e *DriverError) Error() string { return "mongo: " + e.Cause.Error() }

func (e *DriverError) Unwrap() []error { return []error{e.Cause, errno.MongoErr} }
