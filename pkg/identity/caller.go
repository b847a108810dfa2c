package identity

import (
	"VideoHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContextKey is where the auth middleware stores the Caller on the request.
const ContextKey = "identity"

// Caller is the authenticated identity every service operation receives
// as an explicit argument.
type Caller struct {
	UserID   string
	Username string
}

func (c Caller) ObjectID() (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.UserID)
	if err != nil {
		return primitive.NilObjectID, errno.TokenInvalidErr
	}
	return id, nil
}

// Is reports whether the caller is the user with the given id.
func (c Caller) Is(userID primitive.ObjectID) bool {
	return c.UserID == userID.Hex()
}

// Bind stores caller on the request context.
func Bind(c *app.RequestContext, caller Caller) {
	c.Set(ContextKey, caller)
}

// FromRequest returns the Caller bound by the auth middleware.
func FromRequest(c *app.RequestContext) (Caller, error) {
	v, ok := c.Get(ContextKey)
	if !ok {
		return Caller{}, errno.TokenInvalidErr
	}
	switch caller := v.(type) {
	case Caller:
		if caller.UserID == "" {
			return Caller{}, errno.TokenInvalidErr
		}
		return caller, nil
	case *Caller:
		if caller == nil || caller.UserID == "" {
			return Caller{}, errno.TokenInvalidErr
		}
		return *caller, nil
	}
	return Caller{}, errno.TokenInvalidErr
}
