package utils

import (
	"strings"

	"VideoHub.com/pkg/errno"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID validates a path identifier. kind is used in the message,
// e.g. "Video" gives "Video id is required" / "Invalid video id".
func ParseObjectID(raw, kind string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, errno.ParamErr.WithMessage(kind + " id is required")
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, errno.ParamErr.WithMessage("Invalid " + strings.ToLower(kind) + " id")
	}
	return id, nil
}

// Blank reports whether a required text field is missing.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
