package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const invalidIDMessage = "must be a 24-character hex object id"

// ParseID converts an API id into a store id. It is the only place where
// ids coming from clients are parsed; a malformed id yields a
// *ValidationError naming the field.
func ParseID(field, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		v := &ValidationError{}
		v.add(field, invalidIDMessage)
		return primitive.NilObjectID, v
	}
	return id, nil
}

// IsValidID reports whether ParseID would accept hex.
func IsValidID(hex string) bool {
	_, err := ParseID("id", hex)
	return err == nil
}

// parseInto parses hex and records a field error instead of returning it.
func (e *ValidationError) parseInto(field, hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		e.add(field, invalidIDMessage)
		return primitive.NilObjectID
	}
	return id
}
