package school

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Serialize returns the client-facing representation of a stored document:
// the internal "_id" field is replaced by a field named "id" holding its hex
// string form, and every timestamp value is converted to its ISO-8601 textual
// representation. All other values pass through unchanged; in particular,
// strings that merely look like times (a ScheduleItem's "HH:MM") are untouched.
//
// The input document is never mutated; a fresh Document is returned.
// An empty document serializes to itself. A document that already carries an
// "id" field and no "_id" is considered already serialized and passes through.
func Serialize(doc Document) (Document, error) {
	if len(doc) == 0 {
		return doc, nil
	}

	out := make(Document, len(doc))
	if rawID, ok := doc["_id"]; ok {
		out["id"] = idString(rawID)
	} else if _, ok := doc["id"]; !ok {
		return nil, ErrMalformedRecord
	}

	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = serializeValue(v)
	}
	return out, nil
}

func idString(id interface{}) string {
	switch id := id.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}

// serializeValue converts timestamp values to RFC 3339 UTC strings and leaves
// everything else alone.
func serializeValue(v interface{}) interface{} {
	switch v := v.(type) {
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case primitive.DateTime:
		return v.Time().UTC().Format(time.RFC3339Nano)
	}
	return v
}
