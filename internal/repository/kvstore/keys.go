// Package kvstore implements the credential and entity repositories on
// top of the key-value store adapter. Collections are stored as whole
// JSON arrays and rewritten in full on every change; per-row semantics
// exist only in memory between the read and the write.
package kvstore

const (
	usersKey        = "users"
	eventsKey       = "events"
	participantsKey = "participants"
)

// namespacedKey returns "<base>:<userID>", the per-tenant key layout.
// An empty userID degenerates to the shared single-tenant key.
func namespacedKey(base, userID string) string {
	if userID == "" {
		return base
	}
	return base + ":" + userID
}
