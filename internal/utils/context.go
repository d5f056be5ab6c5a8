// Package utils holds small helpers shared by the notes server and client:
// request owner scoping, JSON over HTTP, bearer tokens and note ids.
package utils

import "context"

type ownerIDKey struct{}

// WithOwnerID returns a copy of ctx scoped to the authenticated owner.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerIDKey{}, ownerID)
}

// OwnerID returns the owner stored by [WithOwnerID]. An empty id counts as
// missing.
func OwnerID(ctx context.Context) (string, bool) {
	ownerID, _ := ctx.Value(ownerIDKey{}).(string)
	return ownerID, ownerID != ""
}
