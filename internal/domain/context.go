package domain

import "context"

type userContextKey struct{}

// SystemActorID attributes actions taken without an authenticated user.
const SystemActorID = "system"

// ContextWithUser returns a copy of ctx carrying user.
func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the authenticated user stored in ctx.
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*User)
	return user, ok && user != nil
}

// ActorID returns the ID of the user in ctx, or SystemActorID when none is set.
func ActorID(ctx context.Context) string {
	if user, ok := UserFromContext(ctx); ok {
		return user.ID
	}
	return SystemActorID
}
