package middleware

import (
	"context"

	"github.com/famstack/family_budget_app/internal/core/domain"
)

// actorKey is the key used to store the authenticated caller in the request
// context.
const actorKey = contextKey("actor")

// GetActorFromContext retrieves the authenticated caller from a standard
// context. It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}
