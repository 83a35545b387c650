// Package runtime holds the local state replica and the infrastructure
// around it: registries, dictionary loading, and the workers directory.
package runtime

import (
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"chat-client/contract"
	"chat-client/domain"
)

// UserRegistry mirrors the server-side roster. Joins are idempotent,
// removals of unknown users are no-ops, and observers hear about every
// applied push either way, so a stale view never survives a refresh.
type UserRegistry struct {
	log       *slog.Logger
	mu        sync.RWMutex
	users     []domain.User
	observers []contract.UserObserver
}

func NewUserRegistry(log *slog.Logger) *UserRegistry {
	return &UserRegistry{log: log}
}

// Observe registers an observer. Call before events start flowing.
func (r *UserRegistry) Observe(obs contract.UserObserver) {
	r.observers = append(r.observers, obs)
}

// Add records a user once. A duplicate join leaves the roster untouched
// but still notifies, matching the server's at-least-once pushes.
func (r *UserRegistry) Add(user domain.User) {
	r.mu.Lock()
	if !lo.Contains(r.users, user) {
		r.users = append(r.users, user)
	} else {
		r.log.Debug("User already known", "user", string(user))
	}
	snapshot := append([]domain.User{}, r.users...)
	r.mu.Unlock()

	r.notify(snapshot)
}

// Remove drops a user by value. Removing an absent user changes nothing
// and still notifies.
func (r *UserRegistry) Remove(user domain.User) {
	r.mu.Lock()
	before := len(r.users)
	r.users = lo.Reject(r.users, func(u domain.User, _ int) bool {
		return u == user
	})
	if len(r.users) == before {
		r.log.Debug("Removing unknown user", "user", string(user))
	}
	snapshot := append([]domain.User{}, r.users...)
	r.mu.Unlock()

	r.notify(snapshot)
}

// Snapshot returns the roster in join order.
func (r *UserRegistry) Snapshot() []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.User{}, r.users...)
}

func (r *UserRegistry) notify(users []domain.User) {
	for _, obs := range r.observers {
		obs.UsersChanged(users)
	}
}
