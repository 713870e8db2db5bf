package kernel

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Role is the staff member's function. It changes workflow mechanics in one
// place only: admins observe and override but never own jobs.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleBilling Role = "billing"
	RolePacking Role = "packing"
)

func ParseRole(raw string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(raw))); r {
	case RoleAdmin, RoleBilling, RolePacking:
		return r, nil
	case "":
		return "", errs.NewValueIsRequiredError("role")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", raw))
	}
}

func (r Role) String() string {
	return string(r)
}

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor")

// Actor is the staff member performing an operation. Every command receives
// it explicitly; there is no ambient session.
type Actor struct {
	username string
	role     Role
	guard    guard.ConstructorGuard
}

func NewActor(username string, role Role) (Actor, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor")
	}
	if _, err := ParseRole(string(role)); err != nil {
		return Actor{}, err
	}
	return Actor{username: name, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) Username() string {
	return a.username
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Is reports whether username names this actor. Usernames are compared
// exactly, as stored.
func (a Actor) Is(username string) bool {
	return username != "" && a.username == username
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
