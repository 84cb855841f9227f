// Package actor identifies who is performing an operation. Every mutating
// command carries an Actor and the order aggregate checks its role and identity
// before accepting a transition.
package actor

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Role is the kind of participant performing an operation.
type Role string

const (
	RoleBuyer           Role = "buyer"
	RoleSeller          Role = "seller"
	RoleDeliveryPartner Role = "delivery_partner"
	RoleAdmin           Role = "admin"
	RoleSystem          Role = "system"
)

// ErrActorIsNotConstructed is returned when a zero value Actor reaches the domain.
var ErrActorIsNotConstructed = errors.New("actor must be created via New or System")

// ParseRole converts a wire value (case-insensitive) into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the known roles.
func (r Role) Validate() error {
	switch r {
	case RoleBuyer, RoleSeller, RoleDeliveryPartner, RoleAdmin, RoleSystem:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

// Actor is an identity paired with a role.
type Actor struct {
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

// New builds an actor from an identifier and a role.
func New(id kernel.UUID, role Role) (Actor, error) {
	a := Actor{guard: guard.NewConstructorGuard()}

	if err := errors.Join(a.setID(id), a.setRole(role)); err != nil {
		return Actor{}, err
	}
	return a, nil
}

// System returns the actor used by background jobs.
func System() Actor {
	return Actor{
		id:    systemID,
		role:  RoleSystem,
		guard: guard.NewConstructorGuard(),
	}
}

//nolint:gochecknoglobals // fixed identity of background jobs
var systemID, _ = kernel.UUIDFromString("00000000-0000-4000-8000-000000000000")

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// Is reports whether the actor has the given role.
func (a Actor) Is(role Role) bool {
	return a.role == role
}

// IsPrivileged reports whether the actor is an admin or the system.
func (a Actor) IsPrivileged() bool {
	return a.role == RoleAdmin || a.role == RoleSystem
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) String() string {
	return fmt.Sprintf("%s:%s", a.role, a.id)
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
