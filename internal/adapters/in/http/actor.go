package http

import (
	"fmt"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/adapters/in/http/servers"
	"marketplace/internal/pkg/errs"
)

// actorFromParams builds the caller from the gateway headers. The headers are
// trusted: authentication happens before requests reach this service.
func actorFromParams(params servers.ActorParams) (actor.Actor, error) {
	id, err := toID("X-Actor-Id", params.XActorId)
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.ParseRole(string(params.XActorRole))
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.New(id, role)
}

func actorAndID(params servers.ActorParams, raw openapi_types.UUID) (actor.Actor, kernel.UUID, error) {
	by, err := actorFromParams(params)
	if err != nil {
		return actor.Actor{}, kernel.UUID{}, err
	}

	id, err := toID("id", raw)
	if err != nil {
		return actor.Actor{}, kernel.UUID{}, err
	}

	return by, id, nil
}

func toID(field string, raw openapi_types.UUID) (kernel.UUID, error) {
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return id, nil
}

func requirePrivileged(a actor.Actor) error {
	if a.IsPrivileged() {
		return nil
	}
	return fmt.Errorf("%w: %s", order.ErrUnauthorizedActor, a)
}

func optionalID(field string, raw *openapi_types.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := toID(field, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
