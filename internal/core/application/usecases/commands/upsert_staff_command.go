package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpsertStaffCommandIsNotConstructed = errors.New(
	"UpsertStaffCommand must be created via NewUpsertStaffCommand constructor",
)

// UpsertStaffCommand registers a staff member or changes their role. The
// application seeds the directory with it at startup.
type UpsertStaffCommand struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewUpsertStaffCommand(username, role string) (UpsertStaffCommand, error) {
	r, err := kernel.ParseRole(role)
	if err != nil {
		return UpsertStaffCommand{}, err
	}
	actor, err := kernel.NewActor(username, r)
	if err != nil {
		return UpsertStaffCommand{}, err
	}
	return UpsertStaffCommand{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c UpsertStaffCommand) Validate() error {
	return c.guard.Validate(ErrUpsertStaffCommandIsNotConstructed)
}

func (c UpsertStaffCommand) Actor() kernel.Actor {
	return c.actor
}

type UpsertStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewUpsertStaffCommandHandler(uowFactory StaffUoWFactory) UpsertStaffCommandHandler {
	return UpsertStaffCommandHandler{uowFactory: uowFactory}
}

func (h UpsertStaffCommandHandler) Handle(ctx context.Context, command UpsertStaffCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.StaffDirectory().Upsert(ctx, command.Actor()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
