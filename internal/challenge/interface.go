package challenge

import (
	"context"

	"challenge-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id int64) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error

	// Participation
	Participate(ctx context.Context, sc model.Scope, id int64) (ParticipateOutput, error)
	Leave(ctx context.Context, sc model.Scope, id int64) (ParticipateOutput, error)

	// ChangeStatus moves a challenge along its lifecycle. Author or ADMIN only.
	ChangeStatus(ctx context.Context, sc model.Scope, input ChangeStatusInput) (ChangeStatusOutput, error)
}
