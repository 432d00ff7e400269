package app

import "context"

type AssessUseCase interface {
	Assess(ctx context.Context, req AssessRequest) (*AssessResponse, error)
}

type OutcomeUseCase interface {
	RecordOutcome(ctx context.Context, req OutcomeRequest) error
}

type StatusUseCase interface {
	GetStatus(ctx context.Context) (*StatusResponse, error)
}
