package usecase

import (
	"context"
	"schoolhealth/domain"
	"time"
)

type eventUseCase struct {
	repo    domain.EventRepo
	TimeOut time.Duration
}

func NewEventUseCase(repo domain.EventRepo, to time.Duration) domain.EventUseCase {
	return &eventUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (eu *eventUseCase) ListEvents(ctx context.Context, campaignType string) (*[]domain.CampaignEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, eu.TimeOut)
	defer cancel()

	v, err := eu.repo.ListEvents(ctx, campaignType)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (eu *eventUseCase) GetEventDetail(ctx context.Context, campaignType string, key *domain.EventKey) (*domain.EventDetail, error) {
	v, err := eu.repo.GetEventDetail(ctx, campaignType, key)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (eu *eventUseCase) GetClassDetail(ctx context.Context, campaignType string, key *domain.EventKey, classID int) (*domain.EventClassDetail, error) {
	v, err := eu.repo.GetClassDetail(ctx, campaignType, key, classID)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (eu *eventUseCase) DeleteEvent(ctx context.Context, campaignType string, key *domain.EventKey) (*domain.EventDeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, eu.TimeOut)
	defer cancel()

	v, err := eu.repo.DeleteEvent(ctx, campaignType, key)
	if err != nil {
		return nil, err
	}
	return v, nil
}
