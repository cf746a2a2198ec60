package usecase

import (
	"context"
	"schoolhealth/domain"
	"time"
)

type campaignUseCase struct {
	repo    domain.CampaignRepo
	TimeOut time.Duration
}

func NewCampaignUseCase(repo domain.CampaignRepo, to time.Duration) domain.CampaignUseCase {
	return &campaignUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (cu *campaignUseCase) CreateIndividualCampaign(ctx context.Context, desc *domain.CampaignDescriptor, studentID int) (*domain.CampaignItem, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	v, err := cu.repo.CreateIndividualCampaign(ctx, desc, studentID)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (cu *campaignUseCase) CreateGradeCampaign(ctx context.Context, desc *domain.CampaignDescriptor, gradeLevels []int) (*domain.CampaignSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	v, err := cu.repo.CreateGradeCampaign(ctx, desc, gradeLevels)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (cu *campaignUseCase) GetItemsByStudent(ctx context.Context, campaignType string, studentID int) (*[]domain.CampaignItem, error) {
	v, err := cu.repo.GetItemsByStudent(ctx, campaignType, studentID)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (cu *campaignUseCase) RespondToItem(ctx context.Context, campaignType string, studentID, itemID int, decision, notes, rejectionReason string) (*domain.CampaignItem, error) {
	v, err := cu.repo.RespondToItem(ctx, campaignType, studentID, itemID, decision, notes, rejectionReason)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (cu *campaignUseCase) RecordResult(ctx context.Context, campaignType string, itemID int, payload *domain.ResultPayload) (*domain.CampaignItem, error) {
	v, err := cu.repo.RecordResult(ctx, campaignType, itemID, payload)
	if err != nil {
		return nil, err
	}
	return v, nil
}
