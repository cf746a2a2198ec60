package usecase

import (
	"context"
	"schoolhealth/domain"
)

type notificationUseCase struct {
	repo domain.NotificationRepo
}

func NewNotificationUseCase(repo domain.NotificationRepo) domain.NotificationUseCase {
	return &notificationUseCase{
		repo: repo,
	}
}

func (nu *notificationUseCase) GetAllNotification(ctx context.Context) (*[]domain.CampaignNotification, error) {
	v, err := nu.repo.GetAllNotification(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (nu *notificationUseCase) GetNotificationByParent(ctx context.Context, parentID int) (*[]domain.CampaignNotification, error) {
	v, err := nu.repo.GetNotificationByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (nu *notificationUseCase) MarkNotificationRead(ctx context.Context, notificationID int) error {
	err := nu.repo.MarkNotificationRead(ctx, notificationID)
	if err != nil {
		return err
	}
	return nil
}
