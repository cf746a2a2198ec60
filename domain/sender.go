package domain

import "context"

// SenderRepo dispatches parent notifications. Dispatch is best-effort and
// at-most-once: failures are logged by the caller and never retried.
type SenderRepo interface {
	NotifyCampaignItem(ctx context.Context, item *CampaignItem) error
	NotifyFollowUp(ctx context.Context, item *CampaignItem) error
}
