package repository

import (
	"context"
	"fmt"
	"schoolhealth/domain"
	"sort"

	"gorm.io/gorm"
)

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(database *gorm.DB) domain.EventRepo {
	return &eventRepository{
		db: database,
	}
}

func (er *eventRepository) ListEvents(ctx context.Context, campaignType string) (*[]domain.CampaignEvent, error) {
	items, err := er.fetchGroupableItems(ctx, campaignType, nil)
	if err != nil {
		return nil, err
	}

	events := buildEvents(items)
	return &events, nil
}

func (er *eventRepository) GetEventDetail(ctx context.Context, campaignType string, key *domain.EventKey) (*domain.EventDetail, error) {
	items, err := er.fetchGroupableItems(ctx, campaignType, key)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("event %q on %s: %w", key.Title, key.ScheduledDate, domain.ErrNotFound)
	}

	detail := buildEventDetail(items)
	return detail, nil
}

func (er *eventRepository) GetClassDetail(ctx context.Context, campaignType string, key *domain.EventKey, classID int) (*domain.EventClassDetail, error) {
	items, err := er.fetchGroupableItems(ctx, campaignType, key)
	if err != nil {
		return nil, err
	}

	detail := buildClassDetail(items, classID)
	if detail == nil {
		return nil, fmt.Errorf("class %d in event %q: %w", classID, key.Title, domain.ErrNotFound)
	}

	return detail, nil
}

func (er *eventRepository) DeleteEvent(ctx context.Context, campaignType string, key *domain.EventKey) (*domain.EventDeleteResult, error) {
	// Deletion covers every item matching the key, individually targeted
	// ones included.
	var ids []int
	err := er.db.WithContext(ctx).
		Model(&domain.CampaignItem{}).
		Where("campaign_type = ? AND title = ? AND scheduled_date = ? AND scheduled_time = ? AND location = ?",
			campaignType, key.Title, key.ScheduledDate, key.ScheduledTime, key.Location).
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve event items: %w", err)
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("event %q on %s: %w", key.Title, key.ScheduledDate, domain.ErrNotFound)
	}

	result := &domain.EventDeleteResult{Requested: len(ids)}

	// Independent single-item deletes; there is no rollback of prior
	// deletions when one fails.
	for _, id := range ids {
		if err := er.db.WithContext(ctx).Delete(&domain.CampaignItem{}, "item_id = ?", id).Error; err != nil {
			result.Failed = append(result.Failed, fmt.Sprintf("item %d: %v", id, err))
			continue
		}
		result.Deleted++
	}

	return result, nil
}

func (er *eventRepository) fetchGroupableItems(ctx context.Context, campaignType string, key *domain.EventKey) ([]domain.CampaignItem, error) {
	query := er.db.WithContext(ctx).
		Preload("Student").
		Preload("Student.Class").
		Preload("Student.Parent").
		Where("campaign_type = ? AND grade_level IS NOT NULL", campaignType)

	if key != nil {
		query = query.Where("title = ? AND scheduled_date = ? AND scheduled_time = ? AND location = ?",
			key.Title, key.ScheduledDate, key.ScheduledTime, key.Location)
	}

	var items []domain.CampaignItem
	if err := query.Order("scheduled_date DESC, title ASC, item_id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve campaign items: %w", err)
	}

	return items, nil
}

// buildEvents folds flat per-student items into derived events. Items are
// grouped by EventKey; per-class roll-ups follow each item's student->class
// reference.
func buildEvents(items []domain.CampaignItem) []domain.CampaignEvent {
	order := []domain.EventKey{}
	grouped := map[domain.EventKey][]domain.CampaignItem{}

	for i := range items {
		key := domain.KeyForItem(&items[i])
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], items[i])
	}

	events := make([]domain.CampaignEvent, 0, len(order))
	for _, key := range order {
		events = append(events, summarizeEvent(key, grouped[key]))
	}

	// Query order already leads with date, but map grouping must stay
	// deterministic regardless of how items interleave.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].ScheduledDate != events[j].ScheduledDate {
			return events[i].ScheduledDate > events[j].ScheduledDate
		}
		return events[i].Title < events[j].Title
	})

	return events
}

func summarizeEvent(key domain.EventKey, items []domain.CampaignItem) domain.CampaignEvent {
	event := domain.CampaignEvent{
		EventID:       key.EventID(),
		CampaignType:  items[0].CampaignType,
		Title:         key.Title,
		Description:   items[0].Description,
		ScheduledDate: key.ScheduledDate,
		ScheduledTime: key.ScheduledTime,
		Location:      key.Location,
		Doctor:        items[0].Doctor,
	}

	grades := map[int]struct{}{}
	classes := map[int]*domain.EventClassSummary{}

	for i := range items {
		item := &items[i]
		event.TotalStudents++
		event.Counts.Add(item.Status)

		if item.GradeLevel != nil {
			grades[*item.GradeLevel] = struct{}{}
		}

		class, ok := classes[item.Student.ClassID]
		if !ok {
			class = &domain.EventClassSummary{
				ClassID:   item.Student.ClassID,
				ClassName: item.Student.Class.Name,
				Grade:     item.Student.Class.Grade,
			}
			classes[item.Student.ClassID] = class
		}
		class.TotalStudents++
		class.Counts.Add(item.Status)
	}

	for grade := range grades {
		event.GradeLevels = append(event.GradeLevels, grade)
	}
	sort.Ints(event.GradeLevels)

	for _, class := range classes {
		event.Classes = append(event.Classes, *class)
	}
	sort.Slice(event.Classes, func(i, j int) bool {
		return event.Classes[i].ClassName < event.Classes[j].ClassName
	})

	return event
}

func buildEventDetail(items []domain.CampaignItem) *domain.EventDetail {
	key := domain.KeyForItem(&items[0])
	detail := &domain.EventDetail{
		Event: summarizeEvent(key, items),
	}

	byClass := map[int][]domain.CampaignItem{}
	for i := range items {
		byClass[items[i].Student.ClassID] = append(byClass[items[i].Student.ClassID], items[i])
	}

	for _, summary := range detail.Event.Classes {
		detail.Classes = append(detail.Classes, domain.EventClassGroup{
			EventClassSummary: summary,
			Students:          byClass[summary.ClassID],
		})
	}

	return detail
}

func buildClassDetail(items []domain.CampaignItem, classID int) *domain.EventClassDetail {
	var detail *domain.EventClassDetail

	for i := range items {
		item := &items[i]
		if item.Student.ClassID != classID {
			continue
		}

		if detail == nil {
			detail = &domain.EventClassDetail{
				EventID:   domain.KeyForItem(item).EventID(),
				ClassID:   classID,
				ClassName: item.Student.Class.Name,
				Grade:     item.Student.Class.Grade,
			}
		}

		detail.Counts.Add(item.Status)
		detail.Students = append(detail.Students, *item)
	}

	return detail
}
