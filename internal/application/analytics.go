package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
	"liveline/internal/ports/output"
)

// AnalyticsService aggregates a creator's already-fetched rows into the
// dashboard summary: ISO-week buckets, per-platform counts, revenue.
type AnalyticsService struct {
	eventRepo output.EventRepository
	rsvpRepo  output.RSVPRepository
}

func NewAnalyticsService(eventRepo output.EventRepository, rsvpRepo output.RSVPRepository) *AnalyticsService {
	return &AnalyticsService{
		eventRepo: eventRepo,
		rsvpRepo:  rsvpRepo,
	}
}

func (s *AnalyticsService) Summary(ctx context.Context, ownerID string, now time.Time) (*entities.AnalyticsSummary, error) {
	events, err := s.eventRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	summary := &entities.AnalyticsSummary{
		TotalEvents: len(events),
		PerPlatform: make(map[string]int),
	}
	weeks := make(map[[2]int]int)

	for i := range events {
		e := &events[i]
		if e.IsUpcoming(now) {
			summary.UpcomingEvents++
		} else {
			summary.PastEvents++
		}
		for _, b := range e.Platforms {
			summary.PerPlatform[b.PlatformID]++
		}
		year, week := e.ScheduledAt.ISOWeek()
		weeks[[2]int{year, week}]++

		confirmed, err := s.rsvpRepo.CountByEventIDAndStatus(ctx, e.ID, domain.StatusConfirmed)
		if err != nil {
			return nil, fmt.Errorf("count rsvps: %w", err)
		}
		summary.TotalRSVPs += confirmed
		if e.Monetization.IsPaid {
			cents, err := domain.ParsePriceCents(e.Monetization.Price)
			if err != nil {
				// Un prix illisible ne fait pas échouer tout le tableau.
				continue
			}
			summary.RevenueCents += cents * confirmed
		}
	}

	summary.PerWeek = make([]entities.WeekBucket, 0, len(weeks))
	for key, count := range weeks {
		summary.PerWeek = append(summary.PerWeek, entities.WeekBucket{
			Year:  key[0],
			Week:  key[1],
			Count: count,
		})
	}
	sort.Slice(summary.PerWeek, func(i, j int) bool {
		a, b := summary.PerWeek[i], summary.PerWeek[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Week < b.Week
	})
	return summary, nil
}
