package services

import (
	"context"
	"math"
	"sort"

	"permit-workflow/backend/internal/repository"
	"permit-workflow/backend/pkg/models"
)

// recentActivityWindow is the number of most recent workflows reported in an
// analytics snapshot.
const recentActivityWindow = 10

// popularDomainsLimit caps the popular-domains ranking.
const popularDomainsLimit = 5

// AnalyticsService computes aggregate statistics over the workflow store.
type AnalyticsService struct {
	store repository.WorkflowStore
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store repository.WorkflowStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// Compute builds an analytics snapshot over the current store contents. When
// domainFilter is non-empty only workflows recorded for that domain are
// considered.
func (s *AnalyticsService) Compute(ctx context.Context, domainFilter string) (*models.Analytics, error) {
	var (
		workflows []models.Workflow
		err       error
	)
	if domainFilter != "" {
		workflows, err = s.store.FilterByDomain(ctx, domainFilter)
	} else {
		workflows, err = s.store.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	total := len(workflows)

	// Count per-domain occurrences, remembering first-appearance order so
	// the ranking below breaks count ties deterministically.
	counts := make(map[string]int)
	order := make([]string, 0)
	totalSteps := 0
	for _, workflow := range workflows {
		domain := workflow.Domain()
		if _, seen := counts[domain]; !seen {
			order = append(order, domain)
		}
		counts[domain]++
		totalSteps += workflow.StepCount()
	}

	avgSteps := 0.0
	if total > 0 {
		avgSteps = math.Round(float64(totalSteps)/float64(total)*10) / 10
	}

	popular := make([]models.DomainCount, 0, len(order))
	for _, domain := range order {
		popular = append(popular, models.DomainCount{Domain: domain, Count: counts[domain]})
	}
	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].Count > popular[j].Count
	})
	if len(popular) > popularDomainsLimit {
		popular = popular[:popularDomainsLimit]
	}

	start := 0
	if total > recentActivityWindow {
		start = total - recentActivityWindow
	}
	recent := make([]models.ActivityEntry, 0, total-start)
	for _, workflow := range workflows[start:] {
		recent = append(recent, models.ActivityEntry{
			Name:      workflow.Name(),
			Domain:    workflow.Domain(),
			Steps:     workflow.StepCount(),
			CreatedAt: workflow.SavedAt(),
		})
	}

	return &models.Analytics{
		TotalWorkflows: total,
		UniqueDomains:  len(counts),
		AvgSteps:       avgSteps,
		PopularDomains: popular,
		RecentActivity: recent,
	}, nil
}
