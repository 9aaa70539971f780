package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
	appErrors "github.com/Ralph-Dulla-23/CMS/pkg/errors"
)

// StatsService aggregates submission counts for the admin dashboard. It
// produces the numbers behind the charts; rendering stays with the UI.
type StatsService struct {
	forms  formReader
	logger *zap.Logger
}

// NewStatsService constructs the service.
func NewStatsService(forms formReader, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{forms: forms, logger: logger}
}

// MonthCount is a per-month session tally keyed by YYYY-MM.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// StatsSummary is the dashboard aggregate.
type StatsSummary struct {
	Total    int            `json:"total"`
	Undated  int            `json:"undated"`
	ByStatus map[string]int `json:"byStatus"`
	ByLabel  map[string]int `json:"byLabel"`
	PerMonth []MonthCount   `json:"perMonth"`
}

// Summary tallies forms by status, label, and effective month. Forms without
// a usable timestamp count toward Total and Undated only.
func (s *StatsService) Summary(ctx context.Context) (*StatsSummary, error) {
	forms, err := s.forms.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to fetch interview forms")
	}

	summary := &StatsSummary{
		Total:    len(forms),
		ByStatus: make(map[string]int),
		ByLabel:  make(map[string]int),
	}
	perMonth := make(map[string]int)

	for _, form := range forms {
		status := form.Status
		if status == "" {
			status = models.StatusPending
		}
		summary.ByStatus[status]++

		day, ok := ResolveSessionDate(form)
		if !ok {
			summary.Undated++
			continue
		}
		summary.ByLabel[SessionLabel(form, day)]++
		perMonth[fmt.Sprintf("%04d-%02d", day.Year, int(day.Month))]++
	}

	months := make([]string, 0, len(perMonth))
	for m := range perMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		summary.PerMonth = append(summary.PerMonth, MonthCount{Month: m, Count: perMonth[m]})
	}

	return summary, nil
}
