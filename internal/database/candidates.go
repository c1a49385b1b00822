package repository

import (
	"context"
	"fmt"

	"github.com/dvconsultores/rhino-bot/bot/form"
	"github.com/dvconsultores/rhino-bot/bot/forms"
)

// ListCandidates backs the form engine's selection fields with live entity
// lists, so keyboards always offer what is actually in the store.
func (s *SQLite) ListCandidates(ctx context.Context, kind string) ([]form.Candidate, error) {
	switch kind {
	case forms.KindCoaches:
		coaches, err := s.ListCoaches(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]form.Candidate, len(coaches))
		for i, c := range coaches {
			out[i] = form.Candidate{ID: c.ID, Label: c.Names}
		}
		return out, nil

	case forms.KindLocations:
		locations, err := s.ListLocations(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]form.Candidate, len(locations))
		for i, l := range locations {
			out[i] = form.Candidate{ID: l.ID, Label: l.Location}
		}
		return out, nil

	case forms.KindPlans:
		plans, err := s.ListPlans(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]form.Candidate, len(plans))
		for i, p := range plans {
			out[i] = form.Candidate{ID: p.ID, Label: p.Name}
		}
		return out, nil

	case forms.KindPaymentMethods:
		methods, err := s.ListPaymentMethods(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]form.Candidate, len(methods))
		for i, m := range methods {
			out[i] = form.Candidate{ID: m.ID, Label: m.Method}
		}
		return out, nil

	case forms.KindSchedules:
		schedules, err := s.ListSchedules(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]form.Candidate, len(schedules))
		for i, sc := range schedules {
			out[i] = form.Candidate{
				ID:    sc.ID,
				Label: fmt.Sprintf("%s %s %s-%s", sc.LocationName, sc.Days, sc.TimeInit, sc.TimeEnd),
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown candidate kind: %s", kind)
}
