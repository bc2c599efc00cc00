package memory

import (
	"context"
	"slices"
	"time"

	"pet-care-companion/internal/domain/reports"
)

type reportRepo struct {
	c *collection[reports.Report]
}

func NewReportRepo() reports.Repository {
	return &reportRepo{
		c: newCollection(
			func(r reports.Report) string { return r.ID },
			func(r reports.Report) reports.Report {
				r.Images = slices.Clone(r.Images)
				r.Tags = slices.Clone(r.Tags)
				if r.FoundAt != nil {
					t := *r.FoundAt
					r.FoundAt = &t
				}
				return r
			},
		),
	}
}

func (r *reportRepo) Create(ctx context.Context, rep reports.Report) error {
	return r.c.add(rep)
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (reports.Report, error) {
	rep, ok := r.c.get(id)
	if !ok {
		return reports.Report{}, reports.ErrNotFound
	}
	return rep, nil
}

func (r *reportRepo) List(ctx context.Context) ([]reports.Report, error) {
	return r.c.all(), nil
}

func (r *reportRepo) SetStatus(ctx context.Context, id string, status reports.Status, at time.Time) (reports.Report, error) {
	rep, ok := r.c.update(id, func(rep *reports.Report) {
		rep.Status = status
		rep.UpdatedAt = at
		if status == reports.StatusFound {
			found := at
			rep.FoundAt = &found
		}
	})
	if !ok {
		return reports.Report{}, reports.ErrNotFound
	}
	return rep, nil
}
