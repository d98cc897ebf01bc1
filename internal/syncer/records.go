// Package syncer re-fetches each domain's authoritative collections and
// replaces local store state wholesale. Reloads are all-or-nothing: the
// fetches run concurrently, results are staged, and nothing is written
// unless every fetch succeeded.
package syncer

import (
	"context"

	"github.com/Spok95/university-records-console/internal/api"
	"github.com/Spok95/university-records-console/internal/metrics"
	"github.com/Spok95/university-records-console/internal/models"
	"github.com/Spok95/university-records-console/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Records reloads students, groups and faculties after every mutation on
// those screens.
type Records struct {
	client *api.Client
	store  *store.Records
	log    *zap.Logger
}

func NewRecords(client *api.Client, st *store.Records, log *zap.Logger) *Records {
	return &Records{client: client, store: st, log: log}
}

// Reload fetches the three collections concurrently. On any failure the
// first error is returned and no collection is touched. Overlapping
// reloads are not deduplicated; the later completion wins.
func (r *Records) Reload(ctx context.Context) (err error) {
	defer func() { metrics.ObserveReload("records", err) }()

	var (
		students  []models.Student
		groups    []models.Group
		faculties []models.Faculty
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		students, err = r.client.ListStudents(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		groups, err = r.client.ListGroups(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		faculties, err = r.client.ListFaculties(ctx)
		return err
	})
	if err = g.Wait(); err != nil {
		r.log.Warn("records reload failed", zap.Error(err))
		return err
	}

	r.store.SetStudents(students)
	r.store.SetGroups(groups)
	r.store.SetFaculties(faculties)
	r.log.Debug("records reloaded",
		zap.Int("students", len(students)),
		zap.Int("groups", len(groups)),
		zap.Int("faculties", len(faculties)))
	return nil
}
