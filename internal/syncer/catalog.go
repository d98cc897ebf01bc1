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

// Catalog reloads subjects and professors, plus faculties into the
// records store: the subjects screen resolves faculty names too, and the
// faculties collection lives in one place.
type Catalog struct {
	client  *api.Client
	store   *store.Catalog
	records *store.Records
	log     *zap.Logger
}

func NewCatalog(client *api.Client, st *store.Catalog, records *store.Records, log *zap.Logger) *Catalog {
	return &Catalog{client: client, store: st, records: records, log: log}
}

func (c *Catalog) Reload(ctx context.Context) (err error) {
	defer func() { metrics.ObserveReload("catalog", err) }()

	var (
		subjects   []models.Subject
		professors []models.Professor
		faculties  []models.Faculty
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subjects, err = c.client.ListSubjects(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		professors, err = c.client.ListProfessors(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		faculties, err = c.client.ListFaculties(ctx)
		return err
	})
	if err = g.Wait(); err != nil {
		c.log.Warn("catalog reload failed", zap.Error(err))
		return err
	}

	c.store.SetSubjects(subjects)
	c.store.SetProfessors(professors)
	c.records.SetFaculties(faculties)
	c.log.Debug("catalog reloaded",
		zap.Int("subjects", len(subjects)),
		zap.Int("professors", len(professors)),
		zap.Int("faculties", len(faculties)))
	return nil
}
