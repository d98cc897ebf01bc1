package store

import (
	"sync"

	"github.com/Spok95/university-records-console/internal/models"
)

// Catalog owns the subjects and professors collections.
type Catalog struct {
	mu         sync.Mutex
	subjects   collection[models.Subject]
	professors collection[models.Professor]
	subs       subscribers
}

func NewCatalog() *Catalog {
	return &Catalog{
		subjects:   collection[models.Subject]{idOf: func(s models.Subject) int64 { return s.ID }},
		professors: collection[models.Professor]{idOf: func(p models.Professor) int64 { return p.ID }},
	}
}

func (c *Catalog) Subscribe(fn func()) func() {
	return c.subs.add(fn)
}

func (c *Catalog) Subjects() []models.Subject {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subjects.snapshot()
}

func (c *Catalog) Professors() []models.Professor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.professors.snapshot()
}

func (c *Catalog) SetSubjects(subjects []models.Subject) {
	c.mutate(func() { c.subjects.set(subjects) })
}

func (c *Catalog) AddSubject(s models.Subject) {
	c.mutate(func() { c.subjects.add(s) })
}

func (c *Catalog) UpdateSubject(s models.Subject) {
	c.mutate(func() { c.subjects.update(s) })
}

func (c *Catalog) DeleteSubject(id int64) {
	c.mutate(func() { c.subjects.delete(id) })
}

func (c *Catalog) SetProfessors(professors []models.Professor) {
	c.mutate(func() { c.professors.set(professors) })
}

func (c *Catalog) AddProfessor(p models.Professor) {
	c.mutate(func() { c.professors.add(p) })
}

func (c *Catalog) UpdateProfessor(p models.Professor) {
	c.mutate(func() { c.professors.update(p) })
}

func (c *Catalog) DeleteProfessor(id int64) {
	c.mutate(func() { c.professors.delete(id) })
}

func (c *Catalog) mutate(fn func()) {
	c.mu.Lock()
	fn()
	fns := c.subs.listeners()
	c.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
