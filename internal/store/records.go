package store

import (
	"sync"

	"github.com/Spok95/university-records-console/internal/models"
)

// Records owns the students, groups and faculties collections. Every
// mutator runs under one lock and notifies subscribers after the write.
type Records struct {
	mu        sync.Mutex
	students  collection[models.Student]
	groups    collection[models.Group]
	faculties collection[models.Faculty]
	subs      subscribers
}

func NewRecords() *Records {
	return &Records{
		students:  collection[models.Student]{idOf: func(s models.Student) int64 { return s.ID }},
		groups:    collection[models.Group]{idOf: func(g models.Group) int64 { return g.ID }},
		faculties: collection[models.Faculty]{idOf: func(f models.Faculty) int64 { return f.ID }},
	}
}

// Subscribe registers fn to run after every mutation and returns the
// unsubscribe func.
func (r *Records) Subscribe(fn func()) func() {
	return r.subs.add(fn)
}

func (r *Records) Students() []models.Student {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.students.snapshot()
}

func (r *Records) Groups() []models.Group {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.groups.snapshot()
}

func (r *Records) Faculties() []models.Faculty {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.faculties.snapshot()
}

func (r *Records) SetStudents(students []models.Student) {
	r.mutate(func() { r.students.set(students) })
}

func (r *Records) AddStudent(s models.Student) {
	r.mutate(func() { r.students.add(s) })
}

func (r *Records) UpdateStudent(s models.Student) {
	r.mutate(func() { r.students.update(s) })
}

func (r *Records) DeleteStudent(id int64) {
	r.mutate(func() { r.students.delete(id) })
}

func (r *Records) SetGroups(groups []models.Group) {
	r.mutate(func() { r.groups.set(groups) })
}

func (r *Records) AddGroup(g models.Group) {
	r.mutate(func() { r.groups.add(g) })
}

func (r *Records) UpdateGroup(g models.Group) {
	r.mutate(func() { r.groups.update(g) })
}

func (r *Records) DeleteGroup(id int64) {
	r.mutate(func() { r.groups.delete(id) })
}

func (r *Records) SetFaculties(faculties []models.Faculty) {
	r.mutate(func() { r.faculties.set(faculties) })
}

func (r *Records) AddFaculty(f models.Faculty) {
	r.mutate(func() { r.faculties.add(f) })
}

func (r *Records) UpdateFaculty(f models.Faculty) {
	r.mutate(func() { r.faculties.update(f) })
}

func (r *Records) DeleteFaculty(id int64) {
	r.mutate(func() { r.faculties.delete(id) })
}

func (r *Records) mutate(fn func()) {
	r.mu.Lock()
	fn()
	fns := r.subs.listeners()
	r.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
