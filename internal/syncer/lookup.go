package syncer

import (
	"github.com/Spok95/university-records-console/internal/store"
)

// Unknown is rendered whenever a foreign key fails to resolve. A dangling
// reference is a display concern here, never an error.
const Unknown = "Unknown"

func GroupName(st *store.Records, id int64) string {
	for _, g := range st.Groups() {
		if g.ID == id {
			return g.Name
		}
	}
	return Unknown
}

func FacultyName(st *store.Records, id int64) string {
	for _, f := range st.Faculties() {
		if f.ID == id {
			return f.Name
		}
	}
	return Unknown
}

func StudentName(st *store.Records, id int64) string {
	for _, s := range st.Students() {
		if s.ID == id {
			return s.FirstName + " " + s.LastName
		}
	}
	return Unknown
}

func SubjectName(ct *store.Catalog, id int64) string {
	for _, s := range ct.Subjects() {
		if s.ID == id {
			return s.Name
		}
	}
	return Unknown
}

func ProfessorName(ct *store.Catalog, id int64) string {
	for _, p := range ct.Professors() {
		if p.ID == id {
			return p.FirstName + " " + p.LastName
		}
	}
	return Unknown
}
