package export

import (
	"strconv"

	"github.com/Spok95/university-records-console/internal/models"
	"github.com/Spok95/university-records-console/internal/store"
	"github.com/Spok95/university-records-console/internal/syncer"
)

// StudentsSheet lays out the students table the way the console renders
// it: group and faculty resolved to names, "Unknown" on a dangling FK.
func StudentsSheet(st *store.Records) SheetSpec {
	students := st.Students()
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		facultyName := syncer.Unknown
		for _, g := range st.Groups() {
			if g.ID == s.GroupID {
				facultyName = syncer.FacultyName(st, g.FacultyID)
				break
			}
		}
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.FirstName,
			s.LastName,
			s.Email,
			s.Gender,
			s.BirthDate,
			syncer.GroupName(st, s.GroupID),
			facultyName,
		})
	}
	return SheetSpec{
		Title:  "Students",
		Header: []string{"ID", "First name", "Last name", "Email", "Gender", "Birth date", "Group", "Faculty"},
		Rows:   rows,
	}
}

// AttendanceSheet lays out attendance entries with student and subject
// names resolved.
func AttendanceSheet(entries []models.AttendanceEntry, st *store.Records, ct *store.Catalog) SheetSpec {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		visited := "no"
		if e.Visited {
			visited = "yes"
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.VisitDay,
			syncer.StudentName(st, e.StudentID),
			syncer.SubjectName(ct, e.SubjectID),
			visited,
		})
	}
	return SheetSpec{
		Title:  "Attendance",
		Header: []string{"ID", "Date", "Student", "Subject", "Visited"},
		Rows:   rows,
	}
}
