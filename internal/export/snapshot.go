package export

import (
	"context"

	"github.com/Spok95/university-records-console/internal/models"
	"github.com/Spok95/university-records-console/internal/store"
	"github.com/Spok95/university-records-console/internal/syncer"
)

// Snapshot writes the current students and attendance state to one
// workbook at path. The timetable view is refreshed first, then
// attendance is collected per known subject through the schedule
// service. Any failed fetch aborts the snapshot; a partial workbook is
// never written.
func Snapshot(ctx context.Context, sched *syncer.Schedule, st *store.Records, ct *store.Catalog, path string) error {
	if _, err := sched.Fetch(ctx, syncer.GroupAll); err != nil {
		return err
	}
	var entries []models.AttendanceEntry
	for _, subj := range ct.Subjects() {
		part, err := sched.AttendanceBySubject(ctx, subj.ID)
		if err != nil {
			return err
		}
		entries = append(entries, part...)
	}

	f, err := Workbook([]SheetSpec{
		StudentsSheet(st),
		AttendanceSheet(entries, st, ct),
	})
	if err != nil {
		return err
	}
	return f.SaveAs(path)
}
