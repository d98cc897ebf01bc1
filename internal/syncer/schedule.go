package syncer

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/Spok95/university-records-console/internal/api"
	"github.com/Spok95/university-records-console/internal/models"
	"go.uber.org/zap"
)

// GroupAll selects the whole timetable instead of a single group's.
const GroupAll = "all"

// Schedule serves the timetable and attendance screen: fetch a schedule
// slice (all groups or one), look up attendance, record a visit.
type Schedule struct {
	client *api.Client
	log    *zap.Logger

	mu      sync.Mutex
	entries []models.TimetableEntry
}

func NewSchedule(client *api.Client, log *zap.Logger) *Schedule {
	return &Schedule{client: client, log: log}
}

// Fetch replaces the displayed entries. groupID is either GroupAll or a
// decimal group id, matching the screen's filter dropdown. Entries come
// back sorted by weekday (Monday first) then start time.
func (s *Schedule) Fetch(ctx context.Context, groupID string) ([]models.TimetableEntry, error) {
	var (
		entries []models.TimetableEntry
		err     error
	)
	if groupID == GroupAll {
		entries, err = s.client.AllClassSchedule(ctx)
	} else {
		var id int64
		id, err = strconv.ParseInt(groupID, 10, 64)
		if err != nil {
			return nil, err
		}
		entries, err = s.client.ScheduleForGroup(ctx, id)
	}
	if err != nil {
		s.log.Warn("schedule fetch failed", zap.String("group", groupID), zap.Error(err))
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := models.WeekdayRank(entries[i].Weekday), models.WeekdayRank(entries[j].Weekday)
		if ri != rj {
			return ri < rj
		}
		return entries[i].StartTime < entries[j].StartTime
	})

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	return append([]models.TimetableEntry(nil), entries...), nil
}

// Entries returns the last fetched schedule slice.
func (s *Schedule) Entries() []models.TimetableEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.TimetableEntry(nil), s.entries...)
}

func (s *Schedule) AttendanceBySubject(ctx context.Context, subjectID int64) ([]models.AttendanceEntry, error) {
	return s.client.AttendanceBySubject(ctx, subjectID)
}

func (s *Schedule) AttendanceByStudent(ctx context.Context, studentID int64) ([]models.AttendanceEntry, error) {
	return s.client.AttendanceByStudent(ctx, studentID)
}

// Record posts one attendance mark, then re-fetches the by-subject view
// so the caller shows what the backend actually stored.
func (s *Schedule) Record(ctx context.Context, rec models.AttendanceRecord) ([]models.AttendanceEntry, error) {
	if _, err := s.client.RecordAttendance(ctx, rec); err != nil {
		return nil, err
	}
	return s.client.AttendanceBySubject(ctx, rec.SubjectID)
}
