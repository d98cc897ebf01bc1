package models

import "strings"

type TimetableEntry struct {
	ID        int64   `json:"timetable_id"`
	FacultyID int64   `json:"faculty_id"`
	GroupID   int64   `json:"group_id"`
	SubjectID int64   `json:"subject_id"`
	Weekday   string  `json:"weekday"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Location  *string `json:"location"`
}

type AttendanceEntry struct {
	ID          int64  `json:"attendance_id"`
	Visited     bool   `json:"visited"`
	VisitDay    string `json:"visit_day"`
	StudentID   int64  `json:"student_id"`
	SubjectID   int64  `json:"subject_id"`
	TimetableID int64  `json:"timetable_id"`
}

// AttendanceRecord is the create payload for POST /attendance/subject;
// the id is server-assigned.
type AttendanceRecord struct {
	Visited     bool   `json:"visited"`
	VisitDay    string `json:"visit_day"`
	StudentID   int64  `json:"student_id"`
	SubjectID   int64  `json:"subject_id"`
	TimetableID int64  `json:"timetable_id"`
}

var weekdayOrder = map[string]int{
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
	"sunday":    7,
}

// WeekdayRank maps a weekday name to its Monday-first position.
// Unknown names sort after every real weekday.
func WeekdayRank(weekday string) int {
	if n, ok := weekdayOrder[strings.ToLower(strings.TrimSpace(weekday))]; ok {
		return n
	}
	return len(weekdayOrder) + 1
}
