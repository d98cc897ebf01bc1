package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Spok95/university-records-console/internal/models"
)

// Typed calls over the verb primitives. Paths match the backend exactly;
// note the backend's mixed plural/singular convention (POST /groups but
// POST /subject, DELETE /student/{id} but DELETE /groups/{id}).

func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	return getList[models.Student](ctx, c, "/students")
}

func (c *Client) CreateStudent(ctx context.Context, s models.Student) (json.RawMessage, error) {
	return c.Post(ctx, "/students", s)
}

func (c *Client) UpdateStudent(ctx context.Context, s models.Student) (json.RawMessage, error) {
	return c.Put(ctx, fmt.Sprintf("/student/%d", s.ID), s)
}

func (c *Client) DeleteStudent(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.Delete(ctx, fmt.Sprintf("/student/%d", id))
}

func (c *Client) ListGroups(ctx context.Context) ([]models.Group, error) {
	return getList[models.Group](ctx, c, "/groups")
}

func (c *Client) CreateGroup(ctx context.Context, g models.Group) (json.RawMessage, error) {
	return c.Post(ctx, "/groups", g)
}

func (c *Client) UpdateGroup(ctx context.Context, g models.Group) (json.RawMessage, error) {
	return c.Put(ctx, fmt.Sprintf("/groups/%d", g.ID), g)
}

func (c *Client) DeleteGroup(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.Delete(ctx, fmt.Sprintf("/groups/%d", id))
}

func (c *Client) ListFaculties(ctx context.Context) ([]models.Faculty, error) {
	return getList[models.Faculty](ctx, c, "/faculties")
}

func (c *Client) CreateFaculty(ctx context.Context, f models.Faculty) (json.RawMessage, error) {
	return c.Post(ctx, "/faculties", f)
}

func (c *Client) UpdateFaculty(ctx context.Context, f models.Faculty) (json.RawMessage, error) {
	return c.Put(ctx, fmt.Sprintf("/faculties/%d", f.ID), f)
}

func (c *Client) DeleteFaculty(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.Delete(ctx, fmt.Sprintf("/faculties/%d", id))
}

func (c *Client) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return getList[models.Subject](ctx, c, "/subjects")
}

func (c *Client) CreateSubject(ctx context.Context, s models.Subject) (json.RawMessage, error) {
	return c.Post(ctx, "/subject", s)
}

func (c *Client) UpdateSubject(ctx context.Context, s models.Subject) (json.RawMessage, error) {
	return c.Put(ctx, fmt.Sprintf("/subject/%d", s.ID), s)
}

func (c *Client) DeleteSubject(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.Delete(ctx, fmt.Sprintf("/subject/%d", id))
}

func (c *Client) ListProfessors(ctx context.Context) ([]models.Professor, error) {
	return getList[models.Professor](ctx, c, "/professors")
}

func (c *Client) CreateProfessor(ctx context.Context, p models.Professor) (json.RawMessage, error) {
	return c.Post(ctx, "/professor", p)
}

func (c *Client) UpdateProfessor(ctx context.Context, p models.Professor) (json.RawMessage, error) {
	return c.Put(ctx, fmt.Sprintf("/professor/%d", p.ID), p)
}

func (c *Client) DeleteProfessor(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.Delete(ctx, fmt.Sprintf("/professor/%d", id))
}

func (c *Client) AllClassSchedule(ctx context.Context) ([]models.TimetableEntry, error) {
	return getList[models.TimetableEntry](ctx, c, "/all_class_schedule")
}

func (c *Client) ScheduleForGroup(ctx context.Context, groupID int64) ([]models.TimetableEntry, error) {
	return getList[models.TimetableEntry](ctx, c, fmt.Sprintf("/schedule/group/%d", groupID))
}

func (c *Client) AttendanceBySubject(ctx context.Context, subjectID int64) ([]models.AttendanceEntry, error) {
	return getList[models.AttendanceEntry](ctx, c, fmt.Sprintf("/attendanceBySubjectId/%d", subjectID))
}

func (c *Client) AttendanceByStudent(ctx context.Context, studentID int64) ([]models.AttendanceEntry, error) {
	return getList[models.AttendanceEntry](ctx, c, fmt.Sprintf("/attendanceByStudentId/%d", studentID))
}

func (c *Client) RecordAttendance(ctx context.Context, e models.AttendanceRecord) (json.RawMessage, error) {
	return c.Post(ctx, "/attendance/subject", e)
}

// getList fetches a collection. A null, empty, or absent body is an empty
// collection, never an error.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	raw, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return DecodeList[T](raw)
}

// DecodeList decodes a JSON array, mapping null/empty to []T{}.
func DecodeList[T any](raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
