package models

type Student struct {
	ID        int64  `json:"student_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Gender    string `json:"gender"` // "M" | "F"
	BirthDate string `json:"birth_date"`
	GroupID   int64  `json:"group_id"`
}

type Group struct {
	ID        int64  `json:"group_id"`
	FacultyID int64  `json:"faculty_id"`
	Name      string `json:"group_name"`
}

type Faculty struct {
	ID   int64  `json:"faculty_id"`
	Name string `json:"faculty_name"`
}
