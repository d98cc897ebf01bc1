package models

type Subject struct {
	ID          int64  `json:"subject_id"`
	Name        string `json:"subject_name"`
	FacultyID   int64  `json:"faculty_id"`
	ProfessorID int64  `json:"professor_id"`
}

type Professor struct {
	ID        int64  `json:"professor_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	FacultyID int64  `json:"faculty_id"`
}
