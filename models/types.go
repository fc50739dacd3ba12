package models

// Domain types

type Student struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Subject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Result is a single score. StudentName and SubjectName are only filled
// by queries that join the parent tables.
type Result struct {
	ID          int64   `json:"id"`
	StudentID   int64   `json:"student_id"`
	SubjectID   int64   `json:"subject_id"`
	Score       float64 `json:"score"`
	StudentName string  `json:"student_name,omitempty"`
	SubjectName string  `json:"subject_name,omitempty"`
}

// Statistics types

type StudentStats struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	AverageScore  float64 `json:"average_score"`
	SubjectsCount int     `json:"subjects_count"`
}

type SubjectStats struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	AverageScore float64 `json:"average_score"`
	StudentCount int     `json:"student_count"`
}

type OverallStats struct {
	AverageScore  float64 `json:"average_score"`
	HighestScore  float64 `json:"highest_score"`
	LowestScore   float64 `json:"lowest_score"`
	TotalStudents int     `json:"total_students"`
	TotalResults  int     `json:"total_results"`
}

type Dashboard struct {
	Students []StudentStats `json:"student_stats"`
	Subjects []SubjectStats `json:"subject_stats"`
	Overall  OverallStats   `json:"overall_stats"`
}

// Form types

// StudentForm carries the add/edit student page state.
type StudentForm struct {
	Student Student
	IsEdit  bool
	Error   string
}

type SubjectForm struct {
	Subject Subject
	IsEdit  bool
	Error   string
}

// ResultForm also carries the option lists for the student and subject
// selects. Score is the text shown in the score input, so a rejected
// submission keeps what the user typed.
type ResultForm struct {
	Result   Result
	Score    string
	Students []Student
	Subjects []Subject
	IsEdit   bool
	Error    string
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
