package dto

import "github.com/noah-isme/simak-go-api/internal/models"

// StudentForm carries the fields submitted when creating or editing a record.
// Field names match the original form fields; validations run in declaration
// order so the first failing field decides the rejection reason.
type StudentForm struct {
	NIM        string `form:"nim" json:"nim" validate:"required,studentid"`
	Name       string `form:"nama" json:"nama" validate:"required,alpha_space"`
	Class      string `form:"kelas" json:"kelas" validate:"required,alphanum"`
	GPA        string `form:"ipk" json:"ipk" validate:"required,numeric,gpa_range"`
	Department string `form:"jurusan" json:"jurusan" validate:"required,department"`
}

// StudentResponse is the API representation of a stored student record.
type StudentResponse struct {
	NIM        string  `json:"nim"`
	Name       string  `json:"nama"`
	Class      string  `json:"kelas"`
	GPA        float64 `json:"ipk"`
	Department string  `json:"jurusan"`
}

// NewStudentResponse maps a stored record to its API representation.
func NewStudentResponse(student models.Student) StudentResponse {
	return StudentResponse{
		NIM:        student.NIM,
		Name:       student.Name,
		Class:      student.Class,
		GPA:        student.GPA,
		Department: student.Department,
	}
}

// StudentListRequest carries the filter, search and sort parameters of the
// record listing view.
type StudentListRequest struct {
	Query      string
	Department string
	Method     string
	SortAlg    string
	SortField  string
	Order      string
}

// StudentListResponse bundles the resulting records with the complexity note
// describing which search and sort cost classes were exercised.
type StudentListResponse struct {
	Items          []StudentResponse `json:"items"`
	Departments    []string          `json:"jurusan_list"`
	ComplexityNote string            `json:"complexity_note"`
}
