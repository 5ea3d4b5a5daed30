package models

// Departments enumerates the seven study programmes a student can belong to.
var Departments = []string{
	"Teknik Informatika",
	"Manajemen",
	"Hukum",
	"Sastra Inggris",
	"PJOK",
	"PGSD",
	"Ilmu Komunikasi",
}

// ValidDepartment reports whether name is one of the known departments.
func ValidDepartment(name string) bool {
	for _, department := range Departments {
		if department == name {
			return true
		}
	}
	return false
}

// Student is a single student record identified by its 12 digit NIM.
// The JSON field names match the persisted document format.
type Student struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	NIM        string  `gorm:"size:12;uniqueIndex;not null" json:"nim"`
	Name       string  `gorm:"size:255;not null" json:"nama"`
	Class      string  `gorm:"size:32;not null" json:"kelas"`
	GPA        float64 `gorm:"not null" json:"ipk"`
	Department string  `gorm:"size:64;not null" json:"jurusan"`
}
