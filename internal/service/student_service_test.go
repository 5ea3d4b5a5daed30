package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/simak-go-api/internal/dto"
	"github.com/noah-isme/simak-go-api/internal/models"
)

func validForm() dto.StudentForm {
	return dto.StudentForm{
		NIM:        "123456789012",
		Name:       "Budi Santoso",
		Class:      "ti1a",
		GPA:        "3.25",
		Department: "Teknik Informatika",
	}
}

func TestStudentServiceCreateValidationOrder(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.StudentForm)
		reason string
	}{
		{"short id", func(f *dto.StudentForm) { f.NIM = "12345" }, "id must be 12 digits"},
		{"non-digit id", func(f *dto.StudentForm) { f.NIM = "12345678901a" }, "id must be 12 digits"},
		{"thirteen digits", func(f *dto.StudentForm) { f.NIM = "1234567890123" }, "id must be 12 digits"},
		{"name with digits", func(f *dto.StudentForm) { f.Name = "Budi 2" }, "name must be letters and spaces only"},
		{"class with space", func(f *dto.StudentForm) { f.Class = "TI 1A" }, "class must be alphanumeric, no spaces"},
		{"gpa not numeric", func(f *dto.StudentForm) { f.GPA = "three" }, "gpa must be numeric"},
		{"gpa below range", func(f *dto.StudentForm) { f.GPA = "-0.0001" }, "gpa out of range"},
		{"gpa above range", func(f *dto.StudentForm) { f.GPA = "4.0001" }, "gpa out of range"},
		{"unknown department", func(f *dto.StudentForm) { f.Department = "Astrologi" }, "invalid department"},
		{"first failure wins", func(f *dto.StudentForm) { f.NIM = "x"; f.Department = "Astrologi" }, "id must be 12 digits"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memoryStudentRepo{}
			svc := NewStudentService(repo, testValidator(), testLogger())

			form := validForm()
			tc.mutate(&form)

			_, err := svc.Create(context.Background(), form)

			var validationError *ValidationError
			require.ErrorAs(t, err, &validationError)
			require.Equal(t, tc.reason, validationError.Reason)
			require.Zero(t, repo.saves)
		})
	}
}

func TestStudentServiceCreateAcceptsGPABoundaries(t *testing.T) {
	for _, gpa := range []string{"0.0", "4.0"} {
		repo := &memoryStudentRepo{}
		svc := NewStudentService(repo, testValidator(), testLogger())

		form := validForm()
		form.GPA = gpa

		_, err := svc.Create(context.Background(), form)
		require.NoError(t, err)
		require.Len(t, repo.students, 1)
	}
}

func TestStudentServiceCreateUppercasesClassAndStores(t *testing.T) {
	repo := &memoryStudentRepo{}
	svc := NewStudentService(repo, testValidator(), testLogger())

	created, err := svc.Create(context.Background(), validForm())
	require.NoError(t, err)
	require.Equal(t, "TI1A", created.Class)
	require.Equal(t, 3.25, created.GPA)
	require.Equal(t, "TI1A", repo.students[0].Class)
}

func TestStudentServiceCreateRejectsDuplicateNIM(t *testing.T) {
	repo := &memoryStudentRepo{students: []models.Student{
		{NIM: "123456789012", Name: "Budi", Class: "TI1A", GPA: 3.0, Department: "Teknik Informatika"},
	}}
	svc := NewStudentService(repo, testValidator(), testLogger())

	_, err := svc.Create(context.Background(), validForm())
	require.ErrorIs(t, err, ErrDuplicateStudent)
	require.Len(t, repo.students, 1)
}

func TestStudentServiceUpdateKeepsNIMAndRevalidates(t *testing.T) {
	repo := &memoryStudentRepo{students: []models.Student{
		{NIM: "123456789012", Name: "Budi", Class: "TI1A", GPA: 3.0, Department: "Teknik Informatika"},
	}}
	svc := NewStudentService(repo, testValidator(), testLogger())

	form := validForm()
	form.NIM = "ignored"
	form.Name = "Budi Revised"
	form.GPA = "3.9"

	updated, err := svc.Update(context.Background(), "123456789012", form)
	require.NoError(t, err)
	require.Equal(t, "123456789012", updated.NIM)
	require.Equal(t, "Budi Revised", updated.Name)
	require.Equal(t, 3.9, repo.students[0].GPA)
}

func TestStudentServiceUpdateUnknownNIM(t *testing.T) {
	repo := &memoryStudentRepo{}
	svc := NewStudentService(repo, testValidator(), testLogger())

	_, err := svc.Update(context.Background(), "999999999999", validForm())
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentServiceDelete(t *testing.T) {
	repo := &memoryStudentRepo{students: []models.Student{
		{NIM: "111111111111", Name: "Budi", Class: "A1", GPA: 3.0, Department: "Hukum"},
		{NIM: "222222222222", Name: "Siti", Class: "B2", GPA: 3.5, Department: "PGSD"},
	}}
	svc := NewStudentService(repo, testValidator(), testLogger())

	require.NoError(t, svc.Delete(context.Background(), "111111111111"))
	require.Len(t, repo.students, 1)
	require.Equal(t, "222222222222", repo.students[0].NIM)

	err := svc.Delete(context.Background(), "111111111111")
	require.ErrorIs(t, err, ErrStudentNotFound)
	require.Len(t, repo.students, 1)
}

func TestStudentServiceGet(t *testing.T) {
	repo := &memoryStudentRepo{students: []models.Student{
		{NIM: "111111111111", Name: "Budi", Class: "A1", GPA: 3.0, Department: "Hukum"},
	}}
	svc := NewStudentService(repo, testValidator(), testLogger())

	found, err := svc.Get(context.Background(), "111111111111")
	require.NoError(t, err)
	require.Equal(t, "Budi", found.Name)

	_, err = svc.Get(context.Background(), "000000000000")
	require.ErrorIs(t, err, ErrStudentNotFound)
}
