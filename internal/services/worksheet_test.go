package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provafacil/provafacil/internal/api"
	"github.com/provafacil/provafacil/internal/models"
)

func validCreate() models.CreateWorksheetRequest {
	return models.CreateWorksheetRequest{
		Subject:       models.SubjectMatematica,
		Grade:         models.GradeThirdYear,
		Topic:         "Frações equivalentes",
		Difficulty:    models.DifficultyMedium,
		QuestionCount: 10,
		QuestionType:  models.QuestionTypeMCQ,
	}
}

func TestCreateWorksheet(t *testing.T) {
	fc := &fakeClient{t: t, PostOut: models.Worksheet{ID: 42, Topic: "Frações equivalentes"}}
	svc := NewWorksheetService(fc)

	sheet, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	assert.Equal(t, int64(42), sheet.ID)
	assert.Equal(t, "/worksheets", fc.LastPath)
	assert.True(t, fc.LastHadAuth)
}

func TestCreateWorksheet_InvalidFailsLocally(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateWorksheetRequest)
	}{
		{"empty topic", func(r *models.CreateWorksheetRequest) { r.Topic = "" }},
		{"zero questions", func(r *models.CreateWorksheetRequest) { r.QuestionCount = 0 }},
		{"too many questions", func(r *models.CreateWorksheetRequest) { r.QuestionCount = 51 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{t: t}
			svc := NewWorksheetService(fc)

			req := validCreate()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			var valErr *api.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Zero(t, fc.Calls)
		})
	}
}

func TestListWorksheets(t *testing.T) {
	fc := &fakeClient{t: t, GetOut: models.WorksheetPage{
		Content:       []models.Worksheet{{ID: 1}, {ID: 2}},
		TotalElements: 2, TotalPages: 1, First: true, Last: true,
	}}
	svc := NewWorksheetService(fc)

	page, err := svc.List(context.Background(), 0, 20, "")
	require.NoError(t, err)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, "/worksheets?page=0&size=20", fc.LastPath)
}

func TestListWorksheets_SubjectFilter(t *testing.T) {
	fc := &fakeClient{t: t, GetOut: models.WorksheetPage{}}
	svc := NewWorksheetService(fc)

	_, err := svc.List(context.Background(), 1, 10, models.SubjectCiencias)
	require.NoError(t, err)
	assert.Equal(t, "/worksheets?page=1&size=10&subject=CIENCIAS", fc.LastPath)
}

func TestDeleteWorksheet(t *testing.T) {
	fc := &fakeClient{t: t}
	svc := NewWorksheetService(fc)

	require.NoError(t, svc.Delete(context.Background(), 42))
	assert.Equal(t, "DELETE", fc.LastMethod)
	assert.Equal(t, "/worksheets/42", fc.LastPath)
}

func TestCreateVersion(t *testing.T) {
	fc := &fakeClient{t: t, PostOut: models.WorksheetVersion{
		ID: 7, WorksheetID: 42, VersionType: models.VersionTeacherA, Status: models.VersionStatusGenerated,
	}}
	svc := NewWorksheetService(fc)

	version, err := svc.CreateVersion(context.Background(), 42, models.CreateVersionRequest{
		VersionType: models.VersionTeacherA, IncludeAnswers: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), version.ID)
	assert.Equal(t, "/worksheets/42/versions", fc.LastPath)
}

func TestVersionSpec(t *testing.T) {
	fc := &fakeClient{t: t, GetOut: models.VersionSpec{
		Description: "Frações",
		Questions: []models.Question{
			{OrderNumber: 1, Type: models.QuestionTypeMCQ, Statement: "Quanto é 1/2 + 1/4?",
				CorrectAnswer: "3/4", Options: []models.QuestionOption{{Label: "a", Text: "3/4"}}},
		},
	}}
	svc := NewWorksheetService(fc)

	spec, err := svc.VersionSpec(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, spec.Questions, 1)
	assert.Equal(t, "3/4", spec.Questions[0].CorrectAnswer)
	assert.Equal(t, "/worksheets/versions/7/spec", fc.LastPath)
}

func TestDownloadPDF(t *testing.T) {
	fc := &fakeClient{t: t, DownloadRet: []byte("%PDF"), DownloadNm: "frações.pdf"}
	svc := NewWorksheetService(fc)

	data, name, err := svc.DownloadPDF(context.Background(), 7, models.AudienceTeachers)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
	assert.Equal(t, "frações.pdf", name)
	assert.Equal(t, "/worksheets/versions/7/download?audience=TEACHERS", fc.DownloadPath)
}

func TestDownloadPDF_FallbackFilename(t *testing.T) {
	fc := &fakeClient{t: t, DownloadRet: []byte("%PDF")}
	svc := NewWorksheetService(fc)

	_, name, err := svc.DownloadPDF(context.Background(), 9, models.AudienceStudents)
	require.NoError(t, err)
	assert.Equal(t, "worksheet-version-9.pdf", name)
}
