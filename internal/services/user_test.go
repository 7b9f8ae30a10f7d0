package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provafacil/provafacil/internal/api"
	"github.com/provafacil/provafacil/internal/models"
)

func TestProfile(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	fc := &fakeClient{t: t, GetOut: models.UserProfile{
		Username: "profana", Email: "ana@example.org", CreatedAt: created,
	}}
	svc := NewUserService(fc)

	profile, err := svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "profana", profile.Username)
	assert.Equal(t, "/users/me", fc.LastPath)
	assert.True(t, fc.LastHadAuth)
}

func TestUpdateProfile(t *testing.T) {
	fc := &fakeClient{t: t, PatchOut: models.UserProfile{Username: "profbia"}}
	svc := NewUserService(fc)

	profile, err := svc.UpdateProfile(context.Background(), "profbia")
	require.NoError(t, err)
	assert.Equal(t, "profbia", profile.Username)
	assert.Equal(t, "PATCH", fc.LastMethod)
	assert.Equal(t, "/users/me", fc.LastPath)
}

func TestUpdateProfile_EmptyUsernameFailsLocally(t *testing.T) {
	fc := &fakeClient{t: t}
	svc := NewUserService(fc)

	_, err := svc.UpdateProfile(context.Background(), "")
	var valErr *api.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Zero(t, fc.Calls)
}

func TestDashboard(t *testing.T) {
	fc := &fakeClient{t: t, GetOut: models.DashboardData{
		Username: "profana", TotalWorksheets: 12, TotalExercises: 96,
	}}
	svc := NewUserService(fc)

	data, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, data.TotalWorksheets)
	assert.Equal(t, "/users/me/dashboard", fc.LastPath)
}

func TestLatestActivities(t *testing.T) {
	fc := &fakeClient{t: t, GetOut: []models.RecentActivity{
		{VersionID: 7, WorksheetTopic: "Frações", Subject: models.SubjectMatematica},
	}}
	svc := NewUserService(fc)

	activities, err := svc.LatestActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, int64(7), activities[0].VersionID)
	assert.Equal(t, "/users/me/dashboard/activities/latest", fc.LastPath)
}

func TestActivities_Pagination(t *testing.T) {
	fc := &fakeClient{t: t, GetOut: models.ActivitiesPage{
		CurrentPage: 2, TotalPages: 5, TotalActivities: 27,
	}}
	svc := NewUserService(fc)

	page, err := svc.Activities(context.Background(), 2, 6, "")
	require.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, "/users/me/dashboard/activities?page=2&size=6", fc.LastPath)
}

func TestActivities_SubjectFilter(t *testing.T) {
	fc := &fakeClient{t: t, GetOut: models.ActivitiesPage{}}
	svc := NewUserService(fc)

	_, err := svc.Activities(context.Background(), 0, 6, models.SubjectHistoria)
	require.NoError(t, err)
	assert.Equal(t, "/users/me/dashboard/activities?page=0&size=6&subject=HISTORIA", fc.LastPath)
}
