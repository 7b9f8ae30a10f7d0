package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/provafacil/provafacil/internal/models"
)

// UserService wraps the profile and dashboard endpoints.
type UserService interface {
	Profile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, username string) (*models.UserProfile, error)
	Dashboard(ctx context.Context) (*models.DashboardData, error)
	LatestActivities(ctx context.Context) ([]models.RecentActivity, error)
	Activities(ctx context.Context, page, size int, subject models.Subject) (*models.ActivitiesPage, error)
}

type userService struct {
	client restClient
}

func NewUserService(client restClient) UserService {
	return &userService{client: client}
}

func (u *userService) Profile(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := u.client.Get(ctx, "/users/me", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

type updateProfileRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
}

func (u *userService) UpdateProfile(ctx context.Context, username string) (*models.UserProfile, error) {
	req := updateProfileRequest{Username: username}
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := u.client.Patch(ctx, "/users/me", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (u *userService) Dashboard(ctx context.Context) (*models.DashboardData, error) {
	var data models.DashboardData
	if err := u.client.Get(ctx, "/users/me/dashboard", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (u *userService) LatestActivities(ctx context.Context) ([]models.RecentActivity, error) {
	var activities []models.RecentActivity
	if err := u.client.Get(ctx, "/users/me/dashboard/activities/latest", &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (u *userService) Activities(ctx context.Context, page, size int, subject models.Subject) (*models.ActivitiesPage, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprint(page))
	params.Set("size", fmt.Sprint(size))
	if subject != "" {
		params.Set("subject", string(subject))
	}

	var result models.ActivitiesPage
	if err := u.client.Get(ctx, "/users/me/dashboard/activities?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
