package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/provafacil/provafacil/internal/models"
)

// WorksheetService wraps worksheet generation, listing, versioning, and PDF
// export.
type WorksheetService interface {
	Create(ctx context.Context, req models.CreateWorksheetRequest) (*models.Worksheet, error)
	List(ctx context.Context, page, size int, subject models.Subject) (*models.WorksheetPage, error)
	Delete(ctx context.Context, id int64) error
	CreateVersion(ctx context.Context, worksheetID int64, req models.CreateVersionRequest) (*models.WorksheetVersion, error)
	VersionSpec(ctx context.Context, versionID int64) (*models.VersionSpec, error)
	DownloadPDF(ctx context.Context, versionID int64, audience models.Audience) ([]byte, string, error)
}

type worksheetService struct {
	client restClient
}

func NewWorksheetService(client restClient) WorksheetService {
	return &worksheetService{client: client}
}

func (w *worksheetService) Create(ctx context.Context, req models.CreateWorksheetRequest) (*models.Worksheet, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var sheet models.Worksheet
	if err := w.client.Post(ctx, "/worksheets", req, &sheet); err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (w *worksheetService) List(ctx context.Context, page, size int, subject models.Subject) (*models.WorksheetPage, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprint(page))
	params.Set("size", fmt.Sprint(size))
	if subject != "" {
		params.Set("subject", string(subject))
	}

	var result models.WorksheetPage
	if err := w.client.Get(ctx, "/worksheets?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (w *worksheetService) Delete(ctx context.Context, id int64) error {
	return w.client.Delete(ctx, fmt.Sprintf("/worksheets/%d", id))
}

func (w *worksheetService) CreateVersion(ctx context.Context, worksheetID int64, req models.CreateVersionRequest) (*models.WorksheetVersion, error) {
	var version models.WorksheetVersion
	path := fmt.Sprintf("/worksheets/%d/versions", worksheetID)
	if err := w.client.Post(ctx, path, req, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

func (w *worksheetService) VersionSpec(ctx context.Context, versionID int64) (*models.VersionSpec, error) {
	var spec models.VersionSpec
	path := fmt.Sprintf("/worksheets/versions/%d/spec", versionID)
	if err := w.client.Get(ctx, path, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// DownloadPDF fetches the rendered PDF of a version for the given audience.
// It returns the raw bytes and the server-suggested filename, falling back
// to a deterministic name when the server sends none.
func (w *worksheetService) DownloadPDF(ctx context.Context, versionID int64, audience models.Audience) ([]byte, string, error) {
	path := fmt.Sprintf("/worksheets/versions/%d/download?audience=%s", versionID, url.QueryEscape(string(audience)))
	data, name, err := w.client.Download(ctx, path)
	if err != nil {
		return nil, "", err
	}
	if name == "" {
		name = fmt.Sprintf("worksheet-version-%d.pdf", versionID)
	}
	return data, name, nil
}
