package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/provafacil/provafacil/internal/api"
)

// fakeClient implements restClient for unit tests. Canned responses are
// stored as JSON-marshalable values keyed by nothing; the last request is
// recorded for assertions.
type fakeClient struct {
	t *testing.T

	// canned behavior
	GetOut      any
	GetErr      error
	PostOut     any
	PostErr     error
	PatchOut    any
	PatchErr    error
	DeleteErr   error
	DownloadRet []byte
	DownloadNm  string
	DownloadErr error

	// recorded calls
	Calls        int
	LastMethod   string
	LastPath     string
	LastBody     any
	LastHadAuth  bool
	DownloadPath string
}

func (f *fakeClient) record(method, path string, body any, opts []api.RequestOption) {
	f.Calls++
	f.LastMethod, f.LastPath, f.LastBody = method, path, body
	// WithoutAuth is the only option in use; its presence means no auth.
	f.LastHadAuth = len(opts) == 0
}

func fill(t *testing.T, out, canned any) {
	t.Helper()
	if out == nil || canned == nil {
		return
	}
	data, err := json.Marshal(canned)
	if err != nil {
		t.Fatalf("marshal canned response: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal canned response: %v", err)
	}
}

func (f *fakeClient) Get(_ context.Context, path string, out any, opts ...api.RequestOption) error {
	f.record("GET", path, nil, opts)
	if f.GetErr != nil {
		return f.GetErr
	}
	fill(f.t, out, f.GetOut)
	return nil
}

func (f *fakeClient) Post(_ context.Context, path string, body, out any, opts ...api.RequestOption) error {
	f.record("POST", path, body, opts)
	if f.PostErr != nil {
		return f.PostErr
	}
	fill(f.t, out, f.PostOut)
	return nil
}

func (f *fakeClient) Patch(_ context.Context, path string, body, out any, opts ...api.RequestOption) error {
	f.record("PATCH", path, body, opts)
	if f.PatchErr != nil {
		return f.PatchErr
	}
	fill(f.t, out, f.PatchOut)
	return nil
}

func (f *fakeClient) Delete(_ context.Context, path string, opts ...api.RequestOption) error {
	f.record("DELETE", path, nil, opts)
	return f.DeleteErr
}

func (f *fakeClient) Download(_ context.Context, path string) ([]byte, string, error) {
	f.Calls++
	f.DownloadPath = path
	return f.DownloadRet, f.DownloadNm, f.DownloadErr
}
