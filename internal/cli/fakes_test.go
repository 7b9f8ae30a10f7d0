package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/provafacil/provafacil/internal/config"
	"github.com/provafacil/provafacil/internal/logging"
	"github.com/provafacil/provafacil/internal/models"
	"github.com/provafacil/provafacil/internal/session"
	"github.com/provafacil/provafacil/internal/tokenstore"
)

// ---- fake services ----

type fakeAuth struct {
	loginPair *models.TokenPair
	loginErr  error

	registerAccount *models.Account
	registerErr     error

	logoutCalled bool
	tokens       tokenstore.Store
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (*models.TokenPair, error) {
	return f.loginPair, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, _ models.RegisterRequest) (*models.Account, error) {
	return f.registerAccount, f.registerErr
}

func (f *fakeAuth) Refresh(_ context.Context, _ string) (*models.TokenPair, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAuth) Logout(_ context.Context) error {
	f.logoutCalled = true
	if f.tokens != nil {
		_ = f.tokens.Clear()
	}
	return nil
}

type fakeUsers struct {
	profile       *models.UserProfile
	profileErr    error
	updated       *models.UserProfile
	updateErr     error
	dashboard     *models.DashboardData
	latest        []models.RecentActivity
	activities    *models.ActivitiesPage
	activitiesErr error
}

func (f *fakeUsers) Profile(_ context.Context) (*models.UserProfile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, username string) (*models.UserProfile, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updated != nil {
		return f.updated, nil
	}
	return &models.UserProfile{Username: username}, nil
}

func (f *fakeUsers) Dashboard(_ context.Context) (*models.DashboardData, error) {
	if f.dashboard == nil {
		return &models.DashboardData{}, nil
	}
	return f.dashboard, nil
}

func (f *fakeUsers) LatestActivities(_ context.Context) ([]models.RecentActivity, error) {
	return f.latest, nil
}

func (f *fakeUsers) Activities(_ context.Context, _, _ int, _ models.Subject) (*models.ActivitiesPage, error) {
	if f.activitiesErr != nil {
		return nil, f.activitiesErr
	}
	if f.activities == nil {
		return &models.ActivitiesPage{}, nil
	}
	return f.activities, nil
}

type fakeWorksheets struct {
	created     *models.Worksheet
	createErr   error
	page        *models.WorksheetPage
	deleteErr   error
	deletedID   int64
	version     *models.WorksheetVersion
	versionErr  error
	spec        *models.VersionSpec
	specErr     error
	pdf         []byte
	pdfName     string
	pdfErr      error
	pdfAudience models.Audience
}

func (f *fakeWorksheets) Create(_ context.Context, _ models.CreateWorksheetRequest) (*models.Worksheet, error) {
	return f.created, f.createErr
}

func (f *fakeWorksheets) List(_ context.Context, _, _ int, _ models.Subject) (*models.WorksheetPage, error) {
	if f.page == nil {
		return &models.WorksheetPage{}, nil
	}
	return f.page, nil
}

func (f *fakeWorksheets) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

func (f *fakeWorksheets) CreateVersion(_ context.Context, _ int64, _ models.CreateVersionRequest) (*models.WorksheetVersion, error) {
	return f.version, f.versionErr
}

func (f *fakeWorksheets) VersionSpec(_ context.Context, _ int64) (*models.VersionSpec, error) {
	return f.spec, f.specErr
}

func (f *fakeWorksheets) DownloadPDF(_ context.Context, _ int64, audience models.Audience) ([]byte, string, error) {
	f.pdfAudience = audience
	return f.pdf, f.pdfName, f.pdfErr
}

// ---- input stubs ----

func stubInputs(t *testing.T, texts []string, passwords [][]byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	ti, pi := 0, 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if ti >= len(texts) {
			return "", errors.New("unexpected text prompt")
		}
		ti++
		return texts[ti-1], nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if pi >= len(passwords) {
			return nil, errors.New("unexpected password prompt")
		}
		pi++
		return append([]byte(nil), passwords[pi-1]...), nil
	}
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func stubYesNo(t *testing.T, answer bool) func() {
	t.Helper()
	orig := getYesNo
	getYesNo = func(_ *bufio.Reader, _ string, _ bool, _ io.Writer) (bool, error) {
		return answer, nil
	}
	return func() { getYesNo = orig }
}

func stubInt(t *testing.T, value int) func() {
	t.Helper()
	orig := getInt
	getInt = func(_ *bufio.Reader, _ string, _ int, _ io.Writer) (int, error) {
		return value, nil
	}
	return func() { getInt = orig }
}

// ---- app construction ----

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		BaseURL:        "http://test.invalid",
		RequestTimeout: 5 * time.Second,
		DownloadDir:    t.TempDir(),
	}
}

// sessionStillHydrating returns a session that has not settled yet.
func sessionStillHydrating(t *testing.T) *session.Session {
	t.Helper()
	return session.New(&fakeAuth{}, &fakeUsers{profile: &models.UserProfile{}}, tokenstore.NewMemory(), logging.NewDefault(io.Discard))
}

// newTestApp wires an App over fakes with a settled session. If loggedIn,
// a credential pair is pre-stored and hydration fetches the fake profile.
func newTestApp(t *testing.T, auth *fakeAuth, users *fakeUsers, sheets *fakeWorksheets, loggedIn bool) (*App, *bytes.Buffer, *tokenstore.Memory) {
	t.Helper()
	if users.profile == nil {
		users.profile = &models.UserProfile{Username: "profana", Email: "ana@example.org"}
	}
	tokens := tokenstore.NewMemory()
	auth.tokens = tokens
	log := logging.NewDefault(io.Discard)

	sess := session.New(auth, users, tokens, log)
	if loggedIn {
		if err := tokens.Save("acc", "ref"); err != nil {
			t.Fatalf("save tokens: %v", err)
		}
	}
	sess.Hydrate(context.Background())

	out := &bytes.Buffer{}
	app := &App{
		config:     testConfig(t),
		sess:       sess,
		users:      users,
		worksheets: sheets,
		reader:     bufio.NewReader(strings.NewReader("")),
		out:        out,
		log:        log,
	}
	return app, out, tokens
}
