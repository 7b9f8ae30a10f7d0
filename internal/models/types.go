// Package models defines the data records and enumerations exchanged with
// the ProvaFácil REST API.
package models

import "time"

// TokenPair is the credential pair returned by login and refresh. Both
// tokens are opaque strings to the client; expiry is only ever signaled by
// the server rejecting a call.
type TokenPair struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType"`
	ExpiresIn        int64  `json:"expiresIn"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn"`
}

// Account is the public view of an account returned by registration.
type Account struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserProfile is the server-owned profile record. The client copy is a
// cached read, refreshed after login and profile edits.
type UserProfile struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterRequest is the registration payload. Validation tags mirror the
// server's password policy so obviously bad payloads fail before any
// network call.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=100,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// DashboardData summarizes a teacher's usage.
type DashboardData struct {
	Username        string `json:"username"`
	TotalWorksheets int    `json:"totalWorksheets"`
	TotalExercises  int    `json:"totalExercises"`
}

// RecentActivity is one row of the dashboard history feed.
type RecentActivity struct {
	VersionID      int64      `json:"version_id"`
	WorksheetTopic string     `json:"worksheet_topic"`
	Subject        Subject    `json:"subject"`
	Grade          Grade      `json:"grade"`
	Difficulty     Difficulty `json:"difficulty"`
	QuestionCount  int        `json:"question_count"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ActivitiesPage is the paginated history response.
type ActivitiesPage struct {
	Activities      []RecentActivity `json:"activities"`
	CurrentPage     int              `json:"currentPage"`
	TotalPages      int              `json:"totalPages"`
	TotalActivities int              `json:"totalActivities"`
}

// CreateWorksheetRequest asks the backend to generate a new worksheet.
type CreateWorksheetRequest struct {
	Subject       Subject      `json:"subject" validate:"required"`
	Grade         Grade        `json:"grade" validate:"required"`
	Topic         string       `json:"topic" validate:"required,max=200"`
	Difficulty    Difficulty   `json:"difficulty" validate:"required"`
	QuestionCount int          `json:"questionCount" validate:"min=1,max=50"`
	Description   string       `json:"description,omitempty" validate:"max=500"`
	QuestionType  QuestionType `json:"questionType" validate:"required"`
}

// Worksheet is a generated worksheet owned by the current teacher.
type Worksheet struct {
	ID            int64        `json:"id"`
	TeacherName   string       `json:"teacherName"`
	Subject       Subject      `json:"subject"`
	Grade         Grade        `json:"grade"`
	Topic         string       `json:"topic"`
	Difficulty    Difficulty   `json:"difficulty"`
	QuestionCount int          `json:"questionCount"`
	Description   string       `json:"description"`
	QuestionType  QuestionType `json:"questionType"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// WorksheetPage is the Spring-style page envelope the worksheet listing
// endpoint returns.
type WorksheetPage struct {
	Content          []Worksheet `json:"content"`
	TotalElements    int         `json:"totalElements"`
	TotalPages       int         `json:"totalPages"`
	Last             bool        `json:"last"`
	First            bool        `json:"first"`
	Size             int         `json:"size"`
	Number           int         `json:"number"`
	NumberOfElements int         `json:"numberOfElements"`
	Empty            bool        `json:"empty"`
}

// CreateVersionRequest asks the backend to materialize a worksheet variant.
type CreateVersionRequest struct {
	VersionType         VersionType `json:"versionType"`
	IncludeAnswers      bool        `json:"includeAnswers"`
	IncludeExplanations bool        `json:"includeExplanations"`
}

// WorksheetVersion is a concrete variant of a worksheet (student/teacher,
// A/B seed).
type WorksheetVersion struct {
	ID                  int64         `json:"id"`
	WorksheetID         int64         `json:"worksheetId"`
	VersionType         VersionType   `json:"versionType"`
	Seed                int64         `json:"seed"`
	IncludeAnswers      bool          `json:"includeAnswers"`
	IncludeExplanations bool          `json:"includeExplanations"`
	Status              VersionStatus `json:"status"`
}

// QuestionOption is one alternative of a multiple-choice question.
type QuestionOption struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question is a single generated exercise. CorrectAnswer and Explanation are
// only present for teacher-audience content.
type Question struct {
	OrderNumber   int              `json:"orderNumber"`
	Type          QuestionType     `json:"type"`
	Statement     string           `json:"statement"`
	CorrectAnswer string           `json:"correctAnswer,omitempty"`
	Explanation   string           `json:"explanation,omitempty"`
	Options       []QuestionOption `json:"options,omitempty"`
}

// VersionSpec is the full generated question set of a version.
type VersionSpec struct {
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}
