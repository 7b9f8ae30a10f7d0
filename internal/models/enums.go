package models

import (
	"fmt"
	"strings"
)

// Subject is the school subject of a worksheet.
type Subject string

const (
	SubjectMatematica    Subject = "MATEMATICA"
	SubjectPortugues     Subject = "PORTUGUES"
	SubjectCiencias      Subject = "CIENCIAS"
	SubjectHistoria      Subject = "HISTORIA"
	SubjectGeografia     Subject = "GEOGRAFIA"
	SubjectHorticultura  Subject = "HORTICULTURA"
	SubjectEnsinoRelig   Subject = "ENSINO_RELIGIOSO"
	SubjectArteEEducacao Subject = "ARTE_E_EDUCACAO"
)

// SubjectLabels maps subjects to their PT-BR display names.
var SubjectLabels = map[Subject]string{
	SubjectMatematica:    "Matemática",
	SubjectPortugues:     "Português",
	SubjectCiencias:      "Ciências",
	SubjectHistoria:      "História",
	SubjectGeografia:     "Geografia",
	SubjectHorticultura:  "Horticultura",
	SubjectEnsinoRelig:   "Ensino Religioso",
	SubjectArteEEducacao: "Arte e Educação",
}

// SubjectAbbreviations maps subjects to three-letter codes used in lists.
var SubjectAbbreviations = map[Subject]string{
	SubjectMatematica:    "MAT",
	SubjectPortugues:     "POR",
	SubjectCiencias:      "CIE",
	SubjectHistoria:      "HIS",
	SubjectGeografia:     "GEO",
	SubjectHorticultura:  "HOR",
	SubjectEnsinoRelig:   "REL",
	SubjectArteEEducacao: "ART",
}

// Grade is the school year a worksheet targets.
type Grade string

const (
	GradeFirstYear  Grade = "FIRST_YEAR"
	GradeSecondYear Grade = "SECOND_YEAR"
	GradeThirdYear  Grade = "THIRD_YEAR"
	GradeFourthYear Grade = "FOURTH_YEAR"
	GradeFifthYear  Grade = "FIFTH_YEAR"
)

var GradeLabels = map[Grade]string{
	GradeFirstYear:  "1º Ano",
	GradeSecondYear: "2º Ano",
	GradeThirdYear:  "3º Ano",
	GradeFourthYear: "4º Ano",
	GradeFifthYear:  "5º Ano",
}

// Difficulty of the generated questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

var DifficultyLabels = map[Difficulty]string{
	DifficultyEasy:   "Fácil",
	DifficultyMedium: "Médio",
	DifficultyHard:   "Difícil",
}

// QuestionType selects the format of generated questions.
type QuestionType string

const (
	QuestionTypeMCQ       QuestionType = "MCQ"
	QuestionTypeOpen      QuestionType = "OPEN"
	QuestionTypeTrueFalse QuestionType = "TRUE_FALSE"
	QuestionTypeFillBlank QuestionType = "FILL_BLANK"
	QuestionTypeVariable  QuestionType = "VARIABLE"
)

var QuestionTypeLabels = map[QuestionType]string{
	QuestionTypeMCQ:       "Múltipla Escolha",
	QuestionTypeOpen:      "Dissertativa",
	QuestionTypeTrueFalse: "Verdadeiro ou Falso",
	QuestionTypeFillBlank: "Preencher Lacunas",
	QuestionTypeVariable:  "Variado",
}

// VersionType identifies a concrete rendered variant of a worksheet.
type VersionType string

const (
	VersionStudentA VersionType = "STUDENT_A"
	VersionTeacherA VersionType = "TEACHER_A"
	VersionStudentB VersionType = "STUDENT_B"
	VersionTeacherB VersionType = "TEACHER_B"
)

// VersionStatus is the server-side lifecycle state of a worksheet version.
type VersionStatus string

const (
	VersionStatusDraft     VersionStatus = "DRAFT"
	VersionStatusGenerated VersionStatus = "GENERATED"
	VersionStatusRendered  VersionStatus = "RENDERED"
	VersionStatusFailed    VersionStatus = "FAILED"
)

// Audience controls whether a PDF export includes answer keys.
type Audience string

const (
	AudienceStudents Audience = "STUDENTS"
	AudienceTeachers Audience = "TEACHERS"
)

// ParseSubject resolves user input (enum value, abbreviation, or PT-BR label,
// case-insensitive) into a Subject.
func ParseSubject(s string) (Subject, error) {
	in := strings.TrimSpace(s)
	upper := strings.ToUpper(in)
	for subj := range SubjectLabels {
		if upper == string(subj) || upper == SubjectAbbreviations[subj] {
			return subj, nil
		}
		if strings.EqualFold(in, SubjectLabels[subj]) {
			return subj, nil
		}
	}
	return "", fmt.Errorf("unknown subject %q", s)
}

// ParseGrade accepts either the enum value or the year number ("1".."5").
func ParseGrade(s string) (Grade, error) {
	in := strings.ToUpper(strings.TrimSpace(s))
	byNumber := map[string]Grade{
		"1": GradeFirstYear, "2": GradeSecondYear, "3": GradeThirdYear,
		"4": GradeFourthYear, "5": GradeFifthYear,
	}
	if g, ok := byNumber[in]; ok {
		return g, nil
	}
	for g := range GradeLabels {
		if in == string(g) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown grade %q", s)
}

// ParseDifficulty resolves user input into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	in := strings.TrimSpace(s)
	upper := strings.ToUpper(in)
	for d := range DifficultyLabels {
		if upper == string(d) || strings.EqualFold(in, DifficultyLabels[d]) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// ParseQuestionType resolves user input into a QuestionType.
func ParseQuestionType(s string) (QuestionType, error) {
	in := strings.TrimSpace(s)
	upper := strings.ToUpper(in)
	for q := range QuestionTypeLabels {
		if upper == string(q) || strings.EqualFold(in, QuestionTypeLabels[q]) {
			return q, nil
		}
	}
	return "", fmt.Errorf("unknown question type %q", s)
}

// ParseAudience resolves user input into an Audience. Empty input defaults
// to AudienceStudents, matching the export feature's default.
func ParseAudience(s string) (Audience, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "STUDENTS", "STUDENT", "ALUNOS":
		return AudienceStudents, nil
	case "TEACHERS", "TEACHER", "PROFESSORES":
		return AudienceTeachers, nil
	default:
		return "", fmt.Errorf("unknown audience %q", s)
	}
}
