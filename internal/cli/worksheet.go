package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/provafacil/provafacil/internal/filex"
	"github.com/provafacil/provafacil/internal/models"
)

// NewWorksheet runs the generation wizard: subject, grade, topic,
// difficulty, question type, count, optional description.
func (a *App) NewWorksheet(ctx context.Context) error {
	if !a.guard() {
		return nil
	}

	subjectText, err := getSimpleText(a.reader, "Subject (MAT, POR, CIE, HIS, GEO, HOR, REL, ART)", a.out)
	if err != nil {
		return err
	}
	subject, err := models.ParseSubject(subjectText)
	if err != nil {
		return a.fail(err)
	}

	gradeText, err := getSimpleText(a.reader, "Grade (1-5)", a.out)
	if err != nil {
		return err
	}
	grade, err := models.ParseGrade(gradeText)
	if err != nil {
		return a.fail(err)
	}

	topic, err := getSimpleText(a.reader, "Topic", a.out)
	if err != nil {
		return err
	}

	difficultyText, err := getSimpleText(a.reader, "Difficulty (easy, medium, hard)", a.out)
	if err != nil {
		return err
	}
	difficulty, err := models.ParseDifficulty(difficultyText)
	if err != nil {
		return a.fail(err)
	}

	typeText, err := getSimpleText(a.reader, "Question type (mcq, open, true_false, fill_blank, variable)", a.out)
	if err != nil {
		return err
	}
	questionType, err := models.ParseQuestionType(typeText)
	if err != nil {
		return a.fail(err)
	}

	count, err := getInt(a.reader, "Question count (default 10)", 10, a.out)
	if err != nil {
		return a.fail(err)
	}

	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	opctx, cancel := a.opCtx(ctx)
	defer cancel()

	sheet, err := a.worksheets.Create(opctx, models.CreateWorksheetRequest{
		Subject:       subject,
		Grade:         grade,
		Topic:         topic,
		Difficulty:    difficulty,
		QuestionCount: count,
		Description:   description,
		QuestionType:  questionType,
	})
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Worksheet %d created: %s (%s, %s).\n",
		sheet.ID, sheet.Topic, models.SubjectLabels[sheet.Subject], models.GradeLabels[sheet.Grade])
	fmt.Fprintf(a.out, "Use 'version %d' to generate a printable version.\n", sheet.ID)
	return nil
}

// List prints a page of the teacher's worksheets. Usage: list [page]
// [subject].
func (a *App) List(ctx context.Context, args []string) error {
	if !a.guard() {
		return nil
	}

	page := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintln(a.out, "Usage: list [page] [subject]")
			return nil
		}
		page = n - 1
	}

	var subject models.Subject
	if len(args) > 1 {
		var err error
		subject, err = models.ParseSubject(args[1])
		if err != nil {
			return a.fail(err)
		}
	}

	opctx, cancel := a.opCtx(ctx)
	defer cancel()

	result, err := a.worksheets.List(opctx, page, 20, subject)
	if err != nil {
		return a.fail(err)
	}

	if len(result.Content) == 0 {
		fmt.Fprintln(a.out, "No worksheets on this page.")
		return nil
	}
	for _, sheet := range result.Content {
		fmt.Fprintf(a.out, "  [%d] %s  %s  %s  %s  %d questions  %s\n",
			sheet.ID,
			models.SubjectAbbreviations[sheet.Subject],
			sheet.Topic,
			models.GradeLabels[sheet.Grade],
			models.DifficultyLabels[sheet.Difficulty],
			sheet.QuestionCount,
			sheet.CreatedAt.Format("2006-01-02"),
		)
	}
	fmt.Fprintf(a.out, "Page %d of %d (%d worksheets)\n",
		result.Number+1, result.TotalPages, result.TotalElements)
	return nil
}

// NewVersion materializes a printable version of a worksheet.
// Usage: version <worksheetID>.
func (a *App) NewVersion(ctx context.Context, args []string) error {
	if !a.guard() {
		return nil
	}

	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: version <worksheetID>")
		return nil
	}
	worksheetID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return a.fail(fmt.Errorf("invalid worksheet id %q", args[0]))
	}

	typeText, err := getSimpleText(a.reader, "Version type (STUDENT_A, TEACHER_A, STUDENT_B, TEACHER_B)", a.out)
	if err != nil {
		return err
	}
	versionType := models.VersionType(strings.ToUpper(strings.TrimSpace(typeText)))
	switch versionType {
	case models.VersionStudentA, models.VersionTeacherA, models.VersionStudentB, models.VersionTeacherB:
	default:
		return a.fail(fmt.Errorf("unknown version type %q", typeText))
	}

	answers, err := getYesNo(a.reader, "Include answers?", versionType == models.VersionTeacherA || versionType == models.VersionTeacherB, a.out)
	if err != nil {
		return err
	}
	explanations, err := getYesNo(a.reader, "Include explanations?", false, a.out)
	if err != nil {
		return err
	}

	opctx, cancel := a.opCtx(ctx)
	defer cancel()

	version, err := a.worksheets.CreateVersion(opctx, worksheetID, models.CreateVersionRequest{
		VersionType:         versionType,
		IncludeAnswers:      answers,
		IncludeExplanations: explanations,
	})
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Version %d created (%s, status %s).\n", version.ID, version.VersionType, version.Status)
	fmt.Fprintf(a.out, "Use 'show %d' to read it or 'export %d' to save the PDF.\n", version.ID, version.ID)
	return nil
}

// Show prints a version's question set. Usage: show <versionID> [answers].
// Passing "answers" reveals correct answers and explanations, mirroring the
// answer-visibility toggle of the web app.
func (a *App) Show(ctx context.Context, args []string) error {
	if !a.guard() {
		return nil
	}

	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: show <versionID> [answers]")
		return nil
	}
	versionID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return a.fail(fmt.Errorf("invalid version id %q", args[0]))
	}
	showAnswers := len(args) > 1 && strings.EqualFold(args[1], "answers")

	opctx, cancel := a.opCtx(ctx)
	defer cancel()

	spec, err := a.worksheets.VersionSpec(opctx, versionID)
	if err != nil {
		return a.fail(err)
	}

	if spec.Description != "" {
		fmt.Fprintln(a.out, spec.Description)
	}
	for _, q := range spec.Questions {
		fmt.Fprintf(a.out, "%d) %s\n", q.OrderNumber, q.Statement)
		for _, opt := range q.Options {
			fmt.Fprintf(a.out, "   %s) %s\n", opt.Label, opt.Text)
		}
		if showAnswers && q.CorrectAnswer != "" {
			fmt.Fprintf(a.out, "   Answer: %s\n", q.CorrectAnswer)
			if q.Explanation != "" {
				fmt.Fprintf(a.out, "   Explanation: %s\n", q.Explanation)
			}
		}
	}
	return nil
}

// Export saves a version's PDF into the configured download directory.
// Usage: export <versionID> [students|teachers]. The teacher audience
// includes the answer key.
func (a *App) Export(ctx context.Context, args []string) error {
	if !a.guard() {
		return nil
	}

	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: export <versionID> [students|teachers]")
		return nil
	}
	versionID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return a.fail(fmt.Errorf("invalid version id %q", args[0]))
	}

	audienceText := ""
	if len(args) > 1 {
		audienceText = args[1]
	}
	audience, err := models.ParseAudience(audienceText)
	if err != nil {
		return a.fail(err)
	}

	opctx, cancel := a.opCtx(ctx)
	defer cancel()

	data, name, err := a.worksheets.DownloadPDF(opctx, versionID, audience)
	if err != nil {
		return a.fail(err)
	}

	dir, err := filex.EnsureDir(a.config.DownloadDir)
	if err != nil {
		return a.fail(err)
	}
	path := filepath.Join(dir, filex.SafeFileName(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return a.fail(fmt.Errorf("save pdf: %w", err))
	}

	fmt.Fprintf(a.out, "PDF saved to %s\n", path)
	return nil
}

// Delete removes a worksheet after confirmation. Usage: delete <worksheetID>.
func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.guard() {
		return nil
	}

	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: delete <worksheetID>")
		return nil
	}
	worksheetID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return a.fail(fmt.Errorf("invalid worksheet id %q", args[0]))
	}

	confirmed, err := getYesNo(a.reader, fmt.Sprintf("Delete worksheet %d?", worksheetID), false, a.out)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	opctx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.worksheets.Delete(opctx, worksheetID); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Worksheet %d deleted.\n", worksheetID)
	return nil
}
