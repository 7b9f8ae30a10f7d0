package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/provafacil/provafacil/internal/models"
)

// Dashboard prints usage totals and the latest activity feed.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.guard() {
		return nil
	}

	opctx, cancel := a.opCtx(ctx)
	defer cancel()

	data, err := a.users.Dashboard(opctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Worksheets: %d   Exercises: %d\n", data.TotalWorksheets, data.TotalExercises)

	latest, err := a.users.LatestActivities(opctx)
	if err != nil {
		return a.fail(err)
	}
	if len(latest) == 0 {
		fmt.Fprintln(a.out, "No activity yet — try 'new'.")
		return nil
	}
	fmt.Fprintln(a.out, "Latest activity:")
	for _, act := range latest {
		printActivity(a.out, act)
	}
	return nil
}

// History prints a page of the activity history. Usage: history [page]
// [subject]. Pages are zero-based on the wire but shown one-based.
func (a *App) History(ctx context.Context, args []string) error {
	if !a.guard() {
		return nil
	}

	page := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintln(a.out, "Usage: history [page] [subject]")
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

	result, err := a.users.Activities(opctx, page, 6, subject)
	if err != nil {
		return a.fail(err)
	}

	if len(result.Activities) == 0 {
		fmt.Fprintln(a.out, "No activities on this page.")
		return nil
	}
	for _, act := range result.Activities {
		printActivity(a.out, act)
	}
	fmt.Fprintf(a.out, "Page %d of %d (%d activities)\n",
		result.CurrentPage+1, result.TotalPages, result.TotalActivities)
	return nil
}

func printActivity(w io.Writer, act models.RecentActivity) {
	fmt.Fprintf(w, "  [%d] %s  %s  %s  %s  %d questions  %s\n",
		act.VersionID,
		models.SubjectAbbreviations[act.Subject],
		act.WorksheetTopic,
		models.GradeLabels[act.Grade],
		models.DifficultyLabels[act.Difficulty],
		act.QuestionCount,
		act.CreatedAt.Format("2006-01-02"),
	)
}
