// Lists the project briefs stored by the site
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"studio-site/internal/database"
	"studio-site/internal/domain"
	"studio-site/internal/repository"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	defaultLimit = 20
	briefPreview = 80
	dateLayout   = "2006-01-02 15:04"
)

var errNoDatabase = errors.New("DATABASE_URL is not set")

var (
	titleColor = color.New(color.FgHiGreen, color.Bold)
	labelColor = color.New(color.FgHiYellow)
	mutedColor = color.New(color.FgHiBlack)
	errorColor = color.New(color.FgHiRed)
)

type submissionLister interface {
	RecentSubmissions(ctx context.Context, limit int) ([]*domain.IntakeSubmission, error)
}

// openFunc connects to the submissions store; close releases it
type openFunc func(ctx context.Context) (lister submissionLister, close func(), err error)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(openRepository, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func openRepository(ctx context.Context) (submissionLister, func(), error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, nil, errNoDatabase
	}

	db, err := database.NewPostgres(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	return repository.NewSubmissionRepository(db), func() { _ = db.Close(ctx) }, nil
}

func newRootCmd(open openFunc, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "submissions",
		Short:        "Inspect project briefs sent through the start-project form",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newListCmd(open))
	return root
}

func newListCmd(open openFunc) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent submissions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			lister, closeFn, err := open(ctx)
			if err != nil {
				errorColor.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return err
			}
			defer closeFn()

			subs, err := lister.RecentSubmissions(ctx, limit)
			if err != nil {
				errorColor.Fprintf(cmd.ErrOrStderr(), "Error listing submissions: %v\n", err)
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(subs)
			}

			printSubmissions(cmd.OutOrStdout(), subs)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultLimit, "how many submissions to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func printSubmissions(w io.Writer, subs []*domain.IntakeSubmission) {
	if len(subs) == 0 {
		mutedColor.Fprintln(w, "No submissions yet.")
		return
	}

	titleColor.Fprintf(w, "\n📨 %d recent submissions\n\n", len(subs))
	for _, s := range subs {
		labelColor.Fprintf(w, "%s  %-4s ", s.CreatedAt.Local().Format(dateLayout), s.Vibe)
		fmt.Fprintf(w, "%s <%s>", s.Name, s.Email)
		if s.Company != "" {
			fmt.Fprintf(w, " · %s", s.Company)
		}
		fmt.Fprintln(w)
		mutedColor.Fprintf(w, "   %s\n\n", preview(s.Brief))
	}
}

func preview(brief string) string {
	brief = strings.Join(strings.Fields(brief), " ")
	r := []rune(brief)
	if len(r) <= briefPreview {
		return brief
	}
	return string(r[:briefPreview]) + "…"
}
