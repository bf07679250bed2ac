package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/repository"
)

// overdueWarnDays is the lateness at which a row is highlighted in red.
const overdueWarnDays = 7

type overdueLister interface {
	ListOverdueLoans(ctx context.Context, now time.Time) ([]domain.OverdueLoan, error)
}

func newOverdueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List loans past their due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			return printOverdue(ctx, cmd.OutOrStdout(), repository.NewPostgresUserRepository(pool), time.Now())
		},
	}
}

func printOverdue(ctx context.Context, out io.Writer, lister overdueLister, now time.Time) error {
	loans, err := lister.ListOverdueLoans(ctx, now)
	if err != nil {
		return fmt.Errorf("listing overdue loans: %w", err)
	}
	if len(loans) == 0 {
		ok("No overdue loans")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tBORROWER\tDUE\tDAYS OVERDUE")
	for _, l := range loans {
		days := fmt.Sprintf("%d", l.DaysOverdue)
		if l.DaysOverdue >= overdueWarnDays {
			days = color.RedString(days)
		} else {
			days = color.YellowString(days)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.Title, l.Email, l.DueDate.Format(time.DateOnly), days)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d overdue loans\n", len(loans))
	return nil
}
