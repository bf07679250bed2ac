package cli

import (
	"github.com/spf13/cobra"

	"github.com/kelvinmfon2025/book-api/internal/notification"
	"github.com/kelvinmfon2025/book-api/internal/repository"
	"github.com/kelvinmfon2025/book-api/internal/service"
)

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Cancel active reservations past their expiry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			dispatcher := notification.NewDispatcher(notification.NewLogSender(), 1, cfg.NotificationQueueSize)
			defer dispatcher.Close()

			lending := service.NewLendingService(
				repository.NewPostgresBookRepository(pool),
				repository.NewPostgresUserRepository(pool),
				repository.NewPostgresReservationRepository(pool),
				repository.NewPostgresTransactor(pool),
				dispatcher,
				service.LendingRules{
					LoanPeriod:     cfg.LoanPeriod,
					MaxBorrowLimit: cfg.MaxBorrowLimit,
					ReservationTTL: cfg.ReservationTTL,
				},
			)

			n, err := lending.ExpireReservations(ctx)
			if err != nil {
				return err
			}
			ok("Expired %d reservations", n)
			return nil
		},
	}
}
