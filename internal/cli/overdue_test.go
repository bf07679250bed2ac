package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/mocks"
)

func TestPrintOverdue(t *testing.T) {
	color.NoColor = true
	now := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)

	users := mocks.NewMockUserRepository(t)
	users.EXPECT().ListOverdueLoans(mock.Anything, now).Return([]domain.OverdueLoan{
		{
			Loan:        domain.Loan{BookID: "b1", DueDate: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)},
			Title:       "Dune",
			Email:       "ada@example.com",
			DaysOverdue: 10,
		},
		{
			Loan:        domain.Loan{BookID: "b2", DueDate: time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC)},
			Title:       "Emma",
			Email:       "grace@example.com",
			DaysOverdue: 2,
		},
	}, nil)

	var out bytes.Buffer
	require.NoError(t, printOverdue(context.Background(), &out, users, now))

	text := out.String()
	assert.Contains(t, text, "TITLE")
	assert.Contains(t, text, "ada@example.com")
	assert.Contains(t, text, "2024-03-10")
	assert.Contains(t, text, "2 overdue loans")
}

func TestPrintOverdue_None(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	users.EXPECT().ListOverdueLoans(mock.Anything, mock.Anything).Return(nil, nil)

	var out bytes.Buffer
	require.NoError(t, printOverdue(context.Background(), &out, users, time.Now()))
	assert.Empty(t, out.String())
}

func TestPrintOverdue_Error(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	users.EXPECT().ListOverdueLoans(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	err := printOverdue(context.Background(), &bytes.Buffer{}, users, time.Now())
	assert.ErrorContains(t, err, "boom")
}
