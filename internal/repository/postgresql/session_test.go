package postgresql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-analytics-go/internal/domain/session"
	"github.com/cmlabs-hris/attendance-analytics-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func sessionTestInit(t *testing.T) {
	t.Helper()
	if testDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping repository tests")
	}

	if err := database.RunMigrations(dsn); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
}

func seedSessions(t *testing.T, ctx context.Context, repo session.SessionRepository, rows []session.Session) {
	t.Helper()
	_, err := repo.ReplaceAll(ctx, rows)
	require.NoError(t, err)
}

func testRows() []session.Session {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []session.Session{
		{Employee: "John Doe", Date: day(2025, time.January, 5), LoginTime: "9:00:00 AM", LogoutTime: "6:00:00 PM"},
		{Employee: "Jane Smith", Date: day(2025, time.February, 10), LoginTime: "10:00:00 AM", LogoutTime: "7:00:00 PM"},
		{Employee: "Alice Brown", Date: day(2024, time.February, 11), LoginTime: "10:00:00 AM", LogoutTime: "6:30:00 PM"},
	}
}

func TestSessionRepository_ReplaceAllAndListAll(t *testing.T) {
	sessionTestInit(t)
	ctx := context.Background()
	repo := NewSessionRepository(testDB)

	seedSessions(t, ctx, repo, testRows())

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// newest date first
	assert.Equal(t, "Jane Smith", got[0].Employee)
	assert.Equal(t, "John Doe", got[1].Employee)
	assert.Equal(t, "Alice Brown", got[2].Employee)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].CreatedAt.IsZero())

	// a second replace leaves exactly the new rows
	seedSessions(t, ctx, repo, testRows()[:1])
	got, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSessionRepository_ListFiltered(t *testing.T) {
	sessionTestInit(t)
	ctx := context.Background()
	repo := NewSessionRepository(testDB)

	seedSessions(t, ctx, repo, testRows())

	year := 2025
	got, err := repo.ListFiltered(ctx, &year, nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.ListFiltered(ctx, nil, []time.Month{time.February})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.ListFiltered(ctx, &year, []time.Month{time.February})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane Smith", got[0].Employee)

	got, err = repo.ListFiltered(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSessionRepository_DeleteAll(t *testing.T) {
	sessionTestInit(t)
	ctx := context.Background()
	repo := NewSessionRepository(testDB)

	seedSessions(t, ctx, repo, testRows())
	require.NoError(t, repo.DeleteAll(ctx))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
