package repository_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/stepcount/internal/error_values"
	"github.com/limbo/stepcount/internal/repository"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupStepsTestDB(t *testing.T) *testPGConfig {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("steps"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}

func TestStepsRepositoryPostgres(t *testing.T) {
	cfg := setupStepsTestDB(t)
	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	usersRepo := repository.NewUsersRepoWithConn(pool)
	stepsRepo := repository.NewStepsRepoWithConn(pool)

	user, err := usersRepo.Ensure(ctx, "test@example.com", "Test User")
	require.NoError(t, err)
	again, err := usersRepo.Ensure(ctx, "test@example.com", "Test User")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	t.Run("upsert keeps one record per day", func(t *testing.T) {
		first, inserted, err := stepsRepo.Upsert(ctx, user.ID, day(1), 5000)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.Equal(t, first.CreatedAt, first.UpdatedAt)

		second, inserted, err := stepsRepo.Upsert(ctx, user.ID, day(1), 7000)
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 7000, second.StepCount)

		steps, err := stepsRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, steps, 1)
		assert.Equal(t, 7000, steps[0].StepCount)
	})

	t.Run("list ordered by date desc", func(t *testing.T) {
		_, _, err := stepsRepo.Upsert(ctx, user.ID, day(3), 300)
		require.NoError(t, err)
		_, _, err = stepsRepo.Upsert(ctx, user.ID, day(2), 200)
		require.NoError(t, err)
		steps, err := stepsRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, steps, 3)
		assert.True(t, steps[0].Date.Equal(day(3)))
		assert.True(t, steps[1].Date.Equal(day(2)))
		assert.True(t, steps[2].Date.Equal(day(1)))
	})

	t.Run("soft delete hides and upsert revives", func(t *testing.T) {
		before, _, err := stepsRepo.Upsert(ctx, user.ID, day(2), 200)
		require.NoError(t, err)
		require.NoError(t, stepsRepo.SoftDelete(ctx, user.ID, day(2)))
		assert.ErrorIs(t, stepsRepo.SoftDelete(ctx, user.ID, day(2)), errorvalues.ErrStepsNotFound)
		steps, err := stepsRepo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, steps, 2)

		revived, _, err := stepsRepo.Upsert(ctx, user.ID, day(2), 250)
		require.NoError(t, err)
		assert.Equal(t, before.ID, revived.ID)
		steps, err = stepsRepo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, steps, 3)
	})

	t.Run("concurrent upserts for one day", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(count int) {
				defer wg.Done()
				_, _, err := stepsRepo.Upsert(ctx, user.ID, day(10), count)
				assert.NoError(t, err)
			}(1000 + i)
		}
		wg.Wait()
		steps, err := stepsRepo.List(ctx)
		require.NoError(t, err)
		matched := 0
		for _, s := range steps {
			if s.Date.Equal(day(10)) {
				matched++
			}
		}
		assert.Equal(t, 1, matched)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := stepsRepo.Upsert(ctx, user.ID+1000, day(1), 1)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
