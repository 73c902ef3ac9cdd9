package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/deppfellow/people-api/internal/config"
	"github.com/deppfellow/people-api/internal/database"
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func newTestService(t *testing.T) (*PersonService, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("PEOPLE_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("PEOPLE_TEST_DATABASE_URL not set, skipping database tests")
	}

	ctx := context.Background()
	logger := zerolog.Nop()
	cfg := &config.Config{Database: config.DatabaseConfig{URL: dsn}}
	assert.NilError(t, database.Migrate(ctx, &logger, cfg))

	pool, err := pgxpool.New(ctx, dsn)
	assert.NilError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, "TRUNCATE people RESTART IDENTITY")
	assert.NilError(t, err)

	return NewPersonService(pool, repository.NewPersonRepository(), &logger), pool
}

func TestPersonLifecycle(t *testing.T) {
	svc, pool := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, model.PersonFields{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Age:        36,
		Profession: "Mathematician",
		Salary:     1000,
	})
	assert.NilError(t, err)

	updated, err := svc.Update(ctx, created.ID, model.PersonFields{
		FirstName:  "Ada",
		LastName:   "King",
		Age:        36,
		Profession: "Countess",
		Salary:     1500,
	})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(updated.LastName, "King"))

	people, err := svc.List(ctx)
	assert.NilError(t, err)
	assert.Check(t, is.DeepEqual(people, []model.Person{updated}))

	assert.NilError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	assert.Check(t, errors.Is(err, pgx.ErrNoRows), "got %v", err)

	_, err = svc.Get(ctx, created.ID)
	assert.Check(t, errors.Is(err, pgx.ErrNoRows), "got %v", err)

	// Every borrowed connection went back to the pool.
	assert.Check(t, is.Equal(pool.Stat().AcquiredConns(), int32(0)))
}

func TestListEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	people, err := svc.List(context.Background())
	assert.NilError(t, err)
	assert.Check(t, people != nil)
	assert.Check(t, is.Len(people, 0))
}
