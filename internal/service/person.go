package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// PersonService runs person operations against the pool. Every call borrows
// one connection for its whole duration and hands it back on every path.
type PersonService struct {
	pool   *pgxpool.Pool
	repo   *repository.PersonRepository
	logger *zerolog.Logger
}

func NewPersonService(pool *pgxpool.Pool, repo *repository.PersonRepository, logger *zerolog.Logger) *PersonService {
	return &PersonService{
		pool:   pool,
		repo:   repo,
		logger: logger,
	}
}

// withConn acquires a pooled connection, runs fn on it and releases it.
func (s *PersonService) withConn(ctx context.Context, fn func(conn *pgxpool.Conn) error) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	return fn(conn)
}

func (s *PersonService) List(ctx context.Context) ([]model.Person, error) {
	var people []model.Person
	err := s.withConn(ctx, func(conn *pgxpool.Conn) error {
		var err error
		people, err = s.repo.All(ctx, conn)
		return err
	})
	if err != nil {
		return nil, err
	}

	return people, nil
}

func (s *PersonService) Get(ctx context.Context, id int64) (model.Person, error) {
	var person model.Person
	err := s.withConn(ctx, func(conn *pgxpool.Conn) error {
		var err error
		person, err = s.repo.Get(ctx, conn, id)
		return err
	})

	return person, err
}

func (s *PersonService) Create(ctx context.Context, fields model.PersonFields) (model.Person, error) {
	var person model.Person
	err := s.withConn(ctx, func(conn *pgxpool.Conn) error {
		var err error
		person, err = s.repo.Insert(ctx, conn, fields)
		return err
	})
	if err != nil {
		return model.Person{}, err
	}

	s.logger.Info().Int64("person_id", person.ID).Msg("person created")

	return person, nil
}

// Update replaces the stored fields of person id. The error wraps
// pgx.ErrNoRows when there is no such person.
func (s *PersonService) Update(ctx context.Context, id int64, fields model.PersonFields) (model.Person, error) {
	var person model.Person
	err := s.withConn(ctx, func(conn *pgxpool.Conn) error {
		var err error
		person, err = s.repo.Update(ctx, conn, id, fields)
		return err
	})

	return person, err
}

// Delete looks the person up first and then removes it, both on the same
// connection. A person that vanishes between the two statements is reported
// as not found.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	return s.withConn(ctx, func(conn *pgxpool.Conn) error {
		if _, err := s.repo.Get(ctx, conn, id); err != nil {
			return err
		}

		removed, err := s.repo.Delete(ctx, conn, id)
		if err != nil {
			return err
		}
		if removed == 0 {
			return fmt.Errorf("delete person %d: %w", id, pgx.ErrNoRows)
		}

		s.logger.Info().Int64("person_id", id).Msg("person deleted")

		return nil
	})
}
