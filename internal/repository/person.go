package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/people-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const personColumns = "id, first_name, last_name, age, profession, salary"

// PersonRepository runs the people table statements.
type PersonRepository struct{}

func NewPersonRepository() *PersonRepository {
	return &PersonRepository{}
}

// All returns every person ordered by id. The slice is never nil.
func (r *PersonRepository) All(ctx context.Context, db DBTX) ([]model.Person, error) {
	rows, err := db.Query(ctx, `SELECT `+personColumns+` FROM people ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}

	people, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Person])
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}

	return people, nil
}

// Get returns the person with the given id. The error wraps pgx.ErrNoRows
// when there is none.
func (r *PersonRepository) Get(ctx context.Context, db DBTX, id int64) (model.Person, error) {
	rows, err := db.Query(ctx, `SELECT `+personColumns+` FROM people WHERE id = $1`, id)
	if err != nil {
		return model.Person{}, fmt.Errorf("get person %d: %w", id, err)
	}

	person, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Person])
	if err != nil {
		return model.Person{}, fmt.Errorf("get person %d: %w", id, err)
	}

	return person, nil
}

// Insert stores a new person and returns it with the generated id.
func (r *PersonRepository) Insert(ctx context.Context, db DBTX, fields model.PersonFields) (model.Person, error) {
	rows, err := db.Query(ctx, `
		INSERT INTO people (first_name, last_name, age, profession, salary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+personColumns,
		fields.FirstName,
		fields.LastName,
		fields.Age,
		fields.Profession,
		fields.Salary,
	)
	if err != nil {
		return model.Person{}, fmt.Errorf("insert person: %w", err)
	}

	person, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Person])
	if err != nil {
		return model.Person{}, fmt.Errorf("insert person: %w", err)
	}

	return person, nil
}

// Update replaces every mutable field of the person with the given id and
// returns the stored row. The error wraps pgx.ErrNoRows when there is none.
func (r *PersonRepository) Update(ctx context.Context, db DBTX, id int64, fields model.PersonFields) (model.Person, error) {
	rows, err := db.Query(ctx, `
		UPDATE people
		SET first_name = $2, last_name = $3, age = $4, profession = $5, salary = $6
		WHERE id = $1
		RETURNING `+personColumns,
		id,
		fields.FirstName,
		fields.LastName,
		fields.Age,
		fields.Profession,
		fields.Salary,
	)
	if err != nil {
		return model.Person{}, fmt.Errorf("update person %d: %w", id, err)
	}

	person, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Person])
	if err != nil {
		return model.Person{}, fmt.Errorf("update person %d: %w", id, err)
	}

	return person, nil
}

// Delete removes the person with the given id and returns the number of
// rows removed (0 or 1).
func (r *PersonRepository) Delete(ctx context.Context, db DBTX, id int64) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete person %d: %w", id, err)
	}

	return tag.RowsAffected(), nil
}
