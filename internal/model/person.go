// Package model defines the person resource and the request payloads
// accepted by the API.
package model

import "github.com/deppfellow/people-api/internal/validation"

// Person is a row of the people table.
//
// ID is assigned by the database on insert and never changes afterwards.
// The db tags are the column names used by pgx.RowToStructByName.
type Person struct {
	ID         int64  `json:"id" db:"id"`
	FirstName  string `json:"first_name" db:"first_name"`
	LastName   string `json:"last_name" db:"last_name"`
	Age        int32  `json:"age" db:"age"`
	Profession string `json:"profession" db:"profession"`
	Salary     int32  `json:"salary" db:"salary"`
}

// PersonFields holds every mutable attribute of a Person. It is the
// insertable variant: what a client sends to create or replace a person.
type PersonFields struct {
	FirstName  string `json:"first_name" validate:"required,max=255"`
	LastName   string `json:"last_name" validate:"required,max=255"`
	Age        int32  `json:"age" validate:"min=0"`
	Profession string `json:"profession" validate:"max=255"`
	Salary     int32  `json:"salary" validate:"min=0"`
}

// ToPerson builds the Person these fields describe once stored under id.
func (f PersonFields) ToPerson(id int64) Person {
	return Person{
		ID:         id,
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Age:        f.Age,
		Profession: f.Profession,
		Salary:     f.Salary,
	}
}

// ListPeopleRequest is the (empty) payload of GET /people.
type ListPeopleRequest struct{}

func (r *ListPeopleRequest) Validate() error {
	return nil
}

// GetPersonRequest is the payload of GET /people/:id.
type GetPersonRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *GetPersonRequest) Validate() error {
	return validation.Struct(r)
}

// CreatePersonRequest is the payload of POST /people. An "id" in the body
// is ignored.
type CreatePersonRequest struct {
	PersonFields
}

func (r *CreatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// UpdatePersonRequest is the payload of PUT /people/:id. The id always
// comes from the path; an "id" in the body is ignored.
type UpdatePersonRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	PersonFields
}

func (r *UpdatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// DeletePersonRequest is the payload of DELETE /people/:id.
type DeletePersonRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *DeletePersonRequest) Validate() error {
	return validation.Struct(r)
}
