package service

import (
	"github.com/deppfellow/people-api/internal/repository"
	"github.com/deppfellow/people-api/internal/server"
)

type Services struct {
	Person *PersonService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	personService := NewPersonService(s.DB.Pool, repos.Person, s.Logger)

	return &Services{
		Person: personService,
	}, nil
}
