package handler

import (
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
)

// Handlers groups all HTTP handlers so the router receives them as one value.
type Handlers struct {
	Health *HealthHandler
	Person *PersonHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Person: NewPersonHandler(s, services.Person),
	}
}
