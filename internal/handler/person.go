package handler

import (
	"context"
	"strconv"

	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/sqlerr"
	"github.com/labstack/echo/v4"
)

// personEntity names the resource in 404 messages.
const personEntity = "person"

// PersonService is what the person endpoints need from the service layer.
// Missing people are reported as errors wrapping pgx.ErrNoRows.
type PersonService interface {
	List(ctx context.Context) ([]model.Person, error)
	Get(ctx context.Context, id int64) (model.Person, error)
	Create(ctx context.Context, fields model.PersonFields) (model.Person, error)
	Update(ctx context.Context, id int64, fields model.PersonFields) (model.Person, error)
	Delete(ctx context.Context, id int64) error
}

type PersonHandler struct {
	Handler
	personService PersonService
}

func NewPersonHandler(s *server.Server, personService PersonService) *PersonHandler {
	return &PersonHandler{
		Handler:       NewHandler(s),
		personService: personService,
	}
}

func (h *PersonHandler) ListPeople(c echo.Context, _ *model.ListPeopleRequest) ([]model.Person, error) {
	people, err := h.personService.List(c.Request().Context())
	if err != nil {
		return nil, sqlerr.HandleError(err, personEntity)
	}
	return people, nil
}

func (h *PersonHandler) GetPerson(c echo.Context, req *model.GetPersonRequest) (model.Person, error) {
	person, err := h.personService.Get(c.Request().Context(), req.ID)
	if err != nil {
		return model.Person{}, sqlerr.HandleError(err, personEntity)
	}
	return person, nil
}

// CreatePerson stores the person and points Location at its URL under the
// configured public base URL.
func (h *PersonHandler) CreatePerson(c echo.Context, req *model.CreatePersonRequest) (model.Person, error) {
	person, err := h.personService.Create(c.Request().Context(), req.PersonFields)
	if err != nil {
		return model.Person{}, sqlerr.HandleError(err, personEntity)
	}

	c.Response().Header().Set(echo.HeaderLocation, h.personURL(person.ID))

	return person, nil
}

func (h *PersonHandler) UpdatePerson(c echo.Context, req *model.UpdatePersonRequest) (model.Person, error) {
	person, err := h.personService.Update(c.Request().Context(), req.ID, req.PersonFields)
	if err != nil {
		return model.Person{}, sqlerr.HandleError(err, personEntity)
	}
	return person, nil
}

func (h *PersonHandler) DeletePerson(c echo.Context, req *model.DeletePersonRequest) error {
	if err := h.personService.Delete(c.Request().Context(), req.ID); err != nil {
		return sqlerr.HandleError(err, personEntity)
	}
	return nil
}

func (h *PersonHandler) personURL(id int64) string {
	return h.server.Config.Server.BaseURL() + "/people/" + strconv.FormatInt(id, 10)
}
