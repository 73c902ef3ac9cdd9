package router

import (
	"net/http"

	"github.com/deppfellow/people-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerPersonRoutes(g *echo.Group, h *handler.Handlers) {
	p := h.Person

	g.GET("", handler.Handle(p.Handler, p.ListPeople, http.StatusOK))
	g.POST("", handler.Handle(p.Handler, p.CreatePerson, http.StatusCreated))
	g.GET("/:id", handler.Handle(p.Handler, p.GetPerson, http.StatusOK))
	g.PUT("/:id", handler.Handle(p.Handler, p.UpdatePerson, http.StatusOK))
	g.DELETE("/:id", handler.HandleNoContent(p.Handler, p.DeletePerson, http.StatusNoContent))
}
