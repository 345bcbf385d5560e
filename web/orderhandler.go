package web

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"seroter.com/orderconsole/model"
	"seroter.com/orderconsole/responses"
)

// ConsoleAction is the JSON flavour of Submit: the body is a model.State
// and the reply carries the next one.
func (h *Handler) ConsoleAction(c echo.Context) error {
	action := c.Param("action")

	var s model.State
	if err := (&echo.DefaultBinder{}).BindBody(c, &s); err != nil {
		return c.JSON(http.StatusBadRequest, responses.ConsoleResponse{Status: http.StatusBadRequest, Message: err.Error()})
	}

	next, ok := h.run(c, action, s)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.ConsoleResponse{Status: http.StatusBadRequest, Message: fmt.Sprintf("Unknown action %q", action)})
	}
	return c.JSON(http.StatusOK, responses.ConsoleResponse{Status: http.StatusOK, Message: next.Flash, Data: &next})
}
