package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"seroter.com/orderconsole/client"
	"seroter.com/orderconsole/console"
	"seroter.com/orderconsole/model"
)

//go:embed templates/*.html
var templateFS embed.FS

type Template struct {
	Templates *template.Template
}

// NewTemplate parses the embedded console page.
func NewTemplate() (*Template, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Template{Templates: t}, nil
}

//implement echo interface
func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// Page is what the "home" template renders.
type Page struct {
	model.State
	Statuses []string
}

type Handler struct {
	actions map[string]console.Handler
}

func NewHandler(ctrl *console.Controller) *Handler {
	return &Handler{actions: ctrl.Handlers()}
}

// Register mounts the console routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.GetHome)
	e.POST("/", h.Submit)
	e.POST("/console/:action", h.ConsoleAction)
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
}

func renderHome(c echo.Context, s model.State) error {
	//passing in the template name (not file name)
	return c.Render(http.StatusOK, "home", Page{State: s, Statuses: model.Statuses})
}

func (h *Handler) GetHome(c echo.Context) error {
	return renderHome(c, model.State{})
}

// Submit runs the action named by the pressed button against the posted
// form and shows the page again with the result.
func (h *Handler) Submit(c echo.Context) error {
	var s model.State
	if err := c.Bind(&s); err != nil {
		log.WithError(err).Warn("bind console form")
		s.Flash = "Could not read the form."
		return renderHome(c, s)
	}

	action := c.FormValue("action")
	next, ok := h.run(c, action, s)
	if !ok {
		s.Flash = fmt.Sprintf("Unknown action %q", action)
		return renderHome(c, s)
	}
	return renderHome(c, next)
}

// requestID is the id set by middleware.RequestID, or the caller's own.
func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

func (h *Handler) run(c echo.Context, action string, s model.State) (model.State, bool) {
	handler, ok := h.actions[action]
	if !ok {
		return s, false
	}
	// Result tables only live for the action that produced them.
	s.Orders, s.Items = nil, nil
	return handler(client.WithRequestID(c.Request().Context(), requestID(c)), s), true
}
