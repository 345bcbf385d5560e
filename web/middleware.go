package web

import (
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// LogMiddleware logs every request once it has been served.
func LogMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		res := c.Response()
		log.WithFields(log.Fields{
			"method":     req.Method,
			"uri":        req.RequestURI,
			"status":     res.Status,
			"latency":    time.Since(start).String(),
			"remoteAddr": c.RealIP(),
			"requestId":  res.Header().Get(echo.HeaderXRequestID),
		}).Info("served request")
		return nil
	}
}
