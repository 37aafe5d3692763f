package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ParseRequest carries a spoken phrase.
type ParseRequest struct {
	Text string `json:"text"`
}

// TimeResponse is a parsed time of day in 24-hour form.
type TimeResponse struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// DateResponse is a parsed calendar date.
type DateResponse struct {
	Month string `json:"month"`
	Day   int    `json:"day"`
}

// ParseTime parses a spoken time of day.
// POST /api/v1/parse/time
func (s *APIV1Service) ParseTime(c echo.Context) error {
	var req ParseRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	parsed, err := s.Reminders.ParseTime(c.Request().Context(), req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, TimeResponse{Hour: parsed.Hour, Minute: parsed.Minute})
}

// ParseDate parses a spoken calendar date.
// POST /api/v1/parse/date
func (s *APIV1Service) ParseDate(c echo.Context) error {
	var req ParseRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	parsed, err := s.Reminders.ParseDate(c.Request().Context(), req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, DateResponse{Month: parsed.Month.String(), Day: parsed.Day})
}
