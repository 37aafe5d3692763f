package v1

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/hrygo/laddoo/plugin/aitime"
	"github.com/hrygo/laddoo/plugin/schedule"
	"github.com/hrygo/laddoo/server/service/reminder"
	"github.com/hrygo/laddoo/store"
)

// CreateReminderRequest is a reminder described by spoken phrases.
type CreateReminderRequest struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	Content    string `json:"content"`
	Recurrence string `json:"recurrence"`
}

// ReminderResponse is a stored reminder.
type ReminderResponse struct {
	Key        string `json:"key"`
	Content    string `json:"content"`
	Recurrence string `json:"recurrence"`
}

// OccurrenceResponse is the next occurrence of a reminder.
type OccurrenceResponse struct {
	At          string `json:"at"`
	Key         string `json:"key"`
	Content     string `json:"content"`
	Recurrence  string `json:"recurrence"`
	Description string `json:"description"`
}

func convertReminderFromStore(r *store.Reminder) *ReminderResponse {
	return &ReminderResponse{
		Key:        r.Key,
		Content:    r.Content,
		Recurrence: r.Recurrence,
	}
}

func convertOccurrence(o *reminder.Occurrence) *OccurrenceResponse {
	return &OccurrenceResponse{
		At:          aitime.FormatTimestamp(o.At).String(),
		Key:         o.Key,
		Content:     o.Content,
		Recurrence:  string(o.Recurrence),
		Description: o.Describe(),
	}
}

// CreateReminder resolves the spoken date and time and stores the reminder.
// POST /api/v1/reminders
func (s *APIV1Service) CreateReminder(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	key, err := s.Reminders.Resolve(ctx, req.Date, req.Time)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.Reminders.Add(ctx, &reminder.AddRequest{
		Key:        key,
		Content:    req.Content,
		Recurrence: schedule.Rule(req.Recurrence),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, convertReminderFromStore(created))
}

// ListUpcomingReminders returns the next occurrence of every reminder.
// GET /api/v1/reminders
func (s *APIV1Service) ListUpcomingReminders(c echo.Context) error {
	upcoming, err := s.Reminders.Upcoming(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	response := make([]*OccurrenceResponse, 0, len(upcoming))
	for _, o := range upcoming {
		response = append(response, convertOccurrence(o))
	}
	return c.JSON(http.StatusOK, response)
}

// SearchReminders returns reminders whose content contains q.
// GET /api/v1/reminders/search?q=
func (s *APIV1Service) SearchReminders(c echo.Context) error {
	matches, err := s.Reminders.Find(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return respondError(c, err)
	}

	response := make([]*ReminderResponse, 0, len(matches))
	for _, m := range matches {
		response = append(response, convertReminderFromStore(m))
	}
	return c.JSON(http.StatusOK, response)
}

// DeleteReminder deletes the reminder at key, e.g. "2026-06-02%2015:30".
// DELETE /api/v1/reminders/:key
func (s *APIV1Service) DeleteReminder(c echo.Context) error {
	key, err := url.PathUnescape(c.Param("key"))
	if err != nil {
		return bindError(c, err)
	}

	if err := s.Reminders.Remove(c.Request().Context(), key); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
