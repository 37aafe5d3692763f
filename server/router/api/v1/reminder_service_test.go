package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/hrygo/laddoo/internal/errors"
	"github.com/hrygo/laddoo/internal/profile"
	"github.com/hrygo/laddoo/server/service/reminder"
	"github.com/hrygo/laddoo/store"
	"github.com/hrygo/laddoo/store/db/memory"
)

// testNow is Friday, May 1st 2026 at 10:00.
var testNow = time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*echo.Echo, *store.Store) {
	t.Helper()
	p := &profile.Profile{Mode: "dev", Driver: "memory"}
	st := store.New(memory.NewDB())
	svc := reminder.NewService(st,
		reminder.WithClock(func() time.Time { return testNow }),
		reminder.WithLocation(time.UTC),
	)

	e := echo.New()
	NewAPIV1Service(p, svc).RegisterRoutes(e)
	return e, st
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestParseTime(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/v1/parse/time", `{"text": "three forty five p.m."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hour": 15, "minute": 45}`, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/api/v1/parse/time", `{"text": "whenever"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, rerrors.ErrCodeNotRecognized, decodeError(t, rec).Code)
}

func TestParseDate(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/v1/parse/date", `{"text": "June 2nd"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"month": "June", "day": 2}`, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/api/v1/parse/date", `{"text": "the 31st of nothing"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReminder(t *testing.T) {
	e, st := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/v1/reminders",
		`{"date": "june 2", "time": "3 30 pm", "content": "call mom", "recurrence": "weekly"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"key": "2026-06-02 15:30", "content": "call mom", "recurrence": "weekly"}`, rec.Body.String())

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   rerrors.ErrorCode
	}{
		{
			name:       "duplicate",
			body:       `{"date": "june 2", "time": "3 30 pm", "content": "call dad"}`,
			wantStatus: http.StatusConflict,
			wantCode:   rerrors.ErrCodeDuplicateKey,
		},
		{
			name:       "past",
			body:       `{"date": "april 1", "time": "9 am", "content": "late"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   rerrors.ErrCodePastInstant,
		},
		{
			name:       "no such date",
			body:       `{"date": "june 31", "time": "9 am", "content": "nope"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   rerrors.ErrCodeInvalid,
		},
		{
			name:       "unknown recurrence",
			body:       `{"date": "june 3", "time": "9 am", "content": "x", "recurrence": "hourly"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   rerrors.ErrCodeInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/api/v1/reminders", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}

	list, err := st.ListReminders(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "call mom", list[0].Content)
}

func TestListUpcomingReminders(t *testing.T) {
	e, st := newTestServer(t)
	ctx := context.Background()
	for _, r := range []*store.Reminder{
		{Key: "2026-04-01 09:00", Content: "expired", Recurrence: "once"},
		{Key: "2026-04-30 11:00", Content: "stand-up", Recurrence: "daily"},
		{Key: "2026-06-02 15:30", Content: "call mom", Recurrence: "weekly"},
	} {
		_, err := st.UpsertReminder(ctx, r)
		require.NoError(t, err)
	}

	rec := doRequest(e, http.MethodGet, "/api/v1/reminders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []OccurrenceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []OccurrenceResponse{
		{
			At:          "2026-05-01 11:00",
			Key:         "2026-04-30 11:00",
			Content:     "stand-up",
			Recurrence:  "daily",
			Description: "stand-up on Friday, May 01 at 11:00 AM, repeating daily",
		},
		{
			At:          "2026-06-02 15:30",
			Key:         "2026-06-02 15:30",
			Content:     "call mom",
			Recurrence:  "weekly",
			Description: "call mom on Tuesday, June 02 at 03:30 PM, repeating weekly",
		},
	}, got)
}

func TestSearchAndDeleteReminder(t *testing.T) {
	e, st := newTestServer(t)
	_, err := st.UpsertReminder(context.Background(), &store.Reminder{Key: "2026-06-02 15:30", Content: "Call Mom", Recurrence: "once"})
	require.NoError(t, err)

	rec := doRequest(e, http.MethodGet, "/api/v1/reminders/search?q=mom", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"key": "2026-06-02 15:30", "content": "Call Mom", "recurrence": "once"}]`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/api/v1/reminders/search", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/api/v1/reminders/2026-06-02%2015:30", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/api/v1/reminders/2026-06-02%2015:30", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, rerrors.ErrCodeNotFound, decodeError(t, rec).Code)
}

func TestGetReminderFeed(t *testing.T) {
	e, st := newTestServer(t)
	_, err := st.UpsertReminder(context.Background(), &store.Reminder{Key: "2026-06-02 15:30", Content: "call mom", Recurrence: "weekly"})
	require.NoError(t, err)

	rec := doRequest(e, http.MethodGet, "/api/v1/reminders/feed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/atom+xml")

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Laddoo reminders</title>")
	assert.Contains(t, body, "<title>call mom</title>")
	assert.Contains(t, body, "call mom on Tuesday, June 02 at 03:30 PM, repeating weekly")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, httpStatus(rerrors.ErrCodeNotRecognized))
	assert.Equal(t, http.StatusBadRequest, httpStatus(rerrors.ErrCodeInvalid))
	assert.Equal(t, http.StatusBadRequest, httpStatus(rerrors.ErrCodePastInstant))
	assert.Equal(t, http.StatusConflict, httpStatus(rerrors.ErrCodeDuplicateKey))
	assert.Equal(t, http.StatusNotFound, httpStatus(rerrors.ErrCodeNotFound))
	assert.Equal(t, http.StatusInternalServerError, httpStatus(rerrors.ErrCodeStorage))
}
