package v1

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/feeds"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const maxFeedItems = 50

// GetReminderFeed renders upcoming reminders as an Atom feed.
// GET /api/v1/reminders/feed
func (s *APIV1Service) GetReminderFeed(c echo.Context) error {
	upcoming, err := s.Reminders.Upcoming(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	baseURL := c.Scheme() + "://" + c.Request().Host
	feed := &feeds.Feed{
		Title:       "Laddoo reminders",
		Link:        &feeds.Link{Href: baseURL + "/api/v1/reminders"},
		Description: "Upcoming reminders",
		Created:     time.Now(),
	}

	for i, o := range upcoming {
		if i == maxFeedItems {
			break
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          baseURL + "/api/v1/reminders/" + url.PathEscape(o.Key),
			Title:       o.Content,
			Link:        &feeds.Link{Href: baseURL + "/api/v1/reminders/search?q=" + url.QueryEscape(o.Content)},
			Description: o.Describe(),
			Created:     o.At,
		})
	}

	atom, err := feed.ToAtom()
	if err != nil {
		return respondError(c, errors.Wrap(err, "failed to render feed"))
	}
	return c.Blob(http.StatusOK, "application/atom+xml; charset=utf-8", []byte(atom))
}
