package v1

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hrygo/laddoo/internal/profile"
	ratelimit "github.com/hrygo/laddoo/server/middleware"
	"github.com/hrygo/laddoo/server/service/reminder"
)

type APIV1Service struct {
	Profile   *profile.Profile
	Reminders reminder.Service

	rateLimiter *ratelimit.RateLimiter
}

func NewAPIV1Service(profile *profile.Profile, reminders reminder.Service) *APIV1Service {
	return &APIV1Service{
		Profile:     profile,
		Reminders:   reminders,
		rateLimiter: ratelimit.NewRateLimiter(ratelimit.DefaultRate, ratelimit.DefaultBurst),
	}
}

// RegisterRoutes registers the REST handlers with the given Echo instance.
func (s *APIV1Service) RegisterRoutes(echoServer *echo.Echo) {
	apiGroup := echoServer.Group("/api/v1")
	apiGroup.Use(middleware.CORS(), s.rateLimiter.Middleware())

	apiGroup.POST("/parse/time", s.ParseTime)
	apiGroup.POST("/parse/date", s.ParseDate)

	apiGroup.POST("/reminders", s.CreateReminder)
	apiGroup.GET("/reminders", s.ListUpcomingReminders)
	apiGroup.GET("/reminders/search", s.SearchReminders)
	apiGroup.GET("/reminders/feed", s.GetReminderFeed)
	apiGroup.DELETE("/reminders/:key", s.DeleteReminder)
}
