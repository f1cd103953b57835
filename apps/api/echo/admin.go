package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core/activity"
	"github.com/campushelper/backend/core/user"
)

const (
	recentLoginsWindow  = 7 * 24 * time.Hour
	recentActivityLimit = 5
)

type (
	adminApi struct {
		usrSvc      *user.Service
		activitySvc *activity.Service
	}

	monthRegistrations struct {
		Month string `json:"month"`
		Users int    `json:"users"`
	}

	dashboardResponse struct {
		TotalStudents     int                  `json:"totalStudents"`
		TotalSchools      int                  `json:"totalSchools"`
		RecentLogins      int                  `json:"recentLogins"`
		SupportTickets    int                  `json:"supportTickets"`
		RecentActivity    []activity.Activity  `json:"recentActivity"`
		UserRegistrations []monthRegistrations `json:"userRegistrations"`
	}
)

func registerAdminAPI(g *echo.Group, jwt echo.MiddlewareFunc, usrSvc *user.Service, activitySvc *activity.Service) {
	api := adminApi{usrSvc: usrSvc, activitySvc: activitySvc}

	ag := g.Group("/admin", jwt, authorizeRoles(user.RoleAdmin))
	ag.GET("/dashboard", api.dashboard)
}

func (api *adminApi) dashboard(ctx echo.Context) error {
	rctx := ctx.Request().Context()

	totalStudents, err := api.usrSvc.CountByRole(rctx, user.RoleStudent)
	if err != nil {
		return errors.Wrap(err, "counting students")
	}
	totalSchools, err := api.usrSvc.CountByRole(rctx, user.RoleSchool)
	if err != nil {
		return errors.Wrap(err, "counting schools")
	}
	recentLogins, err := api.usrSvc.CountLoggedInSince(rctx, time.Now().UTC().Add(-recentLoginsWindow))
	if err != nil {
		return errors.Wrap(err, "counting recent logins")
	}
	recentActivity, err := api.activitySvc.Recent(rctx, recentActivityLimit)
	if err != nil {
		return errors.Wrap(err, "querying recent activity")
	}
	byMonth, err := api.usrSvc.RegistrationsByMonth(rctx)
	if err != nil {
		return errors.Wrap(err, "aggregating registrations")
	}

	registrations := make([]monthRegistrations, 0, len(byMonth))
	for _, mc := range byMonth {
		registrations = append(registrations, monthRegistrations{
			Month: mc.Month.String()[:3],
			Users: mc.Count,
		})
	}

	return ctx.JSON(http.StatusOK, dashboardResponse{
		TotalStudents:     totalStudents,
		TotalSchools:      totalSchools,
		RecentLogins:      recentLogins,
		SupportTickets:    12, // TODO: count from a real support-ticket collection once it exists
		RecentActivity:    recentActivity,
		UserRegistrations: registrations,
	})
}
