package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/campushelper/backend/core/activity"
	"github.com/campushelper/backend/core/user"
	testutil "github.com/campushelper/backend/tests"
)

type dashboard struct {
	TotalStudents  int                 `json:"totalStudents"`
	TotalSchools   int                 `json:"totalSchools"`
	RecentLogins   int                 `json:"recentLogins"`
	SupportTickets int                 `json:"supportTickets"`
	RecentActivity []activity.Activity `json:"recentActivity"`
	Registrations  []struct {
		Month string `json:"month"`
		Users int    `json:"users"`
	} `json:"userRegistrations"`
}

func Test_adminApi_dashboard(t *testing.T) {
	student := testutil.CreateUser(t, usrRepo, "dashstudent@test.cd", "secret1", user.RoleStudent)
	school := testutil.CreateUser(t, usrRepo, "dashschool@test.cd", "secret1", user.RoleSchool)
	admin := testutil.CreateUser(t, usrRepo, "dashadmin@test.cd", "secret1", user.RoleAdmin)

	tests := []httpTest{
		{name: "auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "student forbidden", token: getToken(t, student),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "school forbidden", token: getToken(t, school),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/api/admin/dashboard", tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("admin gets the dashboard", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/api/admin/dashboard", getToken(t, admin))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}

		var d dashboard
		if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
			t.Fatalf("unmarshalling dashboard: %v", err)
		}
		// fixtures are shared across the package, so only lower bounds hold
		if d.TotalStudents < 1 {
			t.Errorf("totalStudents = %d, want >= 1", d.TotalStudents)
		}
		if d.TotalSchools < 1 {
			t.Errorf("totalSchools = %d, want >= 1", d.TotalSchools)
		}
		if d.SupportTickets != 12 {
			t.Errorf("supportTickets = %d, want 12", d.SupportTickets)
		}
		if len(d.RecentActivity) > 5 {
			t.Errorf("recentActivity len = %d, want <= 5", len(d.RecentActivity))
		}
		if len(d.Registrations) == 0 {
			t.Error("userRegistrations is empty")
		}
		for _, reg := range d.Registrations {
			if len(reg.Month) != 3 {
				t.Errorf("month = %q, want a short month name", reg.Month)
			}
			if reg.Users < 1 {
				t.Errorf("month %s has %d users, want >= 1", reg.Month, reg.Users)
			}
		}
	})
}
