package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/campushelper/backend/core/post"
	"github.com/campushelper/backend/core/tutor"
	"github.com/campushelper/backend/core/user"
	testutil "github.com/campushelper/backend/tests"
)

func Test_postApi(t *testing.T) {
	student := testutil.CreateUser(t, usrRepo, "poster@test.cd", "secret1", user.RoleStudent)
	other := testutil.CreateUser(t, usrRepo, "otherposter@test.cd", "secret1", user.RoleStudent)
	admin := testutil.CreateUser(t, usrRepo, "postadmin@test.cd", "secret1", user.RoleAdmin)

	studentToken := getToken(t, student)
	body, _ := json.Marshal(map[string]string{"title": "Selling textbooks", "body": "DM me"})

	t.Run("create requires auth", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		req, rec := newRequest(http.MethodPost, "/api/post", body)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	var created post.Post
	t.Run("create", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/api/post", studentToken, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("unmarshalling post: %v", err)
		}
		if created.OwnerID != student.ID {
			t.Errorf("ownerID = %s, want %s", created.OwnerID, student.ID)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/api/post", studentToken, []byte(`{"body": "no title"}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("mine only returns own posts", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/api/post/me", getToken(t, other))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
		var posts []post.Post
		if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
			t.Fatalf("unmarshalling posts: %v", err)
		}
		for _, p := range posts {
			if p.OwnerID != other.ID {
				t.Errorf("got post owned by %s", p.OwnerID)
			}
		}
	})

	t.Run("all is admin only", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}
		req, rec := newAuthRequest(http.MethodGet, "/api/post/all", studentToken)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("all includes owner email", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/api/post/all", getToken(t, admin))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
		var posts []post.Post
		if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
			t.Fatalf("unmarshalling posts: %v", err)
		}
		found := false
		for _, p := range posts {
			if p.ID == created.ID {
				found = true
				if p.OwnerEmail != student.Email {
					t.Errorf("ownerEmail = %s, want %s", p.OwnerEmail, student.Email)
				}
			}
		}
		if !found {
			t.Error("created post missing from /api/post/all")
		}
	})
}

func Test_tutorApi(t *testing.T) {
	body, _ := json.Marshal(map[string]string{
		"name":  "Mr Banza",
		"unit":  "MAT101",
		"email": "banza@test.cd",
		"phone": "+243810000000",
	})

	t.Run("create is open", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/api/tutors", body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("list is open, newest first", func(t *testing.T) {
		second, _ := json.Marshal(map[string]string{
			"name":  "Mrs Kalala",
			"unit":  "PHY201",
			"email": "kalala@test.cd",
			"phone": "+243820000000",
		})
		req, rec := newRequest(http.MethodPost, "/api/tutors", second)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}

		req, rec = newRequest(http.MethodGet, "/api/tutors")
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
		var tutors []tutor.Tutor
		if err := json.Unmarshal(rec.Body.Bytes(), &tutors); err != nil {
			t.Fatalf("unmarshalling tutors: %v", err)
		}
		if len(tutors) < 2 {
			t.Fatalf("len = %d, want >= 2", len(tutors))
		}
		if tutors[0].Name != "Mrs Kalala" {
			t.Errorf("first tutor = %s, want the newest", tutors[0].Name)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		bad, _ := json.Marshal(map[string]string{"name": "X", "unit": "Y", "email": "nope", "phone": "1"})
		req, rec := newRequest(http.MethodPost, "/api/tutors", bad)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusBadRequest)
		}
	})
}

func Test_lostFoundApi(t *testing.T) {
	student := testutil.CreateUser(t, usrRepo, "finder@test.cd", "secret1", user.RoleStudent)
	token := getToken(t, student)
	body, _ := json.Marshal(map[string]string{"title": "Blue backpack", "description": "Left in the library"})

	tests := []httpTest{
		{
			name: "create requires auth", method: http.MethodPost, path: "/api/lostfound", body: body,
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "list requires auth", method: http.MethodGet, path: "/api/lostfound",
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("create and list", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/api/lostfound", token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}

		req, rec = newAuthRequest(http.MethodGet, "/api/lostfound", token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
	})
}

func Test_researchApi(t *testing.T) {
	student := testutil.CreateUser(t, usrRepo, "researcher@test.cd", "secret1", user.RoleStudent)
	token := getToken(t, student)
	body, _ := json.Marshal(map[string]string{
		"unit":        "CSC301",
		"title":       "Compilers survey",
		"description": "Notes and papers",
	})

	t.Run("create requires auth", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		req, rec := newRequest(http.MethodPost, "/api/research", body)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("create and list", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/api/research", token, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}

		req, rec = newAuthRequest(http.MethodGet, "/api/research", token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body = %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("missing unit", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/api/research", token, []byte(`{"title": "No unit"}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusBadRequest)
		}
	})
}

func Test_announcementApi(t *testing.T) {
	student := testutil.CreateUser(t, usrRepo, "annstudent@test.cd", "secret1", user.RoleStudent)
	school := testutil.CreateUser(t, usrRepo, "annschool@test.cd", "secret1", user.RoleSchool)
	admin := testutil.CreateUser(t, usrRepo, "annadmin@test.cd", "secret1", user.RoleAdmin)

	body, _ := json.Marshal(map[string]string{"title": "Exam week", "body": "Starts Monday."})

	tests := []httpTest{
		{
			name: "create requires auth", method: http.MethodPost, body: body,
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "student cannot create", method: http.MethodPost, body: body, token: getToken(t, student),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{name: "school can create", method: http.MethodPost, body: body, token: getToken(t, school), wantCode: http.StatusOK},
		{name: "admin can create", method: http.MethodPost, body: body, token: getToken(t, admin), wantCode: http.StatusOK},
		{name: "any authenticated user can read", method: http.MethodGet, token: getToken(t, student), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, "/api/announcements", tt.token, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantData == nil {
				if rec.Code != tt.wantCode {
					t.Errorf("failed! code = %v; wantCode %v; body = %s", rec.Code, tt.wantCode, rec.Body.String())
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}
