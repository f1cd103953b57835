package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	. "github.com/campushelper/backend/apps/api/echo"
	"github.com/campushelper/backend/core"
	"github.com/campushelper/backend/core/activity"
	"github.com/campushelper/backend/core/announcement"
	"github.com/campushelper/backend/core/lostfound"
	"github.com/campushelper/backend/core/post"
	"github.com/campushelper/backend/core/research"
	"github.com/campushelper/backend/core/tutor"
	"github.com/campushelper/backend/core/user"
	emailsvc "github.com/campushelper/backend/services/email"
	inmemdb "github.com/campushelper/backend/storage/database/inmem"
	testutil "github.com/campushelper/backend/tests"
)

var (
	conf    *core.Config
	app     Server
	usrRepo user.Repository
	actRepo activity.Repository

	errMissingToken  = httpErr{Message: "No token given"}
	errInvalidToken  = httpErr{Message: "Invalid token"}
	errForbidden     = httpErr{Message: "Forbidden"}
	errUserExists    = httpErr{Message: "User already exists"}
	errUserNotFound  = httpErr{Message: "User not found"}
	errWrongPassword = httpErr{Message: "Wrong password"}
)

func TestMain(m *testing.M) {
	conf = testutil.NewConfig()

	db := inmemdb.Open()
	usrRepo = inmemdb.NewUserRepository(db)
	actRepo = inmemdb.NewActivityRepository(db)

	mailSvc := emailsvc.NewConsoleServiceMock(conf)

	app = NewServer(
		"",  /* addr */
		nil, /* shutdown */
		&Deps{
			Conf:            conf,
			Logger:          testLogger{},
			UserSvc:         user.NewService(usrRepo, mailSvc, conf),
			PostSvc:         post.NewService(inmemdb.NewPostRepository(db)),
			TutorSvc:        tutor.NewService(inmemdb.NewTutorRepository(db)),
			LostFoundSvc:    lostfound.NewService(inmemdb.NewLostFoundRepository(db)),
			ResearchSvc:     research.NewService(inmemdb.NewResearchRepository(db)),
			AnnouncementSvc: announcement.NewService(inmemdb.NewAnnouncementRepository(db)),
			ActivitySvc:     activity.NewService(actRepo),
		},
	)

	os.Exit(m.Run())
}

// testLogger discards everything; API tests assert on responses, not logs.
type testLogger struct{}

func (testLogger) Debug(msg string, args ...interface{}) {}
func (testLogger) Info(msg string, args ...interface{})  {}
func (testLogger) Warn(msg string, args ...interface{})  {}
func (testLogger) Error(msg string, args ...interface{}) {}
func (testLogger) Fatal(msg string, args ...interface{}) {}

type httpErr struct {
	Message string `json:"message"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	t.Helper()
	token, err := GenerateToken(GetUserClaims(usr, conf), conf)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
