package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkosyk/course-catalog-api/internal/application"
	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
	"github.com/vkosyk/course-catalog-api/internal/infrastructure/filestore"
	handlers "github.com/vkosyk/course-catalog-api/internal/interface/http"
	"github.com/vkosyk/course-catalog-api/internal/router/modules"
	"github.com/vkosyk/course-catalog-api/pkg/helpers"
	"github.com/vkosyk/course-catalog-api/pkg/validation"
)

type envelope struct {
	Status  int               `json:"status"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Meta    map[string]any    `json:"meta"`
	Error   map[string]string `json:"error"`
}

type testEnv struct {
	router  *gin.Engine
	courses *filestore.CourseRepository
	users   *filestore.UserRepository
	apps    *filestore.ApplicationRepository
	jwt     *helpers.JWTManager
	admin   *entity.User
	user    *entity.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	dataDir := t.TempDir()
	courses := filestore.NewCourseRepository(dataDir)
	users := filestore.NewUserRepository(dataDir)
	apps := filestore.NewApplicationRepository(dataDir, filestore.FormatJSON)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	cookies := helpers.NewCookie("localhost", false)

	courseSvc := application.NewCourseService(courses, logger)
	authSvc := application.NewAuthService(users, jwt, logger)
	appSvc := application.NewApplicationService(apps, courses, logger)
	uploadSvc := application.NewUploadService(users, t.TempDir(), logger)

	r := gin.New()
	api := r.Group("/api")
	modules.NewCatalogModule(handlers.NewCourseHandler(courseSvc, logger), jwt, cookies).Register(api)
	modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, cookies), jwt, cookies).Register(api)
	modules.NewApplicationModule(handlers.NewApplicationHandler(appSvc, logger), jwt, cookies).Register(api)
	modules.NewUploadModule(handlers.NewUploadHandler(uploadSvc, logger), jwt, cookies).Register(api)

	env := &testEnv{router: r, courses: courses, users: users, apps: apps, jwt: jwt}

	adminHash, userHash := fixtureHashes(t)
	env.admin = &entity.User{Name: "Адміністратор", Email: "admin@example.com", PasswordHash: adminHash, Role: entity.RoleAdmin}
	require.NoError(t, users.Create(env.admin))
	env.user = &entity.User{Name: "Демо", Email: "demo@example.com", PasswordHash: userHash, Role: entity.RoleUser}
	require.NoError(t, users.Create(env.user))

	return env
}

var hashOnce sync.Once
var adminFixtureHash, userFixtureHash string

// bcrypt is deliberately slow, so the fixture hashes are computed once
// for the whole package.
func fixtureHashes(t *testing.T) (string, string) {
	t.Helper()
	hashOnce.Do(func() {
		var err error
		adminFixtureHash, err = helpers.HashPassword("admin12345")
		require.NoError(t, err)
		userFixtureHash, err = helpers.HashPassword("password123")
		require.NoError(t, err)
	})
	return adminFixtureHash, userFixtureHash
}

func (e *testEnv) do(t *testing.T, method, path string, body any, as *entity.User) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if as != nil {
		token, _, err := e.jwt.GenerateSessionToken(as)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func (e *testEnv) seedCourses(t *testing.T, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		c := &entity.Course{
			Title:      fmt.Sprintf("Курс %02d", i+1),
			Category:   "programming",
			Price:      float64(1000 + i*100),
			Popularity: 50,
			Tags:       []string{"Go"},
		}
		require.NoError(t, e.courses.Create(c))
		ids = append(ids, c.ID)
	}
	return ids
}

func TestListCoursesPagination(t *testing.T) {
	e := newTestEnv(t)
	e.seedCourses(t, 12)

	w, env := e.do(t, http.MethodGet, "/api/courses?limit=9", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []entity.Course
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 9)
	assert.EqualValues(t, 12, env.Meta["total"])
	assert.EqualValues(t, 2, env.Meta["total_pages"])

	_, env = e.do(t, http.MethodGet, "/api/courses?limit=9&page=2", nil, nil)
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 3)
}

func TestListCoursesHugePageReturnsEmpty(t *testing.T) {
	e := newTestEnv(t)
	e.seedCourses(t, 2)

	w, env := e.do(t, http.MethodGet, "/api/courses?page=4611686018427387904&limit=3", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []entity.Course
	if len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, &items))
	}
	assert.Empty(t, items)
	assert.EqualValues(t, 2, env.Meta["total"])
}

func TestListCoursesFilterByTag(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, e.courses.Create(&entity.Course{Title: "Бекенд", Tags: []string{"Python", "backend"}}))
	require.NoError(t, e.courses.Create(&entity.Course{Title: "Фронтенд", Tags: []string{"React"}}))

	w, env := e.do(t, http.MethodGet, "/api/courses?query=python", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []entity.Course
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Бекенд", items[0].Title)
}

func TestGetCourseNotFound(t *testing.T) {
	e := newTestEnv(t)
	w, _ := e.do(t, http.MethodGet, "/api/courses/12345", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCourseRequiresAdmin(t *testing.T) {
	e := newTestEnv(t)
	body := gin.H{"title": "Новий курс", "price": 1000}

	w, _ := e.do(t, http.MethodPost, "/api/courses", body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = e.do(t, http.MethodPost, "/api/courses", body, e.user)
	assert.Equal(t, http.StatusForbidden, w.Code)

	list, err := e.courses.All()
	require.NoError(t, err)
	assert.Empty(t, list, "forbidden create must not leave a record")
}

func TestCreateCourseAsAdmin(t *testing.T) {
	e := newTestEnv(t)

	w, env := e.do(t, http.MethodPost, "/api/courses", gin.H{"title": "Новий курс", "price": 1500, "tags": []string{"Go"}}, e.admin)
	require.Equal(t, http.StatusCreated, w.Code)

	var created entity.Course
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Новий курс", created.Title)

	// Zero price is valid: required means present, not non-zero.
	w, _ = e.do(t, http.MethodPost, "/api/courses", gin.H{"title": "Безкоштовний", "price": 0}, e.admin)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateCourseValidationMap(t *testing.T) {
	e := newTestEnv(t)

	w, env := e.do(t, http.MethodPost, "/api/courses", gin.H{"popularity": 200}, e.admin)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "title")
	assert.Contains(t, env.Error, "price")
	assert.Contains(t, env.Error, "popularity")
}

func TestPatchCourseUpdatesOnlyProvidedFields(t *testing.T) {
	e := newTestEnv(t)
	ids := e.seedCourses(t, 1)

	w, env := e.do(t, http.MethodPatch, fmt.Sprintf("/api/courses/%d", ids[0]), gin.H{"price": 9999}, e.admin)
	require.Equal(t, http.StatusOK, w.Code)

	var updated entity.Course
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 9999.0, updated.Price)
	assert.Equal(t, "Курс 01", updated.Title)
}

func TestPatchMissingCourse(t *testing.T) {
	e := newTestEnv(t)
	w, _ := e.do(t, http.MethodPatch, "/api/courses/777", gin.H{"price": 1}, e.admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCourse(t *testing.T) {
	e := newTestEnv(t)
	ids := e.seedCourses(t, 2)

	w, _ := e.do(t, http.MethodDelete, fmt.Sprintf("/api/courses/%d", ids[0]), nil, e.admin)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = e.do(t, http.MethodGet, fmt.Sprintf("/api/courses/%d", ids[0]), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMissingCourseLeavesCollectionUnchanged(t *testing.T) {
	e := newTestEnv(t)
	e.seedCourses(t, 2)

	w, _ := e.do(t, http.MethodDelete, "/api/courses/424242", nil, e.admin)
	assert.Equal(t, http.StatusNotFound, w.Code)

	list, err := e.courses.All()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	e := newTestEnv(t)

	w, env := e.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "demo@example.com", "password": "password123"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == helpers.SessionCookieName {
			session = c
		}
	}
	require.NotNil(t, session, "login must set the session cookie")
	assert.True(t, session.HttpOnly)
	assert.NotEmpty(t, session.Value)

	var identity map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &identity))
	assert.Equal(t, "demo@example.com", identity["email"])
	assert.Equal(t, "user", identity["role"])
}

func TestLoginFailureBodyIsGeneric(t *testing.T) {
	e := newTestEnv(t)

	w1, env1 := e.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "demo@example.com", "password": "wrong-password"}, nil)
	w2, env2 := e.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "ghost@example.com", "password": "wrong-password"}, nil)

	assert.Equal(t, http.StatusUnauthorized, w1.Code)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
	// Identical message whether or not the email exists.
	assert.Equal(t, env1.Message, env2.Message)
	assert.Equal(t, env1.Error, env2.Error)
}

func TestMeReturnsIdentity(t *testing.T) {
	e := newTestEnv(t)

	w, env := e.do(t, http.MethodGet, "/api/me", nil, e.user)
	require.Equal(t, http.StatusOK, w.Code)

	var identity map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &identity))
	assert.EqualValues(t, e.user.ID, identity["id"])
}

func TestExpiredSessionRejectedAndCookieCleared(t *testing.T) {
	e := newTestEnv(t)

	expired := &helpers.JWTManager{Secret: []byte("test-secret"), SessionTTL: -time.Minute}
	token, _, err := expired.GenerateSessionToken(e.user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == helpers.SessionCookieName && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "expired session must instruct the client to drop the cookie")
}

func TestLogoutClearsCookie(t *testing.T) {
	e := newTestEnv(t)

	w, _ := e.do(t, http.MethodPost, "/api/auth/logout", nil, e.user)
	require.Equal(t, http.StatusOK, w.Code)

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == helpers.SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestSubmitApplicationValidationMap(t *testing.T) {
	e := newTestEnv(t)

	w, env := e.do(t, http.MethodPost, "/api/applications", gin.H{"fullName": "A", "email": "not-an-email", "note": strings.Repeat("x", 1001)}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	// The map is complete, not first-error-only.
	assert.Contains(t, env.Error, "fullName")
	assert.Contains(t, env.Error, "email")
	assert.Contains(t, env.Error, "courseId")
	assert.Contains(t, env.Error, "note")
}

func TestSubmitApplicationUnknownCourse(t *testing.T) {
	e := newTestEnv(t)

	w, env := e.do(t, http.MethodPost, "/api/applications", gin.H{"fullName": "Олена Шевченко", "email": "olena@example.com", "courseId": 31337}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "courseId")
}

func TestSubmitAndListApplications(t *testing.T) {
	e := newTestEnv(t)
	ids := e.seedCourses(t, 1)

	w, _ := e.do(t, http.MethodPost, "/api/applications", gin.H{"fullName": "Олена Шевченко", "email": "olena@example.com", "courseId": ids[0], "note": "вечірня група"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Listing is admin-only.
	w, _ = e.do(t, http.MethodGet, "/api/applications", nil, e.user)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := e.do(t, http.MethodGet, "/api/applications", nil, e.admin)
	require.Equal(t, http.StatusOK, w.Code)
	var list []entity.Application
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, ids[0], list[0].CourseID)
}

func TestUploadAvatar(t *testing.T) {
	e := newTestEnv(t)

	png := make([]byte, 256)
	copy(png, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("avatar", "face.png")
	require.NoError(t, err)
	_, err = fw.Write(png)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	token, _, err := e.jwt.GenerateSessionToken(e.user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/uploads/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	u, err := e.users.GetByID(e.user.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u.AvatarURL, "/uploads/avatars/"))
}

func TestUploadAvatarRejectsNonImage(t *testing.T) {
	e := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("avatar", "notes.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("plain text, not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	token, _, err := e.jwt.GenerateSessionToken(e.user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/uploads/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	u, err := e.users.GetByID(e.user.ID)
	require.NoError(t, err)
	assert.Empty(t, u.AvatarURL)
}
