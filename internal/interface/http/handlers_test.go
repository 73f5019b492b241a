package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrollhub/backend/internal/application"
	"github.com/enrollhub/backend/internal/domain/entity"
	repo "github.com/enrollhub/backend/internal/domain/repository"
	handlers "github.com/enrollhub/backend/internal/interface/http"
	"github.com/enrollhub/backend/internal/router"
	"github.com/enrollhub/backend/internal/router/modules"
	"github.com/enrollhub/backend/pkg/helpers"
	"github.com/enrollhub/backend/pkg/validation"
)

// In-memory repository fakes; the HTTP stack above them is the real one.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.users {
		if e.Email == u.Email {
			return repo.ErrConflict
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeCourseRepo struct {
	mu      sync.Mutex
	courses map[string]*entity.Course
}

func (f *fakeCourseRepo) Create(_ context.Context, c *entity.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = uuid.NewString()
	c.EnrolledStudents = []string{}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	cp.EnrolledStudents = append([]string(nil), c.EnrolledStudents...)
	f.courses[c.ID] = &cp
	return nil
}

func (f *fakeCourseRepo) List(_ context.Context) ([]*entity.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Course, 0, len(f.courses))
	for _, c := range f.courses {
		cp := *c
		cp.EnrolledStudents = append([]string(nil), c.EnrolledStudents...)
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id string) (*entity.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.courses[id]; ok {
		cp := *c
		cp.EnrolledStudents = append([]string(nil), c.EnrolledStudents...)
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeCourseRepo) Update(_ context.Context, c *entity.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.courses[c.ID]
	if !ok {
		return repo.ErrNotFound
	}
	stored.Title = c.Title
	stored.Description = c.Description
	stored.Instructor = c.Instructor
	return nil
}

func (f *fakeCourseRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.courses[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseRepo) ListByStudent(_ context.Context, userID string) ([]*entity.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Course, 0)
	for _, c := range f.courses {
		if c.HasStudent(userID) {
			cp := *c
			cp.EnrolledStudents = append([]string(nil), c.EnrolledStudents...)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) AddStudent(_ context.Context, courseID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.courses[courseID]
	if !ok {
		return repo.ErrNotFound
	}
	c.EnrolledStudents = append(c.EnrolledStudents, userID)
	return nil
}

func (f *fakeCourseRepo) RemoveStudent(_ context.Context, courseID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.courses[courseID]
	if !ok {
		return repo.ErrNotFound
	}
	kept := c.EnrolledStudents[:0]
	for _, id := range c.EnrolledStudents {
		if id != userID {
			kept = append(kept, id)
		}
	}
	c.EnrolledStudents = kept
	return nil
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) (*gin.Engine, *helpers.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	users := &fakeUserRepo{users: map[string]*entity.User{}}
	courses := &fakeCourseRepo{courses: map[string]*entity.Course{}}

	authSvc := application.NewAuthService(users, jwt, logger)
	enrollSvc := application.NewEnrollmentService(courses, nil, 0, logger)
	courseSvc := application.NewCourseService(courses, nil, 0, logger)
	userAdminSvc := application.NewUserAdminService(users, logger)

	r := gin.New()
	reg := router.NewRegistry(r)
	reg.Add(modules.NewHealthModule(handlers.NewHealthHandler()))
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))
	reg.Add(modules.NewStudentModule(handlers.NewStudentHandler(enrollSvc, logger), jwt))
	reg.Add(modules.NewAdminModule(handlers.NewAdminHandler(courseSvc, userAdminSvc, logger), jwt))
	reg.RegisterAll()

	return r, jwt
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func signup(t *testing.T, r *gin.Engine, name, email, password, role string) (string, string) {
	t.Helper()
	w, env := do(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name": name, "email": email, "password": password, "role": role,
	})
	require.Equal(t, http.StatusCreated, w.Code, env.Message)

	var data struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.Token, data.User.ID
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)
	w, env := do(t, r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "backend is running", env.Message)
}

func TestSignupValidation(t *testing.T) {
	r, _ := newTestServer(t)

	// short password
	w, _ := do(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name": "Ann", "email": "ann@x.com", "password": "abc", "role": "student",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown role
	w, _ = do(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name": "Ann", "email": "ann@x.com", "password": "secret1", "role": "teacher",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing field
	w, _ = do(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email": "ann@x.com", "password": "secret1", "role": "student",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	r, _ := newTestServer(t)
	signup(t, r, "Ann", "ann@x.com", "secret1", "student")

	w, env := do(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name": "Imposter", "email": "ann@x.com", "password": "secret2", "role": "student",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email already registered", env.Message)
}

func TestLoginAndMe(t *testing.T) {
	r, _ := newTestServer(t)
	signup(t, r, "Ann", "ann@x.com", "secret1", "student")

	w, env := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ann@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "student", data.User.Role)

	w, env = do(t, r, http.MethodGet, "/api/auth/me", data.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"email":"ann@x.com"`)
	assert.NotContains(t, string(env.Data), "password")
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestServer(t)
	signup(t, r, "Ann", "ann@x.com", "secret1", "student")

	w, _ := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ann@x.com", "password": "wrong66",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesGated(t *testing.T) {
	r, jwt := newTestServer(t)
	studentTok, _ := signup(t, r, "Ann", "ann@x.com", "secret1", "student")

	// student token on admin-only route
	w, _ := do(t, r, http.MethodGet, "/api/admin/courses", studentTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// no token
	w, _ = do(t, r, http.MethodGet, "/api/admin/courses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// expired token
	expired := helpers.JWTManager{Secret: jwt.Secret, TTL: -time.Minute}
	tok, _, err := expired.GenerateToken("user-1", "admin")
	require.NoError(t, err)
	w, _ = do(t, r, http.MethodGet, "/api/admin/courses", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCourseCRUDAndEnrollmentFlow(t *testing.T) {
	r, _ := newTestServer(t)

	adminTok, _ := signup(t, r, "Root", "root@x.com", "secret1", "admin")

	// signup Ann, then re-login for a fresh token
	_, annID := signup(t, r, "Ann", "ann@x.com", "secret1", "student")
	w, env := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ann@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	annTok := login.Token

	// admin creates Algebra
	w, env = do(t, r, http.MethodPost, "/api/admin/courses", adminTok, gin.H{
		"title": "Algebra", "description": "desc", "instructor": "Dr. X",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var course struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &course))

	// missing fields rejected
	w, _ = do(t, r, http.MethodPost, "/api/admin/courses", adminTok, gin.H{"title": "Half"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Ann enrolls
	w, env = do(t, r, http.MethodPost, "/api/student/courses/"+course.ID+"/enroll", annTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var enrolled struct {
		EnrolledStudents []string `json:"enrolled_students"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &enrolled))
	assert.Equal(t, []string{annID}, enrolled.EnrolledStudents)

	// duplicate enroll rejected
	w, env = do(t, r, http.MethodPost, "/api/student/courses/"+course.ID+"/enroll", annTok, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "already enrolled in this course", env.Message)

	// my-courses shows Algebra
	w, env = do(t, r, http.MethodGet, "/api/student/my-courses", annTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"title":"Algebra"`)

	// unenroll empties the set
	w, env = do(t, r, http.MethodPost, "/api/student/courses/"+course.ID+"/unenroll", annTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &enrolled))
	assert.Empty(t, enrolled.EnrolledStudents)

	// unenroll again still succeeds (idempotent)
	w, _ = do(t, r, http.MethodPost, "/api/student/courses/"+course.ID+"/unenroll", annTok, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// admin update and delete
	w, env = do(t, r, http.MethodPut, "/api/admin/courses/"+course.ID, adminTok, gin.H{"title": "Linear Algebra"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"title":"Linear Algebra"`)

	w, _ = do(t, r, http.MethodDelete, "/api/admin/courses/"+course.ID, adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// deleted course is gone from every listing and from enrollment paths
	w, env = do(t, r, http.MethodGet, "/api/student/courses", annTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(env.Data), course.ID)

	w, _ = do(t, r, http.MethodPost, "/api/student/courses/"+course.ID+"/enroll", annTok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentCoursesVisibleToAdmin(t *testing.T) {
	r, _ := newTestServer(t)
	adminTok, _ := signup(t, r, "Root", "root@x.com", "secret1", "admin")

	// browsing is shared; the enrollment transitions are student-only
	w, _ := do(t, r, http.MethodGet, "/api/student/courses", adminTok, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/student/my-courses", adminTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminUserManagement(t *testing.T) {
	r, _ := newTestServer(t)
	adminTok, _ := signup(t, r, "Root", "root@x.com", "secret1", "admin")
	_, annID := signup(t, r, "Ann", "ann@x.com", "secret1", "student")

	w, env := do(t, r, http.MethodGet, "/api/admin/users", adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"email":"ann@x.com"`)
	assert.NotContains(t, string(env.Data), "password")

	w, _ = do(t, r, http.MethodDelete, "/api/admin/users/"+annID, adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/admin/users", adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(env.Data), `"email":"ann@x.com"`)

	w, _ = do(t, r, http.MethodDelete, "/api/admin/users/"+annID, adminTok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
