package application

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/enrollhub/backend/internal/domain/entity"
	repo "github.com/enrollhub/backend/internal/domain/repository"
)

// In-memory repository fakes for service tests.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repo.ErrConflict
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memUserRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type memCourseRepo struct {
	mu      sync.Mutex
	courses map[string]*entity.Course
}

func newMemCourseRepo() *memCourseRepo {
	return &memCourseRepo{courses: map[string]*entity.Course{}}
}

func (m *memCourseRepo) Create(_ context.Context, c *entity.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.NewString()
	c.EnrolledStudents = []string{}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := cloneCourse(c)
	m.courses[c.ID] = cp
	return nil
}

func (m *memCourseRepo) List(_ context.Context) ([]*entity.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Course, 0, len(m.courses))
	for _, c := range m.courses {
		out = append(out, cloneCourse(c))
	}
	return out, nil
}

func (m *memCourseRepo) GetByID(_ context.Context, id string) (*entity.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.courses[id]; ok {
		return cloneCourse(c), nil
	}
	return nil, repo.ErrNotFound
}

func (m *memCourseRepo) Update(_ context.Context, c *entity.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.courses[c.ID]
	if !ok {
		return repo.ErrNotFound
	}
	stored.Title = c.Title
	stored.Description = c.Description
	stored.Instructor = c.Instructor
	stored.UpdatedAt = time.Now()
	return nil
}

func (m *memCourseRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.courses[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.courses, id)
	return nil
}

func (m *memCourseRepo) ListByStudent(_ context.Context, userID string) ([]*entity.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Course, 0)
	for _, c := range m.courses {
		if c.HasStudent(userID) {
			out = append(out, cloneCourse(c))
		}
	}
	return out, nil
}

func (m *memCourseRepo) AddStudent(_ context.Context, courseID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.courses[courseID]
	if !ok {
		return repo.ErrNotFound
	}
	c.EnrolledStudents = append(c.EnrolledStudents, userID)
	return nil
}

func (m *memCourseRepo) RemoveStudent(_ context.Context, courseID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.courses[courseID]
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

func cloneCourse(c *entity.Course) *entity.Course {
	cp := *c
	cp.EnrolledStudents = append([]string(nil), c.EnrolledStudents...)
	return &cp
}

var (
	_ repo.UserRepository   = (*memUserRepo)(nil)
	_ repo.CourseRepository = (*memCourseRepo)(nil)
)
