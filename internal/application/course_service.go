package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/enrollhub/backend/internal/domain/entity"
	repo "github.com/enrollhub/backend/internal/domain/repository"
)

// CourseService is the admin-facing catalog CRUD. Field presence is
// enforced at the binding layer; deleting a course needs no cascading
// cleanup because no reverse index exists.
type CourseService struct {
	Courses    repo.CourseRepository
	Redis      *redis.Client
	CatalogTTL time.Duration
	Logger     *logrus.Logger
}

func NewCourseService(courses repo.CourseRepository, rdb *redis.Client, catalogTTL time.Duration, logger *logrus.Logger) *CourseService {
	return &CourseService{Courses: courses, Redis: rdb, CatalogTTL: catalogTTL, Logger: logger}
}

func (s *CourseService) Create(ctx context.Context, title, description, instructor string) (*entity.Course, error) {
	course := &entity.Course{
		Title:       title,
		Description: description,
		Instructor:  instructor,
	}
	if err := s.Courses.Create(ctx, course); err != nil {
		return nil, err
	}
	invalidateCatalog(ctx, s.Redis, s.Logger)
	if s.Logger != nil {
		s.Logger.WithField("course_id", course.ID).Info("course created")
	}
	return course, nil
}

func (s *CourseService) List(ctx context.Context) ([]*entity.Course, error) {
	if cached := catalogFromCache(ctx, s.Redis, s.Logger); cached != nil {
		return cached, nil
	}
	courses, err := s.Courses.List(ctx)
	if err != nil {
		return nil, err
	}
	catalogToCache(ctx, s.Redis, s.Logger, courses, s.CatalogTTL)
	return courses, nil
}

type UpdateCourseInput struct {
	Title       string
	Description string
	Instructor  string
}

// Update replaces the provided fields, leaving empty ones untouched.
func (s *CourseService) Update(ctx context.Context, id string, in UpdateCourseInput) (*entity.Course, error) {
	course, err := s.Courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if in.Title != "" {
		course.Title = in.Title
	}
	if in.Description != "" {
		course.Description = in.Description
	}
	if in.Instructor != "" {
		course.Instructor = in.Instructor
	}
	if err := s.Courses.Update(ctx, course); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	invalidateCatalog(ctx, s.Redis, s.Logger)
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.Courses.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	invalidateCatalog(ctx, s.Redis, s.Logger)
	if s.Logger != nil {
		s.Logger.WithField("course_id", id).Info("course deleted")
	}
	return nil
}
