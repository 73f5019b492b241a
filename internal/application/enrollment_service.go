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

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
)

// EnrollmentService drives the per-(student, course) membership transitions:
// not-enrolled -> enrolled -> not-enrolled.
type EnrollmentService struct {
	Courses    repo.CourseRepository
	Redis      *redis.Client
	CatalogTTL time.Duration
	Logger     *logrus.Logger
}

func NewEnrollmentService(courses repo.CourseRepository, rdb *redis.Client, catalogTTL time.Duration, logger *logrus.Logger) *EnrollmentService {
	return &EnrollmentService{Courses: courses, Redis: rdb, CatalogTTL: catalogTTL, Logger: logger}
}

// Enroll appends the student to the course's enrolled set. A second enroll
// for the same pair is refused with ErrAlreadyEnrolled rather than silently
// accepted. The membership check and the append are separate statements, so
// two concurrent enrolls can race past the check; that weak-consistency
// window is an accepted design point, not an exactly-once guarantee.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID string) (*entity.Course, error) {
	course, err := s.Courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if course.HasStudent(studentID) {
		return nil, ErrAlreadyEnrolled
	}
	if err := s.Courses.AddStudent(ctx, courseID, studentID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	course.EnrolledStudents = append(course.EnrolledStudents, studentID)
	invalidateCatalog(ctx, s.Redis, s.Logger)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": studentID, "course_id": courseID}).Info("student enrolled")
	}
	return course, nil
}

// Unenroll removes the student from the course's enrolled set. Removing an
// absent member still succeeds: the transition is idempotent, deliberately
// asymmetric with Enroll's duplicate rejection.
func (s *EnrollmentService) Unenroll(ctx context.Context, studentID, courseID string) (*entity.Course, error) {
	if err := s.Courses.RemoveStudent(ctx, courseID, studentID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	course, err := s.Courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	invalidateCatalog(ctx, s.Redis, s.Logger)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": studentID, "course_id": courseID}).Info("student unenrolled")
	}
	return course, nil
}

// ListAll returns every course, served from the short-lived catalog cache
// when warm.
func (s *EnrollmentService) ListAll(ctx context.Context) ([]*entity.Course, error) {
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

// ListMine returns the courses whose enrolled set contains the student.
func (s *EnrollmentService) ListMine(ctx context.Context, studentID string) ([]*entity.Course, error) {
	return s.Courses.ListByStudent(ctx, studentID)
}
