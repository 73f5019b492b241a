package repository

import (
	"context"

	"github.com/enrollhub/backend/internal/domain/entity"
)

// CourseRepository defines the interface for catalog persistence.
type CourseRepository interface {
	// Create stores a new course and fills in ID and timestamps.
	Create(ctx context.Context, c *entity.Course) error
	List(ctx context.Context) ([]*entity.Course, error)
	GetByID(ctx context.Context, id string) (*entity.Course, error)
	// Update replaces title, description and instructor; ErrNotFound if no such id.
	Update(ctx context.Context, c *entity.Course) error
	Delete(ctx context.Context, id string) error

	// ListByStudent returns every course whose enrolled set contains the
	// given user ID. Computed by a catalog scan, not a maintained index.
	ListByStudent(ctx context.Context, userID string) ([]*entity.Course, error)
	// AddStudent appends the user ID to the enrolled set. Membership is
	// checked by the caller beforehand; a single UPDATE is atomic per row
	// but the check-then-append pair is not.
	AddStudent(ctx context.Context, courseID, userID string) error
	// RemoveStudent removes the user ID from the enrolled set. Removing an
	// absent member still succeeds; ErrNotFound only if no such course.
	RemoveStudent(ctx context.Context, courseID, userID string) error
}
