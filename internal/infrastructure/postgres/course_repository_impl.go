package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enrollhub/backend/internal/domain/entity"
	"github.com/enrollhub/backend/internal/domain/repository"
)

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func (r *CourseRepository) Create(ctx context.Context, c *entity.Course) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO courses (title, description, instructor)
		VALUES ($1, $2, $3)
		RETURNING id, enrolled_students, created_at, updated_at
	`, c.Title, c.Description, c.Instructor)

	return row.Scan(&c.ID, &c.EnrolledStudents, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CourseRepository) List(ctx context.Context) ([]*entity.Course, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, instructor, enrolled_students, created_at, updated_at
		FROM courses
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	c := &entity.Course{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, instructor, enrolled_students, created_at, updated_at
		FROM courses
		WHERE id = $1
	`, id)

	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Instructor,
		&c.EnrolledStudents, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

func (r *CourseRepository) Update(ctx context.Context, c *entity.Course) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE courses
		SET title = $1, description = $2, instructor = $3, updated_at = now()
		WHERE id = $4
	`, c.Title, c.Description, c.Instructor, c.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CourseRepository) ListByStudent(ctx context.Context, userID string) ([]*entity.Course, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, instructor, enrolled_students, created_at, updated_at
		FROM courses
		WHERE $1 = ANY(enrolled_students)
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

func (r *CourseRepository) AddStudent(ctx context.Context, courseID, userID string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE courses
		SET enrolled_students = array_append(enrolled_students, $1), updated_at = now()
		WHERE id = $2
	`, userID, courseID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CourseRepository) RemoveStudent(ctx context.Context, courseID, userID string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE courses
		SET enrolled_students = array_remove(enrolled_students, $1), updated_at = now()
		WHERE id = $2
	`, userID, courseID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanCourses(rows pgx.Rows) ([]*entity.Course, error) {
	courses := make([]*entity.Course, 0)
	for rows.Next() {
		c := &entity.Course{}
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Instructor,
			&c.EnrolledStudents, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

var _ repository.CourseRepository = (*CourseRepository)(nil)
