package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/enrollhub/backend/internal/application"
	"github.com/enrollhub/backend/internal/domain/entity"
	"github.com/enrollhub/backend/internal/interface/middleware"
	"github.com/enrollhub/backend/pkg/response"
)

// StudentHandler serves the enrollment routes: catalog browsing,
// enroll/unenroll, and the caller's own course list.
type StudentHandler struct {
	Svc    *application.EnrollmentService
	Logger *logrus.Logger
}

func NewStudentHandler(svc *application.EnrollmentService, logger *logrus.Logger) *StudentHandler {
	return &StudentHandler{Svc: svc, Logger: logger}
}

type courseView struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Instructor       string    `json:"instructor"`
	EnrolledStudents []string  `json:"enrolled_students"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func newCourseView(c *entity.Course) courseView {
	students := c.EnrolledStudents
	if students == nil {
		students = []string{}
	}
	return courseView{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Instructor:       c.Instructor,
		EnrolledStudents: students,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func newCourseViews(cs []*entity.Course) []courseView {
	out := make([]courseView, 0, len(cs))
	for _, c := range cs {
		out = append(out, newCourseView(c))
	}
	return out
}

// Courses GET /api/student/courses
func (h *StudentHandler) Courses(c *gin.Context) {
	courses, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("course listing failed")
		response.Error[any](c, http.StatusInternalServerError, "error fetching courses", err.Error())
		return
	}
	response.Success(c, http.StatusOK, newCourseViews(courses), "courses")
}

// Enroll POST /api/student/courses/:courseId/enroll
func (h *StudentHandler) Enroll(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	course, err := h.Svc.Enroll(c.Request.Context(), uid, c.Param("courseId"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrCourseNotFound):
			response.Error[any](c, http.StatusNotFound, "course not found", nil)
		case errors.Is(err, application.ErrAlreadyEnrolled):
			response.Error[any](c, http.StatusBadRequest, "already enrolled in this course", nil)
		default:
			h.Logger.WithError(err).Error("enroll failed")
			response.Error[any](c, http.StatusInternalServerError, "error enrolling in course", err.Error())
		}
		return
	}
	response.Success(c, http.StatusOK, newCourseView(course), "enrolled successfully")
}

// Unenroll POST /api/student/courses/:courseId/unenroll
func (h *StudentHandler) Unenroll(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	course, err := h.Svc.Unenroll(c.Request.Context(), uid, c.Param("courseId"))
	if err != nil {
		if errors.Is(err, application.ErrCourseNotFound) {
			response.Error[any](c, http.StatusNotFound, "course not found", nil)
			return
		}
		h.Logger.WithError(err).Error("unenroll failed")
		response.Error[any](c, http.StatusInternalServerError, "error unenrolling from course", err.Error())
		return
	}
	response.Success(c, http.StatusOK, newCourseView(course), "unenrolled successfully")
}

// MyCourses GET /api/student/my-courses
func (h *StudentHandler) MyCourses(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	courses, err := h.Svc.ListMine(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("my-courses listing failed")
		response.Error[any](c, http.StatusInternalServerError, "error fetching enrolled courses", err.Error())
		return
	}
	response.Success(c, http.StatusOK, newCourseViews(courses), "enrolled courses")
}
