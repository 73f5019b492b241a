package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/enrollhub/backend/internal/application"
	"github.com/enrollhub/backend/pkg/response"
	"github.com/enrollhub/backend/pkg/validation"
)

// AdminHandler serves the admin-only routes: course CRUD plus user listing
// and removal.
type AdminHandler struct {
	Courses *application.CourseService
	Users   *application.UserAdminService
	Logger  *logrus.Logger
}

func NewAdminHandler(courses *application.CourseService, users *application.UserAdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Courses: courses, Users: users, Logger: logger}
}

type createCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Instructor  string `json:"instructor" binding:"required"`
}

type updateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Instructor  string `json:"instructor"`
}

// CreateCourse POST /api/admin/courses
func (h *AdminHandler) CreateCourse(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "all fields are required", validation.ToDetails(err))
		return
	}

	course, err := h.Courses.Create(c.Request.Context(), req.Title, req.Description, req.Instructor)
	if err != nil {
		h.Logger.WithError(err).Error("course creation failed")
		response.Error[any](c, http.StatusInternalServerError, "error creating course", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, newCourseView(course), "course created successfully")
}

// ListCourses GET /api/admin/courses
func (h *AdminHandler) ListCourses(c *gin.Context) {
	courses, err := h.Courses.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("course listing failed")
		response.Error[any](c, http.StatusInternalServerError, "error fetching courses", err.Error())
		return
	}
	response.Success(c, http.StatusOK, newCourseViews(courses), "courses")
}

// UpdateCourse PUT /api/admin/courses/:courseId
func (h *AdminHandler) UpdateCourse(c *gin.Context) {
	var req updateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	course, err := h.Courses.Update(c.Request.Context(), c.Param("courseId"), application.UpdateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
	})
	if err != nil {
		if errors.Is(err, application.ErrCourseNotFound) {
			response.Error[any](c, http.StatusNotFound, "course not found", nil)
			return
		}
		h.Logger.WithError(err).Error("course update failed")
		response.Error[any](c, http.StatusInternalServerError, "error updating course", err.Error())
		return
	}
	response.Success(c, http.StatusOK, newCourseView(course), "course updated successfully")
}

// DeleteCourse DELETE /api/admin/courses/:courseId
func (h *AdminHandler) DeleteCourse(c *gin.Context) {
	if err := h.Courses.Delete(c.Request.Context(), c.Param("courseId")); err != nil {
		if errors.Is(err, application.ErrCourseNotFound) {
			response.Error[any](c, http.StatusNotFound, "course not found", nil)
			return
		}
		h.Logger.WithError(err).Error("course deletion failed")
		response.Error[any](c, http.StatusInternalServerError, "error deleting course", err.Error())
		return
	}
	response.Success[any](c, http.StatusOK, nil, "course deleted successfully")
}

// ListUsers GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("user listing failed")
		response.Error[any](c, http.StatusInternalServerError, "error fetching users", err.Error())
		return
	}
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}
	response.Success(c, http.StatusOK, views, "users")
}

// DeleteUser DELETE /api/admin/users/:userId
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.Users.Delete(c.Request.Context(), c.Param("userId")); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("user deletion failed")
		response.Error[any](c, http.StatusInternalServerError, "error deleting user", err.Error())
		return
	}
	response.Success[any](c, http.StatusOK, nil, "user deleted successfully")
}
