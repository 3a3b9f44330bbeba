package mentor

import (
	"net/http"

	"go-magang/internal/shared/apperror"
	"go-magang/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

// ActorFrom reads the authenticated caller set by the auth middleware.
func ActorFrom(c *gin.Context) Actor {
	return Actor{ID: c.GetString("user_id"), Role: c.GetString("role")}
}

func (h *Handler) Students(c *gin.Context) {
	res, err := h.service.Students(c.Request.Context(), ActorFrom(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Assign(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Unassign(c *gin.Context) {
	if err := h.service.Unassign(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Mentor berhasil dilepas")
}

func (h *Handler) Mentors(c *gin.Context) {
	res, err := h.service.Mentors(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) StudentsByMentor(c *gin.Context) {
	res, err := h.service.StudentsByMentor(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
