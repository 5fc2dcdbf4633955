package nurse

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/service/directory"
	"github.com/jwalitptl/hospital-api/internal/service/nurse"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

type Handler struct {
	service   *nurse.Service
	directory *directory.Service
}

func NewHandler(service *nurse.Service, directory *directory.Service) *Handler {
	return &Handler{service: service, directory: directory}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	nurses := r.Group("/nurses")
	{
		nurses.POST("", h.CreateNurse)
		nurses.GET("", h.ListNurses)
		nurses.GET("/:id", h.GetNurse)
		nurses.PUT("/:id", h.UpdateNurse)
		nurses.DELETE("/:id", h.DeleteNurse)
	}
}

func (h *Handler) CreateNurse(c *gin.Context) {
	var req model.CreateNurseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	h.directory.Invalidate()
	httputil.RespondWithCreated(c, created)
}

func (h *Handler) GetNurse(c *gin.Context) {
	n, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, n)
}

func (h *Handler) ListNurses(c *gin.Context) {
	nurses, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nurses)
}

func (h *Handler) UpdateNurse(c *gin.Context) {
	var req model.UpdateNurseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	h.directory.Invalidate()
	httputil.RespondWithSuccess(c, updated)
}

func (h *Handler) DeleteNurse(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	h.directory.Invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "nurse deleted successfully"})
}
