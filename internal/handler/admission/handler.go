package admission

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/service/admission"
	"github.com/jwalitptl/hospital-api/internal/service/directory"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

type Handler struct {
	service   *admission.Service
	directory *directory.Service
}

func NewHandler(service *admission.Service, directory *directory.Service) *Handler {
	return &Handler{service: service, directory: directory}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	admissions := r.Group("/admissions")
	{
		admissions.POST("", h.Admit)
		admissions.POST("/:id/discharge", h.Discharge)
	}

	rooms := r.Group("/rooms")
	{
		rooms.POST("", h.CreateRoom)
		rooms.GET("", h.ListRooms)
		rooms.GET("/:id/occupancy", h.GetOccupancy)
	}
}

func (h *Handler) Admit(c *gin.Context) {
	var req model.AdmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	inpatient, err := h.service.Admit(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	h.directory.Invalidate()
	httputil.RespondWithCreated(c, inpatient)
}

func (h *Handler) Discharge(c *gin.Context) {
	inpatient, err := h.service.Discharge(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	h.directory.Invalidate()
	httputil.RespondWithSuccess(c, inpatient)
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req model.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, room)
}

// ListRooms returns every room with derived occupancy; with
// ?available=true only rooms that still have a free bed.
func (h *Handler) ListRooms(c *gin.Context) {
	var (
		statuses []*model.RoomStatus
		err      error
	)
	if c.Query("available") == "true" {
		statuses, err = h.service.AvailableRooms(c.Request.Context())
	} else {
		statuses, err = h.service.ListRooms(c.Request.Context())
	}
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, statuses)
}

func (h *Handler) GetOccupancy(c *gin.Context) {
	roomID := c.Param("id")
	occupied, err := h.service.Occupancy(c.Request.Context(), roomID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"room_id": roomID, "occupied": occupied})
}
