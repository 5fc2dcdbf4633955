package directory

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/search"
	"github.com/jwalitptl/hospital-api/internal/service/billing"
	"github.com/jwalitptl/hospital-api/internal/service/directory"
	"github.com/jwalitptl/hospital-api/internal/sorting"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

// Handler serves the read-side directory: exact lookups over sorted
// snapshots, fragment scans and ordered listings.
type Handler struct {
	service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	dir := r.Group("/directory")
	{
		dir.GET("/patients", h.ListPatients)
		dir.GET("/patients/search", h.SearchPatients)
		dir.GET("/doctors", h.ListDoctors)
		dir.GET("/doctors/search", h.SearchDoctors)
		dir.GET("/nurses", h.ListNurses)
		dir.GET("/nurses/search", h.SearchNurses)
		dir.GET("/inpatients", h.ListInpatients)
		dir.POST("/refresh", h.Refresh)
	}
}

// ListPatients returns patients ordered by the sort query parameter:
// name (default), diagnosis, or bill (highest first).
func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.Patients(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	switch c.DefaultQuery("sort", "name") {
	case "name":
		patients = sorting.PatientsByName(patients)
	case "diagnosis":
		patients = sorting.PatientsByDiagnosis(patients)
	case "bill":
		patients = sorting.PatientsByBill(patients, func(p *model.Patient) float64 {
			return billing.AppointmentTotal(p.Appointments)
		})
	default:
		httputil.RespondWithError(c, apperrors.NewValidation("unknown sort key", nil))
		return
	}
	httputil.RespondWithSuccess(c, patients)
}

// SearchPatients looks up patients by exact name or ID, or scans by
// diagnosis fragment.
func (h *Handler) SearchPatients(c *gin.Context) {
	patients, err := h.service.Patients(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	if name := c.Query("name"); name != "" {
		p, ok := search.PatientByName(sorting.PatientsByName(patients), name)
		if !ok {
			httputil.RespondWithError(c, apperrors.NewNotFound("patient", nil))
			return
		}
		httputil.RespondWithSuccess(c, p)
		return
	}

	if id := c.Query("id"); id != "" {
		p, ok := search.PatientByID(sortedByID(patients), id)
		if !ok {
			httputil.RespondWithError(c, apperrors.NewNotFound("patient", nil))
			return
		}
		httputil.RespondWithSuccess(c, p)
		return
	}

	if diagnosis := c.Query("diagnosis"); diagnosis != "" {
		httputil.RespondWithSuccess(c, search.PatientsByDiagnosis(patients, diagnosis))
		return
	}

	httputil.RespondWithError(c, apperrors.NewValidation("provide a name, id or diagnosis parameter", nil))
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.Doctors(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	switch c.DefaultQuery("sort", "name") {
	case "name":
		doctors = sorting.DoctorsByName(doctors)
	case "specialty":
		doctors = sorting.DoctorsBySpecialty(doctors)
	default:
		httputil.RespondWithError(c, apperrors.NewValidation("unknown sort key", nil))
		return
	}
	httputil.RespondWithSuccess(c, doctors)
}

func (h *Handler) SearchDoctors(c *gin.Context) {
	doctors, err := h.service.Doctors(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	if name := c.Query("name"); name != "" {
		d, ok := search.DoctorByName(sorting.DoctorsByName(doctors), name)
		if !ok {
			httputil.RespondWithError(c, apperrors.NewNotFound("doctor", nil))
			return
		}
		httputil.RespondWithSuccess(c, d)
		return
	}

	if id := c.Query("id"); id != "" {
		d, ok := search.DoctorByID(sortedDoctorsByID(doctors), id)
		if !ok {
			httputil.RespondWithError(c, apperrors.NewNotFound("doctor", nil))
			return
		}
		httputil.RespondWithSuccess(c, d)
		return
	}

	if specialty := c.Query("specialty"); specialty != "" {
		httputil.RespondWithSuccess(c, search.DoctorsBySpecialty(doctors, specialty))
		return
	}

	httputil.RespondWithError(c, apperrors.NewValidation("provide a name, id or specialty parameter", nil))
}

func (h *Handler) ListNurses(c *gin.Context) {
	nurses, err := h.service.Nurses(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	switch c.DefaultQuery("sort", "name") {
	case "name":
		nurses = sorting.NursesByName(nurses)
	case "shift":
		nurses = sorting.NursesByShiftHours(nurses)
	default:
		httputil.RespondWithError(c, apperrors.NewValidation("unknown sort key", nil))
		return
	}
	httputil.RespondWithSuccess(c, nurses)
}

func (h *Handler) SearchNurses(c *gin.Context) {
	nurses, err := h.service.Nurses(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	if name := c.Query("name"); name != "" {
		n, ok := search.NurseByName(sorting.NursesByName(nurses), name)
		if !ok {
			httputil.RespondWithError(c, apperrors.NewNotFound("nurse", nil))
			return
		}
		httputil.RespondWithSuccess(c, n)
		return
	}

	if id := c.Query("id"); id != "" {
		n, ok := search.NurseByID(sortedNursesByID(nurses), id)
		if !ok {
			httputil.RespondWithError(c, apperrors.NewNotFound("nurse", nil))
			return
		}
		httputil.RespondWithSuccess(c, n)
		return
	}

	if departmentID := c.Query("department"); departmentID != "" {
		httputil.RespondWithSuccess(c, search.NursesByDepartment(nurses, departmentID))
		return
	}

	httputil.RespondWithError(c, apperrors.NewValidation("provide a name, id or department parameter", nil))
}

func (h *Handler) ListInpatients(c *gin.Context) {
	inpatients, err := h.service.Inpatients(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, sorting.InpatientsByRoom(inpatients))
}

// Refresh drops the cached snapshots so the next read hits the store.
func (h *Handler) Refresh(c *gin.Context) {
	h.service.Invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "directory cache invalidated"})
}

func sortedByID(patients []*model.Patient) []*model.Patient {
	out := make([]*model.Patient, len(patients))
	copy(out, patients)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedDoctorsByID(doctors []*model.Doctor) []*model.Doctor {
	out := make([]*model.Doctor, len(doctors))
	copy(out, doctors)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedNursesByID(nurses []*model.Nurse) []*model.Nurse {
	out := make([]*model.Nurse, len(nurses))
	copy(out, nurses)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
