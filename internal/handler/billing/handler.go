package billing

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/service/billing"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

type Handler struct {
	service     *billing.Service
	defaultOpts model.BillingOptions
}

func NewHandler(service *billing.Service, defaultOpts model.BillingOptions) *Handler {
	return &Handler{service: service, defaultOpts: defaultOpts}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/patients/:id/bill", h.GetAppointmentBill)
	r.GET("/inpatients/:id/bill", h.GetStayBill)
}

// GetAppointmentBill returns the itemised appointment invoice. Rates
// default from configuration and can be overridden per request with the
// discount, insurance, vat and service_fee query parameters.
func (h *Handler) GetAppointmentBill(c *gin.Context) {
	opts, err := h.optionsFromQuery(c)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	invoice, err := h.service.AppointmentInvoice(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, invoice)
}

func (h *Handler) GetStayBill(c *gin.Context) {
	invoice, err := h.service.StayInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, invoice)
}

func (h *Handler) optionsFromQuery(c *gin.Context) (model.BillingOptions, error) {
	opts := h.defaultOpts

	for param, target := range map[string]*float64{
		"discount":    &opts.DiscountRate,
		"insurance":   &opts.InsuranceCoverageRate,
		"vat":         &opts.VATRate,
		"service_fee": &opts.ServiceFee,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return opts, apperrors.NewValidation("invalid "+param+" parameter", err)
		}
		*target = v
	}

	if opts.DiscountRate > 1 || opts.InsuranceCoverageRate > 1 {
		return opts, apperrors.NewValidation("discount and insurance rates must be between 0 and 1", nil)
	}
	return opts, nil
}
