package billing

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

// minAdmissionYear guards against zero or garbage admission dates loaded
// from the store; anything older is treated as "unset".
const minAdmissionYear = 2000

// AppointmentTotal returns the raw sum of appointment fees. This is the
// ranking/display figure; it applies no options and no rounding.
func AppointmentTotal(appointments []*model.Appointment) float64 {
	var total float64
	for _, apt := range appointments {
		total += apt.Fee
	}
	return total
}

// breakdown holds each stage of the billing pipeline. Stages are unrounded;
// only Total is rounded to cents.
type breakdown struct {
	Base      float64
	Discount  float64
	Insurance float64
	VAT       float64
	Total     float64
}

// computeBreakdown runs the billing pipeline in its fixed order: discount on
// the base, insurance on the discounted amount, VAT on what remains, then
// the flat service fee.
func computeBreakdown(appointments []*model.Appointment, opts model.BillingOptions) breakdown {
	base := AppointmentTotal(appointments)

	discount := base * opts.DiscountRate
	afterDiscount := base - discount

	insurance := afterDiscount * opts.InsuranceCoverageRate
	afterInsurance := afterDiscount - insurance

	vat := afterInsurance * opts.VATRate

	return breakdown{
		Base:      base,
		Discount:  discount,
		Insurance: insurance,
		VAT:       vat,
		Total:     round2(afterInsurance + vat + opts.ServiceFee),
	}
}

// AppointmentBill returns the final billed figure for a set of appointments.
func AppointmentBill(appointments []*model.Appointment, opts model.BillingOptions) float64 {
	return computeBreakdown(appointments, opts).Total
}

// StayDays counts the whole days of a stay, inclusive of both endpoints,
// with the date clamps applied in order:
// an unset or implausible admission date falls back to today; a discharge
// before admission clamps to the admission date; an end before admission
// clamps to the admission date. A same-day stay bills one day.
func StayDays(inp *model.Inpatient, now time.Time) int {
	today := dateOf(now)

	admission := dateOf(inp.AdmissionDate)
	if inp.AdmissionDate.IsZero() || inp.AdmissionDate.Year() < minAdmissionYear {
		admission = today
	}

	end := today
	if inp.DischargeDate != nil {
		end = dateOf(*inp.DischargeDate)
		if end.Before(admission) {
			end = admission
		}
	}
	if end.Before(admission) {
		end = admission
	}

	days := int(end.Sub(admission).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// StayBill is days times the daily rate, with the rate clamped to zero
// before multiplying and the result floored at zero.
func StayBill(inp *model.Inpatient, now time.Time) float64 {
	rate := inp.DailyRate
	if rate < 0 {
		rate = 0
	}

	total := float64(StayDays(inp, now)) * rate
	if total < 0 {
		total = 0
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// dateOf maps a timestamp to its calendar date as a UTC midnight. UTC keeps
// day subtraction exact; local midnights drift across DST transitions and a
// 23-hour day would truncate to zero.
func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Service exposes billing over stored records.
type Service struct {
	patients   repository.PatientRepository
	inpatients repository.InpatientRepository
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewService(patients repository.PatientRepository, inpatients repository.InpatientRepository, m *metrics.Metrics) *Service {
	return &Service{
		patients:   patients,
		inpatients: inpatients,
		metrics:    m,
		now:        time.Now,
	}
}

// AppointmentInvoice computes the itemised appointment bill for a patient.
func (s *Service) AppointmentInvoice(ctx context.Context, patientID string, opts model.BillingOptions) (*model.AppointmentInvoice, error) {
	patient, err := s.patients.Get(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient for billing: %w", err)
	}

	b := computeBreakdown(patient.Appointments, opts)

	if s.metrics != nil {
		s.metrics.BillsComputed.WithLabelValues("appointment").Inc()
	}

	return &model.AppointmentInvoice{
		PatientID:    patient.ID,
		Appointments: len(patient.Appointments),
		Base:         b.Base,
		Discount:     b.Discount,
		Insurance:    b.Insurance,
		VAT:          b.VAT,
		ServiceFee:   opts.ServiceFee,
		Total:        b.Total,
	}, nil
}

// StayInvoice computes the stay bill for an inpatient record.
func (s *Service) StayInvoice(ctx context.Context, patientID string) (*model.StayInvoice, error) {
	inp, err := s.inpatients.Get(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inpatient for billing: %w", err)
	}

	now := s.now()
	rate := inp.DailyRate
	if rate < 0 {
		rate = 0
	}

	if s.metrics != nil {
		s.metrics.BillsComputed.WithLabelValues("stay").Inc()
	}

	return &model.StayInvoice{
		PatientID: inp.ID,
		RoomID:    inp.RoomID,
		Days:      StayDays(inp, now),
		DailyRate: rate,
		Total:     StayBill(inp, now),
	}, nil
}
