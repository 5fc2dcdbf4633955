package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/model"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

func appointmentsWithFees(fees ...float64) []*model.Appointment {
	appts := make([]*model.Appointment, len(fees))
	for i, fee := range fees {
		appts[i] = &model.Appointment{Fee: fee}
	}
	return appts
}

func TestAppointmentTotal(t *testing.T) {
	assert.Equal(t, 0.0, AppointmentTotal(nil))
	assert.Equal(t, 150.0, AppointmentTotal(appointmentsWithFees(100, 50)))
}

func TestAppointmentBillZeroOptionsEqualsRawSum(t *testing.T) {
	appts := appointmentsWithFees(100, 50, 25.25)
	got := AppointmentBill(appts, model.BillingOptions{})
	assert.InDelta(t, 175.25, got, 0.001)
}

func TestAppointmentBillPipelineOrder(t *testing.T) {
	appts := appointmentsWithFees(1000)
	opts := model.BillingOptions{
		DiscountRate:          0.10,
		InsuranceCoverageRate: 0.20,
		VATRate:               0.075,
		ServiceFee:            25,
	}
	// 1000 -> 900 after discount -> 720 after insurance -> +54 VAT -> +25 fee
	got := AppointmentBill(appts, opts)
	assert.InDelta(t, 799.0, got, 0.001)
}

func TestAppointmentBillNeverNegative(t *testing.T) {
	appts := appointmentsWithFees(10, 20)
	opts := model.BillingOptions{
		DiscountRate:          1,
		InsuranceCoverageRate: 1,
		VATRate:               0.075,
	}
	got := AppointmentBill(appts, opts)
	assert.GreaterOrEqual(t, got, 0.0)
}

func TestAppointmentBillDefaultVAT(t *testing.T) {
	appts := appointmentsWithFees(100)
	got := AppointmentBill(appts, model.DefaultBillingOptions())
	assert.InDelta(t, 107.5, got, 0.001)
}

func TestAppointmentBillRoundsFinalStepOnly(t *testing.T) {
	// 33.333 + 33.333 = 66.666 -> 66.67 only at the end
	appts := appointmentsWithFees(33.333, 33.333)
	got := AppointmentBill(appts, model.BillingOptions{})
	assert.InDelta(t, 66.67, got, 0.001)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStayDaysSameDayIsOneDay(t *testing.T) {
	now := date(2026, time.March, 10)
	discharge := now
	inp := &model.Inpatient{AdmissionDate: now, DischargeDate: &discharge}
	assert.Equal(t, 1, StayDays(inp, now))
}

func TestStayDaysInclusiveCount(t *testing.T) {
	now := date(2026, time.March, 15)
	inp := &model.Inpatient{AdmissionDate: date(2026, time.March, 10)}
	// 10th through 15th inclusive
	assert.Equal(t, 6, StayDays(inp, now))
}

func TestStayDaysDischargeBeforeAdmissionClamps(t *testing.T) {
	now := date(2026, time.March, 20)
	discharge := date(2026, time.March, 5)
	inp := &model.Inpatient{
		AdmissionDate: date(2026, time.March, 10),
		DischargeDate: &discharge,
	}
	assert.Equal(t, 1, StayDays(inp, now))
}

func TestStayDaysImplausibleAdmissionFallsBackToToday(t *testing.T) {
	now := date(2026, time.March, 10)
	inp := &model.Inpatient{AdmissionDate: date(1999, time.January, 1)}
	assert.Equal(t, 1, StayDays(inp, now))

	inp = &model.Inpatient{}
	assert.Equal(t, 1, StayDays(inp, now))
}

func TestStayDaysAcrossSpringForward(t *testing.T) {
	// A 23-hour day must still count as a full calendar day.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	discharge := time.Date(2026, time.March, 9, 0, 0, 0, 0, loc)
	inp := &model.Inpatient{
		AdmissionDate: time.Date(2026, time.March, 8, 0, 0, 0, 0, loc),
		DischargeDate: &discharge,
	}
	assert.Equal(t, 2, StayDays(inp, discharge))
}

func TestStayDaysFutureAdmission(t *testing.T) {
	now := date(2026, time.March, 10)
	inp := &model.Inpatient{AdmissionDate: date(2026, time.April, 1)}
	// end (today) precedes admission; clamped to admission, one day minimum
	assert.Equal(t, 1, StayDays(inp, now))
}

func TestStayBill(t *testing.T) {
	now := date(2026, time.March, 12)
	inp := &model.Inpatient{
		AdmissionDate: date(2026, time.March, 10),
		DailyRate:     150,
	}
	assert.InDelta(t, 450.0, StayBill(inp, now), 0.001)
}

func TestStayBillNegativeRateClampedToZero(t *testing.T) {
	now := date(2026, time.March, 12)
	inp := &model.Inpatient{
		AdmissionDate: date(2026, time.March, 10),
		DailyRate:     -99,
	}
	assert.Equal(t, 0.0, StayBill(inp, now))
}

type fakePatientRepo struct {
	patients map[string]*model.Patient
}

func (f *fakePatientRepo) List(ctx context.Context) ([]*model.Patient, error) {
	out := make([]*model.Patient, 0, len(f.patients))
	for _, p := range f.patients {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePatientRepo) Get(ctx context.Context, id string) (*model.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, apperrors.NewNotFound("patient", nil)
	}
	return p, nil
}

func (f *fakePatientRepo) Save(ctx context.Context, p *model.Patient) error {
	f.patients[p.ID] = p
	return nil
}

func (f *fakePatientRepo) Delete(ctx context.Context, id string) error {
	delete(f.patients, id)
	return nil
}

func (f *fakePatientRepo) NextID(ctx context.Context) (string, error) {
	return "P001", nil
}

func TestAppointmentInvoiceMatchesAppointmentBill(t *testing.T) {
	appts := appointmentsWithFees(1000, 250)
	patients := &fakePatientRepo{patients: map[string]*model.Patient{
		"P001": {Person: model.Person{ID: "P001", Name: "John Doe"}, Appointments: appts},
	}}
	svc := NewService(patients, nil, nil)

	opts := model.BillingOptions{
		DiscountRate:          0.10,
		InsuranceCoverageRate: 0.20,
		VATRate:               0.075,
		ServiceFee:            25,
	}
	invoice, err := svc.AppointmentInvoice(context.Background(), "P001", opts)
	require.NoError(t, err)

	assert.Equal(t, 2, invoice.Appointments)
	assert.InDelta(t, 1250.0, invoice.Base, 0.001)
	assert.InDelta(t, 125.0, invoice.Discount, 0.001)
	assert.InDelta(t, 225.0, invoice.Insurance, 0.001)
	assert.InDelta(t, AppointmentBill(appts, opts), invoice.Total, 0.001)
}

func TestAppointmentInvoiceUnknownPatient(t *testing.T) {
	svc := NewService(&fakePatientRepo{patients: map[string]*model.Patient{}}, nil, nil)
	_, err := svc.AppointmentInvoice(context.Background(), "P999", model.DefaultBillingOptions())
	assert.True(t, apperrors.IsNotFound(err))
}
