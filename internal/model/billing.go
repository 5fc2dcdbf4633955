package model

// DefaultVATRate is applied when billing options carry no explicit VAT.
const DefaultVATRate = 0.075

// BillingOptions parameterise the appointment billing pipeline. Rates are
// fractions: 0.20 means 20%.
type BillingOptions struct {
	InsuranceCoverageRate float64 `json:"insurance_coverage_rate" validate:"gte=0,lte=1"`
	DiscountRate          float64 `json:"discount_rate" validate:"gte=0,lte=1"`
	VATRate               float64 `json:"vat_rate" validate:"gte=0"`
	ServiceFee            float64 `json:"service_fee" validate:"gte=0"`
}

// DefaultBillingOptions returns options with no discount, no insurance and
// the standard VAT rate.
func DefaultBillingOptions() BillingOptions {
	return BillingOptions{VATRate: DefaultVATRate}
}

// AppointmentInvoice is the itemised result of the appointment billing
// pipeline. Total is the only rounded figure.
type AppointmentInvoice struct {
	PatientID    string  `json:"patient_id"`
	Appointments int     `json:"appointments"`
	Base         float64 `json:"base"`
	Discount     float64 `json:"discount"`
	Insurance    float64 `json:"insurance"`
	VAT          float64 `json:"vat"`
	ServiceFee   float64 `json:"service_fee"`
	Total        float64 `json:"total"`
}

// StayInvoice is the result of inpatient stay billing.
type StayInvoice struct {
	PatientID string  `json:"patient_id"`
	RoomID    string  `json:"room_id"`
	Days      int     `json:"days"`
	DailyRate float64 `json:"daily_rate"`
	Total     float64 `json:"total"`
}
