package model

// Doctor is an employee with a medical specialty. Specialty is validated at
// entry time (letters only) but not re-checked on load.
type Doctor struct {
	Employee
	Specialty    string `db:"specialty" json:"specialty"`
	DepartmentID string `db:"department_id" json:"department_id,omitempty"`
}

type CreateDoctorRequest struct {
	Name         string  `json:"name" binding:"required" validate:"required,personname"`
	Specialty    string  `json:"specialty" binding:"required" validate:"required,personname"`
	DepartmentID string  `json:"department_id" binding:"required"`
	Salary       float64 `json:"salary" validate:"gte=0"`
}

type UpdateDoctorRequest struct {
	Name         *string  `json:"name" validate:"omitempty,personname"`
	Specialty    *string  `json:"specialty" validate:"omitempty,personname"`
	DepartmentID *string  `json:"department_id"`
	Salary       *float64 `json:"salary" validate:"omitempty,gte=0"`
}
