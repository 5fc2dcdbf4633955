package model

type Nurse struct {
	Employee
	ShiftHours   int    `db:"shift_hours" json:"shift_hours"`
	DepartmentID string `db:"department_id" json:"department_id,omitempty"`
}

type CreateNurseRequest struct {
	Name         string  `json:"name" binding:"required" validate:"required,personname"`
	DepartmentID string  `json:"department_id" binding:"required"`
	Salary       float64 `json:"salary" validate:"gte=0"`
	ShiftHours   int     `json:"shift_hours" validate:"gte=0"`
}

type UpdateNurseRequest struct {
	Name         *string  `json:"name" validate:"omitempty,personname"`
	DepartmentID *string  `json:"department_id"`
	Salary       *float64 `json:"salary" validate:"omitempty,gte=0"`
	ShiftHours   *int     `json:"shift_hours" validate:"omitempty,gte=0"`
}
