package model

// Department stores only its own fields. The staff and patient populations
// tagged with its ID are derived on demand, never persisted as a
// relationship.
type Department struct {
	ID     string `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	HeadID string `db:"head_id" json:"head_id,omitempty"`
}

// DepartmentView is a department together with its recomputed populations.
type DepartmentView struct {
	Department
	Doctors  []*Doctor  `json:"doctors"`
	Nurses   []*Nurse   `json:"nurses"`
	Patients []*Patient `json:"patients"`
}

type CreateDepartmentRequest struct {
	Name   string `json:"name" binding:"required" validate:"required"`
	HeadID string `json:"head_id"`
}
