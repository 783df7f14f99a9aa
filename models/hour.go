package models

// Hour mirrors one remote hour-booking row. Project and Employee reference
// the remote identifiers of the parent rows, which is why projects and
// employees are synced first.
type Hour struct {
	ID              int64   `json:"-"`
	GrippID         int64   `json:"id"`
	ProjectGrippID  int64   `json:"project"`
	EmployeeGrippID int64   `json:"employee"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	Description     string  `json:"description"`

	Date      RemoteTime `json:"date"`
	UpdatedOn RemoteTime `json:"updatedon"`
}

// TableName returns the name of the database table
// associated with the Hour model.
func (h Hour) TableName() string {
	return "hours"
}
