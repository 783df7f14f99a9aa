package models

// Employee mirrors one remote employee row.
type Employee struct {
	ID        int64  `json:"-"`
	GrippID   int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Function  string `json:"function"`
	Active    bool   `json:"active"`

	UpdatedOn RemoteTime `json:"updatedon"`
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "employees"
}
