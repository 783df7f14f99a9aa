package models

// AbsenceRequest mirrors one remote absence request together with its
// per-day lines. Lines are replaced wholesale on every sync of the parent.
type AbsenceRequest struct {
	ID              int64  `json:"-"`
	GrippID         int64  `json:"id"`
	EmployeeGrippID int64  `json:"employee"`
	Description     string `json:"description"`
	Status          string `json:"status"`

	UpdatedOn RemoteTime `json:"updatedon"`

	Lines []AbsenceRequestLine `json:"absencerequestlines"`
}

// AbsenceRequestLine is one requested day (or part of a day) belonging to an
// AbsenceRequest.
type AbsenceRequestLine struct {
	ID                    int64   `json:"-"`
	GrippID               int64   `json:"id"`
	AbsenceRequestGrippID int64   `json:"-"`
	Amount                float64 `json:"amount"`
	StartingTime          string  `json:"startingtime"`

	Date RemoteTime `json:"date"`
}

// TableName returns the name of the database table
// associated with the AbsenceRequest model.
func (a AbsenceRequest) TableName() string {
	return "absence_requests"
}

// TableName returns the name of the database table
// associated with the AbsenceRequestLine model.
func (l AbsenceRequestLine) TableName() string {
	return "absence_request_lines"
}
