package models

// Project mirrors one remote project row. GrippID is the stable remote
// identifier and the sole upsert matching key; ID is assigned locally.
type Project struct {
	ID       int64  `json:"-"`
	GrippID  int64  `json:"id"`
	Name     string `json:"name"`
	Number   int64  `json:"number"`
	Phase    string `json:"phase"`
	Company  string `json:"company"`
	Archived bool   `json:"archived"`

	StartDate RemoteTime `json:"startdate"`
	Deadline  RemoteTime `json:"deadline"`
	UpdatedOn RemoteTime `json:"updatedon"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}
