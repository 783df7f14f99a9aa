package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Filter operators understood by the remote API.
const (
	OpEquals        = "equals"
	OpNotEquals     = "notequals"
	OpGreaterEquals = "greaterequals"
	OpGreater       = "greater"
	OpLessEquals    = "lessequals"
	OpLess          = "less"
	OpLike          = "like"
	OpIn            = "in"
)

// RemoteTimeLayout is the timestamp format the remote API uses in both
// filter values and row payloads.
const RemoteTimeLayout = "2006-01-02 15:04:05"

// Filter is a single {field, operator, value} condition passed as the first
// element of a call's params array.
type Filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// UpdatedSince builds the incremental-sync filter: only rows changed at or
// after the given moment are returned.
func UpdatedSince(t time.Time) Filter {
	return Filter{
		Field:    "updatedon",
		Operator: OpGreaterEquals,
		Value:    t.Format(RemoteTimeLayout),
	}
}

// Paging selects a window of rows starting at FirstResult (zero-based).
type Paging struct {
	FirstResult int `json:"firstresult"`
	MaxResults  int `json:"maxresults"`
}

// Ordering requests server-side sorting of the result rows.
type Ordering struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// Options is the second element of a call's params array.
type Options struct {
	Paging    *Paging    `json:"paging,omitempty"`
	Orderings []Ordering `json:"orderings,omitempty"`
}

// ResponsePaging echoes the requested window plus the total row count known
// to the remote side.
type ResponsePaging struct {
	FirstResult int `json:"firstresult"`
	MaxResults  int `json:"maxresults"`
	Count       int `json:"count"`
}

// CallResult is the deserialized, classified result of one remote call.
// Rows are kept as raw JSON; each entity routine decodes them into its own
// mirror model.
type CallResult struct {
	Rows      []json.RawMessage
	Paging    *ResponsePaging
	MoreItems *bool
}

// RemoteTime decodes the remote API's "YYYY-MM-DD HH:MM:SS" timestamps
// (date-only values occur as well). A null or empty value yields the zero
// time.
type RemoteTime struct {
	time.Time
}

func (t *RemoteTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{RemoteTimeLayout, "2006-01-02"} {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unsupported remote timestamp %q", s)
}

func (t RemoteTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(RemoteTimeLayout))
}
