package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "full timestamp",
			input: `"2025-06-01 08:30:15"`,
			want:  time.Date(2025, 6, 1, 8, 30, 15, 0, time.UTC),
		},
		{
			name:  "date only",
			input: `"2025-06-01"`,
			want:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "null",
			input: `null`,
			want:  time.Time{},
		},
		{
			name:  "empty string",
			input: `""`,
			want:  time.Time{},
		},
		{
			name:    "garbage",
			input:   `"tomorrow"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rt RemoteTime
			err := json.Unmarshal([]byte(tt.input), &rt)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, rt.Equal(tt.want), "got %v, want %v", rt.Time, tt.want)
		})
	}
}

func TestRemoteTime_MarshalJSON(t *testing.T) {
	rt := RemoteTime{Time: time.Date(2025, 6, 1, 8, 30, 15, 0, time.UTC)}

	b, err := json.Marshal(rt)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01 08:30:15"`, string(b))

	b, err = json.Marshal(RemoteTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestUpdatedSince(t *testing.T) {
	f := UpdatedSince(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, "updatedon", f.Field)
	assert.Equal(t, OpGreaterEquals, f.Operator)
	assert.Equal(t, "2025-06-01 08:00:00", f.Value)
}

func TestProjectDecode_ChildAndTimeFields(t *testing.T) {
	raw := []byte(`{
		"id": 42,
		"name": "Website relaunch",
		"number": 2024001,
		"archived": false,
		"startdate": "2025-01-15",
		"deadline": null,
		"updatedon": "2025-06-01 08:30:15"
	}`)

	var p Project
	require.NoError(t, json.Unmarshal(raw, &p))

	assert.Equal(t, int64(42), p.GrippID)
	assert.False(t, p.StartDate.IsZero())
	assert.True(t, p.Deadline.IsZero())
	assert.Equal(t, 2025, p.UpdatedOn.Year())
}

func TestInvoiceDecode_LinesNested(t *testing.T) {
	raw := []byte(`{
		"id": 55,
		"number": 2025017,
		"invoicelines": [
			{"id": 900, "product": "Consulting", "amount": 8, "sellingprice": 120},
			{"id": 901, "product": "Hosting", "amount": 1, "sellingprice": 35}
		]
	}`)

	var inv Invoice
	require.NoError(t, json.Unmarshal(raw, &inv))

	assert.Equal(t, int64(55), inv.GrippID)
	require.Len(t, inv.Lines, 2)
	assert.Equal(t, int64(900), inv.Lines[0].GrippID)
	assert.Equal(t, 120.0, inv.Lines[0].SellingPrice)
}
