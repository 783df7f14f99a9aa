// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mwiersma/grippsync/models"
)

func Test_buildProjectUpsert_SQLContainsParts(t *testing.T) {
	project := &models.Project{
		GrippID: 42,
		Name:    "Website relaunch",
		Number:  2024001,
		Phase:   "active",
	}

	query, args, err := buildProjectUpsert(project)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into projects")
	require.Contains(t, q, "on conflict (gripp_id) do update set")
	require.Contains(t, q, "name = excluded.name")
	require.Contains(t, q, "updated_on = excluded.updated_on")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	require.Len(t, args, 9)
	require.Equal(t, int64(42), args[0])
	require.Equal(t, "Website relaunch", args[1])
}

func Test_buildProjectUpsert_ZeroTimesBecomeNull(t *testing.T) {
	project := &models.Project{GrippID: 7}

	_, args, err := buildProjectUpsert(project)
	require.NoError(t, err)

	// start_date, deadline, updated_on all unset
	require.Nil(t, args[6])
	require.Nil(t, args[7])
	require.Nil(t, args[8])
}

func Test_buildEmployeeUpsert_SQLContainsParts(t *testing.T) {
	employee := &models.Employee{
		GrippID:   11,
		FirstName: "Anna",
		LastName:  "de Vries",
		Active:    true,
	}

	query, args, err := buildEmployeeUpsert(employee)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into employees")
	require.Contains(t, q, "on conflict (gripp_id) do update set")
	require.Contains(t, q, "active = excluded.active")

	require.Len(t, args, 7)
	require.Equal(t, int64(11), args[0])
}

func Test_buildHourUpsert_SQLContainsParts(t *testing.T) {
	hour := &models.Hour{
		GrippID:         100,
		ProjectGrippID:  42,
		EmployeeGrippID: 11,
		Amount:          7.5,
	}

	query, args, err := buildHourUpsert(hour)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into hours")
	require.Contains(t, q, "project_gripp_id")
	require.Contains(t, q, "employee_gripp_id")
	require.Contains(t, q, "on conflict (gripp_id) do update set")

	require.Len(t, args, 8)
	require.Equal(t, int64(42), args[1])
	require.Equal(t, int64(11), args[2])
}

func Test_buildInvoiceLinesDelete(t *testing.T) {
	query, args, err := buildInvoiceLinesDelete(55)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "delete from invoice_lines")
	require.Contains(t, q, "invoice_gripp_id")
	require.Contains(t, query, "$1")

	require.Len(t, args, 1)
	require.Equal(t, int64(55), args[0])
}

func Test_buildInvoiceLineInsert_ParentIDComesFromArgument(t *testing.T) {
	line := &models.InvoiceLine{GrippID: 900, Product: "Consulting", Amount: 8}

	query, args, err := buildInvoiceLineInsert(55, line)
	require.NoError(t, err)

	require.Contains(t, strings.ToLower(query), "insert into invoice_lines")
	require.Len(t, args, 6)
	require.Equal(t, int64(900), args[0])
	require.Equal(t, int64(55), args[1])
}

func Test_buildAbsenceRequestLinesDelete(t *testing.T) {
	query, args, err := buildAbsenceRequestLinesDelete(12)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "delete from absence_request_lines")
	require.Contains(t, q, "absence_request_gripp_id")

	require.Len(t, args, 1)
	require.Equal(t, int64(12), args[0])
}

func Test_buildSyncStatusEnsure(t *testing.T) {
	query, args, err := buildSyncStatusEnsure(models.EntityProjects)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into sync_status")
	require.Contains(t, q, "on conflict (entity) do nothing")

	require.Len(t, args, 2)
	require.Equal(t, models.EntityProjects, args[0])
	require.Equal(t, models.SyncStatusPending, args[1])
}

func Test_buildSyncStatusSelect_AllEntities(t *testing.T) {
	query, args, err := buildSyncStatusSelect("")
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from sync_status")
	require.Contains(t, q, "order by entity")
	require.NotContains(t, q, "where")
	require.Empty(t, args)
}

func Test_buildSyncStatusSelect_SingleEntity(t *testing.T) {
	query, args, err := buildSyncStatusSelect(models.EntityHours)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "where")
	require.Contains(t, q, "entity")
	require.Contains(t, query, "$1")

	require.Len(t, args, 1)
	require.Equal(t, models.EntityHours, args[0])
}

func Test_buildSyncStatusMarkSuccess_ModeSelectsTimestampColumn(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	full, _, err := buildSyncStatusMarkSuccess(models.EntityInvoices, models.SyncModeFull, 12, at)
	require.NoError(t, err)
	require.Contains(t, strings.ToLower(full), "last_full_sync_at")
	require.NotContains(t, strings.ToLower(full), "last_incremental_sync_at")

	incr, args, err := buildSyncStatusMarkSuccess(models.EntityInvoices, models.SyncModeIncremental, 12, at)
	require.NoError(t, err)
	require.Contains(t, strings.ToLower(incr), "last_incremental_sync_at")
	require.NotContains(t, strings.ToLower(incr), "last_full_sync_at")

	require.Contains(t, args, at)
	require.Contains(t, args, 12)
}

func Test_buildSyncStatusMarkError(t *testing.T) {
	query, args, err := buildSyncStatusMarkError(models.EntityEmployees, "remote unavailable")
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "update sync_status")
	require.Contains(t, q, "last_sync_status")
	require.Contains(t, q, "last_sync_error")

	require.Contains(t, args, models.SyncStatusError)
	require.Contains(t, args, "remote unavailable")
	require.Contains(t, args, models.EntityEmployees)
}
