package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mwiersma/grippsync/models"
)

// psql builds all mirror statements with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// syncStatusColumns is the scan order shared by every sync_status query.
var syncStatusColumns = []string{
	"id",
	"entity",
	"last_sync_at",
	"last_incremental_sync_at",
	"last_full_sync_at",
	"sync_interval_seconds",
	"last_sync_count",
	"last_sync_status",
	"last_sync_error",
}

// nullTime maps a zero remote timestamp to SQL NULL.
func nullTime(t models.RemoteTime) any {
	if t.IsZero() {
		return nil
	}
	return t.Time
}

func buildSyncStatusEnsure(entity string) (string, []any, error) {
	return psql.Insert(models.SyncStatus{}.TableName()).
		Columns("entity", "last_sync_status").
		Values(entity, models.SyncStatusPending).
		Suffix("ON CONFLICT (entity) DO NOTHING").
		ToSql()
}

func buildSyncStatusSelect(entity string) (string, []any, error) {
	builder := psql.Select(syncStatusColumns...).
		From(models.SyncStatus{}.TableName())
	if entity != "" {
		builder = builder.Where(sq.Eq{"entity": entity})
	}
	return builder.OrderBy("entity").ToSql()
}

func buildSyncStatusMarkInProgress(entity string) (string, []any, error) {
	return psql.Update(models.SyncStatus{}.TableName()).
		Set("last_sync_status", models.SyncStatusInProgress).
		Set("last_sync_error", "").
		Where(sq.Eq{"entity": entity}).
		ToSql()
}

func buildSyncStatusMarkSuccess(entity, mode string, count int, at time.Time) (string, []any, error) {
	builder := psql.Update(models.SyncStatus{}.TableName()).
		Set("last_sync_at", at).
		Set("last_sync_count", count).
		Set("last_sync_status", models.SyncStatusSuccess).
		Set("last_sync_error", "")

	if mode == models.SyncModeFull {
		builder = builder.Set("last_full_sync_at", at)
	} else {
		builder = builder.Set("last_incremental_sync_at", at)
	}

	return builder.Where(sq.Eq{"entity": entity}).ToSql()
}

func buildSyncStatusMarkError(entity, message string) (string, []any, error) {
	return psql.Update(models.SyncStatus{}.TableName()).
		Set("last_sync_status", models.SyncStatusError).
		Set("last_sync_error", message).
		Where(sq.Eq{"entity": entity}).
		ToSql()
}

func buildProjectUpsert(p *models.Project) (string, []any, error) {
	return psql.Insert(p.TableName()).
		Columns("gripp_id", "name", "number", "phase", "company", "archived", "start_date", "deadline", "updated_on").
		Values(p.GrippID, p.Name, p.Number, p.Phase, p.Company, p.Archived, nullTime(p.StartDate), nullTime(p.Deadline), nullTime(p.UpdatedOn)).
		Suffix(`ON CONFLICT (gripp_id) DO UPDATE SET
			name = EXCLUDED.name,
			number = EXCLUDED.number,
			phase = EXCLUDED.phase,
			company = EXCLUDED.company,
			archived = EXCLUDED.archived,
			start_date = EXCLUDED.start_date,
			deadline = EXCLUDED.deadline,
			updated_on = EXCLUDED.updated_on`).
		ToSql()
}

func buildEmployeeUpsert(e *models.Employee) (string, []any, error) {
	return psql.Insert(e.TableName()).
		Columns("gripp_id", "first_name", "last_name", "email", "function", "active", "updated_on").
		Values(e.GrippID, e.FirstName, e.LastName, e.Email, e.Function, e.Active, nullTime(e.UpdatedOn)).
		Suffix(`ON CONFLICT (gripp_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			function = EXCLUDED.function,
			active = EXCLUDED.active,
			updated_on = EXCLUDED.updated_on`).
		ToSql()
}

func buildHourUpsert(h *models.Hour) (string, []any, error) {
	return psql.Insert(h.TableName()).
		Columns("gripp_id", "project_gripp_id", "employee_gripp_id", "date", "amount", "status", "description", "updated_on").
		Values(h.GrippID, h.ProjectGrippID, h.EmployeeGrippID, nullTime(h.Date), h.Amount, h.Status, h.Description, nullTime(h.UpdatedOn)).
		Suffix(`ON CONFLICT (gripp_id) DO UPDATE SET
			project_gripp_id = EXCLUDED.project_gripp_id,
			employee_gripp_id = EXCLUDED.employee_gripp_id,
			date = EXCLUDED.date,
			amount = EXCLUDED.amount,
			status = EXCLUDED.status,
			description = EXCLUDED.description,
			updated_on = EXCLUDED.updated_on`).
		ToSql()
}

func buildInvoiceUpsert(i *models.Invoice) (string, []any, error) {
	return psql.Insert(i.TableName()).
		Columns("gripp_id", "number", "company", "status", "date", "total_excl", "total_incl", "updated_on").
		Values(i.GrippID, i.Number, i.Company, i.Status, nullTime(i.Date), i.TotalExcl, i.TotalIncl, nullTime(i.UpdatedOn)).
		Suffix(`ON CONFLICT (gripp_id) DO UPDATE SET
			number = EXCLUDED.number,
			company = EXCLUDED.company,
			status = EXCLUDED.status,
			date = EXCLUDED.date,
			total_excl = EXCLUDED.total_excl,
			total_incl = EXCLUDED.total_incl,
			updated_on = EXCLUDED.updated_on`).
		ToSql()
}

func buildInvoiceLineInsert(invoiceGrippID int64, l *models.InvoiceLine) (string, []any, error) {
	return psql.Insert(l.TableName()).
		Columns("gripp_id", "invoice_gripp_id", "product", "description", "amount", "selling_price").
		Values(l.GrippID, invoiceGrippID, l.Product, l.Description, l.Amount, l.SellingPrice).
		ToSql()
}

func buildInvoiceLinesDelete(invoiceGrippID int64) (string, []any, error) {
	return psql.Delete(models.InvoiceLine{}.TableName()).
		Where(sq.Eq{"invoice_gripp_id": invoiceGrippID}).
		ToSql()
}

func buildAbsenceRequestUpsert(a *models.AbsenceRequest) (string, []any, error) {
	return psql.Insert(a.TableName()).
		Columns("gripp_id", "employee_gripp_id", "description", "status", "updated_on").
		Values(a.GrippID, a.EmployeeGrippID, a.Description, a.Status, nullTime(a.UpdatedOn)).
		Suffix(`ON CONFLICT (gripp_id) DO UPDATE SET
			employee_gripp_id = EXCLUDED.employee_gripp_id,
			description = EXCLUDED.description,
			status = EXCLUDED.status,
			updated_on = EXCLUDED.updated_on`).
		ToSql()
}

func buildAbsenceRequestLineInsert(requestGrippID int64, l *models.AbsenceRequestLine) (string, []any, error) {
	return psql.Insert(l.TableName()).
		Columns("gripp_id", "absence_request_gripp_id", "date", "amount", "starting_time").
		Values(l.GrippID, requestGrippID, nullTime(l.Date), l.Amount, l.StartingTime).
		ToSql()
}

func buildAbsenceRequestLinesDelete(requestGrippID int64) (string, []any, error) {
	return psql.Delete(models.AbsenceRequestLine{}.TableName()).
		Where(sq.Eq{"absence_request_gripp_id": requestGrippID}).
		ToSql()
}

func buildProjectSelectByGrippID(grippID int64) (string, []any, error) {
	return psql.Select("id", "gripp_id", "name", "number", "phase", "company", "archived", "start_date", "deadline", "updated_on").
		From(models.Project{}.TableName()).
		Where(sq.Eq{"gripp_id": grippID}).
		ToSql()
}
