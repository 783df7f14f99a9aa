package store

import (
	"context"
	"fmt"

	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/models"
)

// invoiceRepository is the PostgreSQL-backed implementation of
// [InvoiceRepository]. Line rows are never diffed against the remote state:
// ReplaceLines drops the parent's lines and reinserts the fresh set, which
// is expected to run inside the same transaction as the parent upsert.
type invoiceRepository struct {
	uow    *UnitOfWork
	logger *logger.Logger
}

// NewInvoiceRepository constructs an [InvoiceRepository] bound to uow.
func NewInvoiceRepository(uow *UnitOfWork, logger *logger.Logger) InvoiceRepository {
	return &invoiceRepository{
		uow:    uow,
		logger: logger,
	}
}

// Upsert inserts the invoice or overwrites the existing mirror row with the
// same remote identifier. Lines are not touched; call ReplaceLines for that.
func (i *invoiceRepository) Upsert(ctx context.Context, invoice *models.Invoice) error {
	log := logger.FromContext(ctx)

	if invoice == nil || invoice.GrippID == 0 {
		return fmt.Errorf("%w: invoice without remote id", ErrInvalidRow)
	}

	query, args, err := buildInvoiceUpsert(invoice)
	if err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.Upsert").
			Int64("gripp_id", invoice.GrippID).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	result, execErr := i.uow.querier().ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "invoiceRepository.Upsert").
			Int64("gripp_id", invoice.GrippID).
			Str("pg_code", postgresError(execErr)).
			Msg("failed to upsert invoice")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return ErrRowNotSaved
	}

	return nil
}

// ReplaceLines deletes every line of the invoice and inserts the given set
// using one prepared statement. The two steps share whatever transaction the
// unit of work has open, so a failed reinsert never leaves the invoice
// without lines.
func (i *invoiceRepository) ReplaceLines(ctx context.Context, invoiceGrippID int64, lines []models.InvoiceLine) error {
	log := logger.FromContext(ctx)

	if invoiceGrippID == 0 {
		return fmt.Errorf("%w: invoice lines without parent remote id", ErrInvalidRow)
	}

	// validate the whole set before touching the table; an invalid line
	// must not leave the invoice with its lines half replaced
	for idx, line := range lines {
		if line.GrippID == 0 {
			return fmt.Errorf("%w: invoice line at index %d without remote id", ErrInvalidRow, idx)
		}
	}

	deleteQuery, deleteArgs, err := buildInvoiceLinesDelete(invoiceGrippID)
	if err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.ReplaceLines").
			Int64("invoice_gripp_id", invoiceGrippID).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	if _, err = i.uow.querier().ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.ReplaceLines").
			Int64("invoice_gripp_id", invoiceGrippID).
			Msg("failed to delete previous invoice lines")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if len(lines) == 0 {
		return nil
	}

	// All line inserts share one statement shape; prepare it once.
	insertQuery, _, err := buildInvoiceLineInsert(invoiceGrippID, &lines[0])
	if err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.ReplaceLines").
			Int64("invoice_gripp_id", invoiceGrippID).
			Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	stmt, err := i.uow.querier().PrepareContext(ctx, insertQuery)
	if err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.ReplaceLines").
			Int64("invoice_gripp_id", invoiceGrippID).
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, line := range lines {
		_, execErr := stmt.ExecContext(ctx,
			line.GrippID,
			invoiceGrippID,
			line.Product,
			line.Description,
			line.Amount,
			line.SellingPrice,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "invoiceRepository.ReplaceLines").
				Int("iteration", idx+1).
				Int("total", len(lines)).
				Int64("invoice_gripp_id", invoiceGrippID).
				Int64("line_gripp_id", line.GrippID).
				Msg("failed to insert invoice line")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	log.Debug().
		Str("func", "invoiceRepository.ReplaceLines").
		Int64("invoice_gripp_id", invoiceGrippID).
		Int("lines_count", len(lines)).
		Msg("replaced invoice lines")

	return nil
}
