package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stego-channel/models"
)

const (
	// DefaultHistoryLimit is used when a filter carries no limit.
	DefaultHistoryLimit uint64 = 100
	// MaxHistoryLimit caps a single page of history.
	MaxHistoryLimit uint64 = 1000
)

var operationTable = models.Operation{}.TableName()

var operationColumns = []string{
	"id",
	"operation",
	"carrier_kind",
	"success",
	"message_length",
	"carrier_units",
	"bits_per_unit",
	"duration_ms",
	"fingerprint",
	"error",
	"created_at",
}

func buildInsertOperation(b sq.StatementBuilderType, op models.Operation) (string, []any, error) {
	return b.Insert(operationTable).
		Columns(operationColumns...).
		Values(
			op.ID,
			string(op.Type),
			op.CarrierKind,
			op.Success,
			op.MessageLength,
			op.CarrierUnits,
			op.BitsPerUnit,
			op.DurationMS,
			op.Fingerprint,
			op.Error,
			op.CreatedAt.UTC(),
		).
		ToSql()
}

func buildListOperations(b sq.StatementBuilderType, filter models.HistoryFilter) (string, []any, error) {
	limit := filter.Limit
	switch {
	case limit == 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	query := b.Select(operationColumns...).From(operationTable)
	if cond := filterConditions(filter); len(cond) > 0 {
		query = query.Where(cond)
	}
	query = query.OrderBy("created_at DESC", "id DESC").Limit(limit)
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	return query.ToSql()
}

func buildGetOperation(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(operationColumns...).
		From(operationTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteOperation(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(operationTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildClearOperations(b sq.StatementBuilderType, filter models.HistoryFilter) (string, []any, error) {
	query := b.Delete(operationTable)
	if cond := filterConditions(filter); len(cond) > 0 {
		query = query.Where(cond)
	}
	return query.ToSql()
}

// filterConditions turns the non-zero filter fields into equality
// predicates. An empty result matches every row.
func filterConditions(filter models.HistoryFilter) sq.Eq {
	cond := sq.Eq{}
	if filter.Type != "" {
		cond["operation"] = string(filter.Type)
	}
	if filter.CarrierKind != "" {
		cond["carrier_kind"] = filter.CarrierKind
	}
	if filter.Success != nil {
		cond["success"] = *filter.Success
	}
	return cond
}
