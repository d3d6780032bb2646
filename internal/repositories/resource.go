package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketplace-system/internal/infrastructure/bd"
	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/types"
)

// classifyQueryError separates caller mistakes from infrastructure failures.
// A data exception (SQLSTATE class 22, e.g. 22P02 invalid text representation
// when a filter value cannot be cast to the column type) is the client's
// fault; everything else means the store itself failed.
func classifyQueryError(op, table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "22") {
		return fmt.Errorf("%s for %s: %w: %v", op, table, apperrors.ErrInvalidQueryParameter, err)
	}
	return fmt.Errorf("%s for %s: %w: %v", op, table, apperrors.ErrStoreUnavailable, err)
}

// ListResource runs the composed count+list pair for a resource. The total is
// the count of the filtered+searched set; rows come back as generic maps so
// field projection works without a fixed scan target.
func ListResource(ctx context.Context, db *pgxpool.Pool, cfg bd.ResourceConfig, spec types.QuerySpec) ([]map[string]interface{}, uint64, error) {
	countBuilder, err := bd.BuildCountQuery(cfg, spec)
	if err != nil {
		return nil, 0, err
	}
	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("count ToSql for %s: %w", cfg.Table, err)
	}

	var total uint64
	if err := db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, classifyQueryError("count query", cfg.Table, err)
	}

	listBuilder, err := bd.BuildListQuery(cfg, spec)
	if err != nil {
		return nil, 0, err
	}
	listSQL, listArgs, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("list ToSql for %s: %w", cfg.Table, err)
	}

	rows, err := db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, classifyQueryError("list query", cfg.Table, err)
	}
	defer rows.Close()

	var result []map[string]interface{}
	fieldDescriptions := rows.FieldDescriptions()
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, 0, fmt.Errorf("rows.Values for %s: %w", cfg.Table, err)
		}
		rowMap := make(map[string]interface{}, len(values))
		for i, fd := range fieldDescriptions {
			rowMap[string(fd.Name)] = values[i]
		}
		result = append(result, rowMap)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classifyQueryError("rows", cfg.Table, err)
	}

	return result, total, nil
}

// ToggleBoolColumn flips a boolean column on one record and returns the new
// value. Callers guard which columns may be toggled.
func ToggleBoolColumn(ctx context.Context, db querier, table, column string, id uint64) (bool, error) {
	query := fmt.Sprintf("UPDATE %s SET %s = NOT %s, updated_at = NOW() WHERE id = $1 RETURNING %s", table, column, column, column)
	var value bool
	if err := db.QueryRow(ctx, query, id).Scan(&value); err != nil {
		if isNoRows(err) {
			return false, apperrors.ErrNotFound
		}
		return false, err
	}
	return value, nil
}

// CountGrouped returns COUNT(*) per distinct value of groupColumn.
func CountGrouped(ctx context.Context, db querier, table, groupColumn string) (map[string]uint64, error) {
	builder := sq.Select(groupColumn, "COUNT(*)").From(table).GroupBy(groupColumn).PlaceholderFormat(sq.Dollar)
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("grouped count for %s: %w: %v", table, apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	result := make(map[string]uint64)
	for rows.Next() {
		var key interface{}
		var count uint64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		result[fmt.Sprint(key)] = count
	}
	return result, rows.Err()
}

// SumGrouped returns SUM(sumColumn) per distinct value of groupColumn.
func SumGrouped(ctx context.Context, db querier, table, sumColumn, groupColumn string) (map[string]float64, error) {
	builder := sq.Select(groupColumn, fmt.Sprintf("COALESCE(SUM(%s), 0)", sumColumn)).
		From(table).GroupBy(groupColumn).PlaceholderFormat(sq.Dollar)
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("grouped sum for %s: %w: %v", table, apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	result := make(map[string]float64)
	for rows.Next() {
		var key interface{}
		var sum float64
		if err := rows.Scan(&key, &sum); err != nil {
			return nil, err
		}
		result[fmt.Sprint(key)] = sum
	}
	return result, rows.Err()
}
