package bd

import (
	"fmt"
	"net/http"
	"strings"

	sq "github.com/Masterminds/squirrel"

	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/types"
)

// ResourceConfig describes how one resource maps onto its table: which
// external field names are allowed in filters, sorting and projection, and
// which columns participate in keyword search.
type ResourceConfig struct {
	Table   string
	Columns []string

	// ColumnMap translates external (JSON) field names to DB columns. It is
	// the allow-list for filters, sort keys and projection.
	ColumnMap map[string]string

	// TextColumns sort through LOWER() so ordering is case-insensitive.
	TextColumns map[string]bool

	SearchColumns []string
	DefaultSort   string
}

func (cfg ResourceConfig) orDefaultSort() string {
	if cfg.DefaultSort != "" {
		return cfg.DefaultSort
	}
	return "created_at DESC"
}

// BuildListQuery applies a QuerySpec to the resource's base SELECT in a fixed
// order: filter, search, sort, projection, pagination. Sort and pagination
// therefore always act on the filtered+searched set.
func BuildListQuery(cfg ResourceConfig, spec types.QuerySpec) (sq.SelectBuilder, error) {
	columns, err := projectionColumns(cfg, spec)
	if err != nil {
		return sq.SelectBuilder{}, err
	}

	builder := sq.Select(columns...).From(cfg.Table).PlaceholderFormat(sq.Dollar)
	builder, err = applyConditions(builder, cfg, spec)
	if err != nil {
		return sq.SelectBuilder{}, err
	}

	builder, err = applySort(builder, cfg, spec)
	if err != nil {
		return sq.SelectBuilder{}, err
	}

	if spec.Limit > 0 {
		builder = builder.Limit(spec.Limit).Offset(spec.Offset())
	}
	return builder, nil
}

// BuildCountQuery builds the COUNT(*) companion of BuildListQuery with the
// exact same filter and search conditions, so totals always reflect the
// filtered set.
func BuildCountQuery(cfg ResourceConfig, spec types.QuerySpec) (sq.SelectBuilder, error) {
	builder := sq.Select("COUNT(*)").From(cfg.Table).PlaceholderFormat(sq.Dollar)
	return applyConditions(builder, cfg, spec)
}

func applyConditions(builder sq.SelectBuilder, cfg ResourceConfig, spec types.QuerySpec) (sq.SelectBuilder, error) {
	for field, conditions := range spec.Filters {
		column, ok := cfg.ColumnMap[field]
		if !ok {
			return builder, apperrors.NewHttpError(
				http.StatusBadRequest,
				fmt.Sprintf("unknown filter field '%s'", field),
				apperrors.ErrInvalidQueryParameter,
				map[string]interface{}{"field": field, "table": cfg.Table},
			)
		}
		for _, cond := range conditions {
			switch cond.Op {
			case types.FilterOpEq:
				builder = builder.Where(sq.Eq{column: cond.Value})
			case types.FilterOpGt:
				builder = builder.Where(sq.Gt{column: cond.Value})
			case types.FilterOpGte:
				builder = builder.Where(sq.GtOrEq{column: cond.Value})
			case types.FilterOpLt:
				builder = builder.Where(sq.Lt{column: cond.Value})
			case types.FilterOpLte:
				builder = builder.Where(sq.LtOrEq{column: cond.Value})
			case types.FilterOpIn:
				builder = builder.Where(sq.Eq{column: cond.Values})
			default:
				return builder, apperrors.NewHttpError(
					http.StatusBadRequest,
					fmt.Sprintf("unsupported filter operator '%s'", cond.Op),
					apperrors.ErrInvalidQueryParameter,
					map[string]interface{}{"field": field},
				)
			}
		}
	}

	if spec.Keyword != "" && len(cfg.SearchColumns) > 0 {
		pattern := "%" + spec.Keyword + "%"
		var conditions []sq.Sqlizer
		for _, col := range cfg.SearchColumns {
			conditions = append(conditions, sq.Expr(fmt.Sprintf("%s ILIKE ?", col), pattern))
		}
		builder = builder.Where(sq.Or(conditions))
	}

	return builder, nil
}

func applySort(builder sq.SelectBuilder, cfg ResourceConfig, spec types.QuerySpec) (sq.SelectBuilder, error) {
	if len(spec.Sort) == 0 {
		return builder.OrderBy(cfg.orDefaultSort()), nil
	}

	for _, key := range spec.Sort {
		column, ok := cfg.ColumnMap[key.Field]
		if !ok {
			return builder, apperrors.NewHttpError(
				http.StatusBadRequest,
				fmt.Sprintf("unknown sort field '%s'", key.Field),
				apperrors.ErrInvalidSortField,
				map[string]interface{}{"field": key.Field, "table": cfg.Table},
			)
		}
		expr := column
		if cfg.TextColumns[column] {
			expr = fmt.Sprintf("LOWER(%s)", column)
		}
		direction := "ASC"
		if key.Desc {
			direction = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", expr, direction))
	}
	return builder, nil
}

func projectionColumns(cfg ResourceConfig, spec types.QuerySpec) ([]string, error) {
	if len(spec.Fields) == 0 {
		return cfg.Columns, nil
	}

	columns := make([]string, 0, len(spec.Fields))
	seen := make(map[string]bool)
	for _, field := range spec.Fields {
		column, ok := cfg.ColumnMap[field]
		if !ok || seen[column] {
			continue
		}
		seen[column] = true
		columns = append(columns, column)
	}
	if len(columns) == 0 {
		return cfg.Columns, nil
	}
	// id always rides along so callers can reference records
	if !seen["id"] && contains(cfg.Columns, "id") {
		columns = append([]string{"id"}, columns...)
	}
	return columns, nil
}

func contains(list []string, item string) bool {
	for _, val := range list {
		if strings.EqualFold(val, item) {
			return true
		}
	}
	return false
}
