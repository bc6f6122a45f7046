package schema

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rebeliceyang/lazyfilter/internal/models"
)

// Querier is the part of a pgx pool or connection used for introspection
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Connect opens a small pool suitable for reading catalog metadata
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}

	poolConfig.MaxConns = 2
	poolConfig.MinConns = 0
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// HasEnvironment reports whether libpq environment variables name a server.
// An empty connection string passed to Connect reads PGHOST, PGPORT,
// PGDATABASE, PGUSER, PGPASSWORD and PGSSLMODE.
func HasEnvironment() bool {
	for _, key := range []string{"PGHOST", "PGDATABASE", "PGSERVICE"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

const columnsQuery = `
	SELECT column_name, data_type, udt_schema, udt_name
	FROM information_schema.columns
	WHERE table_schema = $1 AND table_name = $2
	ORDER BY ordinal_position`

const enumLabelsQuery = `
	SELECT e.enumlabel
	FROM pg_type t
	JOIN pg_namespace n ON n.oid = t.typnamespace
	JOIN pg_enum e ON e.enumtypid = t.oid
	WHERE n.nspname = $1 AND t.typname = $2
	ORDER BY e.enumsortorder`

// Introspect builds a schema from a table's columns. Enum and enum-array
// columns become multi-select columns over the enum labels; columns with no
// matching kind (json, bytea, geometry, ...) are skipped.
func Introspect(ctx context.Context, q Querier, schemaName, table string) ([]models.ColumnDef, error) {
	rows, err := q.Query(ctx, columnsQuery, schemaName, table)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	type pgColumn struct {
		Name      string
		DataType  string
		UDTSchema string
		UDTName   string
	}
	pgColumns, err := pgx.CollectRows(rows, pgx.RowToStructByPos[pgColumn])
	if err != nil {
		return nil, fmt.Errorf("failed to scan columns: %w", err)
	}
	if len(pgColumns) == 0 {
		return nil, fmt.Errorf("table %s.%s not found or has no columns", schemaName, table)
	}

	var columns []models.ColumnDef
	for _, pc := range pgColumns {
		if isEnumType(pc.DataType, pc.UDTName) {
			labels, err := enumLabels(ctx, q, pc.UDTSchema, strings.TrimPrefix(pc.UDTName, "_"))
			if err != nil {
				return nil, err
			}
			if len(labels) > 0 {
				columns = append(columns, models.MultiSelectColumn(pc.Name, OptionsFromValues(labels)...))
				continue
			}
		}

		kind, ok := KindForType(pc.DataType)
		if !ok {
			continue
		}
		columns = append(columns, models.ColumnDef{Field: pc.Name, Kind: kind})
	}

	if err := Validate(columns); err != nil {
		return nil, err
	}
	return columns, nil
}

func enumLabels(ctx context.Context, q Querier, typeSchema, typeName string) ([]string, error) {
	rows, err := q.Query(ctx, enumLabelsQuery, typeSchema, typeName)
	if err != nil {
		return nil, fmt.Errorf("failed to get enum labels for %s: %w", typeName, err)
	}
	labels, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan enum labels for %s: %w", typeName, err)
	}
	return labels, nil
}

func isEnumType(dataType, udtName string) bool {
	return dataType == "USER-DEFINED" || (dataType == "ARRAY" && strings.HasPrefix(udtName, "_"))
}

// KindForType maps an information_schema data_type to a column kind
func KindForType(dataType string) (models.ColumnKind, bool) {
	t := strings.ToLower(dataType)
	switch {
	case strings.Contains(t, "int") && !strings.Contains(t, "interval") && !strings.Contains(t, "point"),
		strings.Contains(t, "numeric"), strings.Contains(t, "decimal"),
		strings.Contains(t, "real"), strings.Contains(t, "double"), t == "money":
		return models.KindNumber, true
	case strings.Contains(t, "bool"):
		return models.KindBoolean, true
	case strings.Contains(t, "date"), strings.HasPrefix(t, "timestamp"):
		return models.KindDate, true
	case strings.Contains(t, "char"), strings.Contains(t, "text"), t == "uuid", t == "citext", t == "name":
		return models.KindString, true
	default:
		return "", false
	}
}
