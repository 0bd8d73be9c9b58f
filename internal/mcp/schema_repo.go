package mcp

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaRepo describes the liftplan tables, including the comments the
// migration attaches to them.
type SchemaRepo interface {
	LiftplanTables(ctx context.Context) ([]SchemaTable, error)
}

type SchemaTable struct {
	Name    string
	Comment string
	Columns []SchemaColumn
}

type SchemaColumn struct {
	Name     string
	DataType string
	Nullable bool
	Default  *string
	Comment  string
}

// liftplanTables is also the order tables are described in: capacities feed
// plans, plans feed sessions.
var liftplanTables = []string{"pattern_capacity", "weekly_plan", "set_log", "exercise_modification"}

type poolSchemaRepo struct {
	pool *pgxpool.Pool
}

func NewPoolSchemaRepo(pool *pgxpool.Pool) SchemaRepo {
	return &poolSchemaRepo{pool: pool}
}

func (r *poolSchemaRepo) LiftplanTables(ctx context.Context) ([]SchemaTable, error) {
	query := `
		SELECT c.table_name,
		       COALESCE(obj_description(t.oid, 'pg_class'), ''),
		       c.column_name,
		       c.data_type,
		       c.is_nullable = 'YES',
		       c.column_default,
		       COALESCE(col_description(t.oid, c.ordinal_position::int), '')
		FROM information_schema.columns c
		JOIN pg_catalog.pg_class t ON t.oid = format('%I.%I', c.table_schema, c.table_name)::regclass
		WHERE c.table_schema = 'public'
		  AND c.table_name::text = ANY($1::text[])
		ORDER BY array_position($1::text[], c.table_name::text), c.ordinal_position`
	rows, err := r.pool.Query(ctx, query, liftplanTables)
	if err != nil {
		return nil, fmt.Errorf("query liftplan tables: %w", err)
	}
	defer rows.Close()

	var tables []SchemaTable
	for rows.Next() {
		var (
			tableName, tableComment string
			col                     SchemaColumn
		)
		if err := rows.Scan(
			&tableName, &tableComment,
			&col.Name, &col.DataType, &col.Nullable, &col.Default, &col.Comment,
		); err != nil {
			return nil, fmt.Errorf("scan column row: %w", err)
		}
		if n := len(tables); n == 0 || tables[n-1].Name != tableName {
			tables = append(tables, SchemaTable{Name: tableName, Comment: tableComment})
		}
		last := &tables[len(tables)-1]
		last.Columns = append(last.Columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating columns: %w", err)
	}

	return tables, nil
}
