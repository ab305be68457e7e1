package query

import (
	"fmt"
	"sort"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

// filter is one plain predicate: a field, a value set, and an operator.
// With OpEq the value set is matched as set membership; with an ordered
// operator every value becomes its own comparison, so range bounds on the
// same field accumulate with AND.
type filter struct {
	field  string
	values []interface{}
	op     Operator
}

// conditions compiles the filter into WHERE conditions.
func (f filter) conditions() []Condition {
	if f.op == OpEq {
		if len(f.values) == 1 {
			return []Condition{Eq(f.field, f.values[0])}
		}
		return []Condition{In(f.field, f.values...)}
	}
	conds := make([]Condition, 0, len(f.values))
	for _, v := range f.values {
		conds = append(conds, Cmp(f.field, f.op, v))
	}
	return conds
}

// populationSnapshot holds filter state materialized as the initial
// population: the id set every later predicate is evaluated against.
type populationSnapshot struct {
	filters    []filter
	operations map[string][][]Condition
	groupBy    []string
}

// Builder accumulates filters, named operations-filter groups, grouping,
// ordering and pagination for one product search, then compiles them into
// spanner.Statement values. Auto-generates parameter names to prevent
// manual synchronization errors.
//
// A Builder is mutable state owned by a single search invocation. It must
// not be shared across concurrent searches.
type Builder struct {
	table      string
	idField    string
	selectCols []string
	filters    []filter
	operations map[string][][]Condition
	groupBy    []string
	orderByCol string
	orderByDir Direction
	limitVal   int64
	offsetVal  int64
	population *populationSnapshot
}

// From creates a new Builder for the specified table, identifying rows by
// idField for grouping and population materialization.
func From(table, idField string) *Builder {
	return &Builder{
		table:      table,
		idField:    idField,
		operations: make(map[string][][]Condition),
	}
}

// AddFilter adds a predicate on field. With OpEq the values are matched as
// ANY-of; with an ordered operator each value is a separate bound combined
// by AND. Adding an empty value set is a no-op.
func (b *Builder) AddFilter(field string, values []interface{}, op Operator) *Builder {
	if len(values) == 0 {
		return b
	}
	b.filters = append(b.filters, filter{field: field, values: values, op: op})
	return b
}

// ResetFilter removes every plain predicate previously added on field.
func (b *Builder) ResetFilter(field string) *Builder {
	kept := b.filters[:0]
	for _, f := range b.filters {
		if f.field != field {
			kept = append(kept, f)
		}
	}
	b.filters = kept
	return b
}

// AddOperationsFilter registers a named OR-of-AND predicate group: the
// group holds one or more conjunctions and matches when any conjunction
// holds. Groups combine with AND across distinct names. Re-adding a name
// replaces its content.
func (b *Builder) AddOperationsFilter(name string, groups [][]Condition) *Builder {
	b.operations[name] = groups
	return b
}

// AddGroupBy groups results by field, de-duplicating multi-row matches.
// Idempotent, including across a population materialization.
func (b *Builder) AddGroupBy(field string) *Builder {
	if b.population != nil {
		for _, g := range b.population.groupBy {
			if g == field {
				return b
			}
		}
	}
	for _, g := range b.groupBy {
		if g == field {
			return b
		}
	}
	b.groupBy = append(b.groupBy, field)
	return b
}

// AddSelect appends expressions to the select list.
func (b *Builder) AddSelect(exprs ...string) *Builder {
	b.selectCols = append(b.selectCols, exprs...)
	return b
}

// OrderBy specifies the column and direction for sorting.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	b.orderByCol = column
	b.orderByDir = direction
	return b
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int64) *Builder {
	b.limitVal = limit
	return b
}

// Offset sets the number of rows to skip.
func (b *Builder) Offset(offset int64) *Builder {
	b.offsetVal = offset
	return b
}

// UseFiltersAsInitialPopulation materializes the current filter state as
// the base population: the compiled query constrains the id field to the
// id set those filters select, and the live filter state is cleared.
// Operations-filter groups added afterwards apply against that population
// without interfering with each other.
func (b *Builder) UseFiltersAsInitialPopulation() *Builder {
	b.population = &populationSnapshot{
		filters:    b.filters,
		operations: b.operations,
		groupBy:    b.groupBy,
	}
	b.filters = nil
	b.operations = make(map[string][][]Condition)
	b.groupBy = nil
	return b
}

// Build constructs the final spanner.Statement with SQL and parameters.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})
	paramIndex := 0

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	whereParts := b.whereParts(&paramIndex, params)
	if len(whereParts) > 0 {
		sql.WriteString(" WHERE ")
		sql.WriteString(strings.Join(whereParts, " AND "))
	}

	if len(b.groupBy) > 0 {
		sql.WriteString(" GROUP BY ")
		sql.WriteString(strings.Join(b.groupBy, ", "))
	}

	if b.orderByCol != "" {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(b.orderByCol)
		if b.orderByDir == Desc {
			sql.WriteString(" DESC")
		} else {
			sql.WriteString(" ASC")
		}
	}

	if b.limitVal > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limitVal
	}

	if b.offsetVal > 0 {
		sql.WriteString(" OFFSET @offset")
		params["offset"] = b.offsetVal
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

// BuildCount constructs a count statement over the same filtered set,
// without ordering or pagination. When results are grouped, the count is
// taken over distinct values of the first grouped field.
func (b *Builder) BuildCount() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})
	paramIndex := 0

	sql.WriteString("SELECT ")
	if countField := b.countField(); countField != "" {
		fmt.Fprintf(&sql, "COUNT(DISTINCT %s)", countField)
	} else {
		sql.WriteString("COUNT(*)")
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	whereParts := b.whereParts(&paramIndex, params)
	if len(whereParts) > 0 {
		sql.WriteString(" WHERE ")
		sql.WriteString(strings.Join(whereParts, " AND "))
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

// countField picks the grouped field the count should be distinct on.
func (b *Builder) countField() string {
	if len(b.groupBy) > 0 {
		return b.groupBy[0]
	}
	if b.population != nil && len(b.population.groupBy) > 0 {
		return b.idField
	}
	return ""
}

// whereParts compiles the population constraint, plain filters and
// operations groups into WHERE fragments. Operations groups compile in
// name order so the generated SQL is deterministic.
func (b *Builder) whereParts(paramIndex *int, params map[string]interface{}) []string {
	var parts []string

	if b.population != nil {
		parts = append(parts, b.populationSQL(paramIndex, params))
	}

	for _, f := range b.filters {
		for _, cond := range f.conditions() {
			fragment, condParams := cond.SQL(*paramIndex)
			parts = append(parts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			*paramIndex += len(condParams)
		}
	}

	names := make([]string, 0, len(b.operations))
	for name := range b.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if fragment := compileDisjunction(b.operations[name], paramIndex, params); fragment != "" {
			parts = append(parts, fragment)
		}
	}

	return parts
}

// populationSQL compiles the materialized base population into an
// id-membership sub-select.
func (b *Builder) populationSQL(paramIndex *int, params map[string]interface{}) string {
	inner := &Builder{
		table:      b.table,
		idField:    b.idField,
		filters:    b.population.filters,
		operations: b.population.operations,
	}

	var sql strings.Builder
	fmt.Fprintf(&sql, "%s IN (SELECT %s FROM %s", b.idField, b.idField, b.table)
	if whereParts := inner.whereParts(paramIndex, params); len(whereParts) > 0 {
		sql.WriteString(" WHERE ")
		sql.WriteString(strings.Join(whereParts, " AND "))
	}
	if len(b.population.groupBy) > 0 {
		sql.WriteString(" GROUP BY ")
		sql.WriteString(strings.Join(b.population.groupBy, ", "))
	}
	sql.WriteString(")")
	return sql.String()
}

// compileDisjunction compiles one operations group: OR across its
// conjunctions, AND inside each conjunction.
func compileDisjunction(groups [][]Condition, paramIndex *int, params map[string]interface{}) string {
	disjuncts := make([]string, 0, len(groups))
	for _, conjunction := range groups {
		conjuncts := make([]string, 0, len(conjunction))
		for _, cond := range conjunction {
			fragment, condParams := cond.SQL(*paramIndex)
			conjuncts = append(conjuncts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			*paramIndex += len(condParams)
		}
		if len(conjuncts) == 0 {
			continue
		}
		disjuncts = append(disjuncts, "("+strings.Join(conjuncts, " AND ")+")")
	}
	switch len(disjuncts) {
	case 0:
		return ""
	case 1:
		return disjuncts[0]
	default:
		return "(" + strings.Join(disjuncts, " OR ") + ")"
	}
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}
