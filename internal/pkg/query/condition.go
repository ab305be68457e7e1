package query

import "fmt"

// Operator is the comparison applied by a filter predicate.
type Operator string

const (
	OpEq  Operator = "="
	OpLt  Operator = "<"
	OpLte Operator = "<="
	OpGt  Operator = ">"
	OpGte Operator = ">="
)

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("id_shop", 1) generates "id_shop = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for equality comparison.
func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// inCondition implements set membership (field IN UNNEST(@array)).
type inCondition struct {
	field  string
	values []interface{}
}

// In creates a WHERE condition matching any of the given values.
// Example: In("id_category", 3, 5) generates "id_category IN UNNEST(@p0)"
// with an array parameter holding [3, 5].
func In(field string, values ...interface{}) Condition {
	return &inCondition{
		field:  field,
		values: values,
	}
}

// SQL generates the SQL fragment for set membership.
func (c *inCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s IN UNNEST(@%s)", c.field, paramName)
	params := map[string]interface{}{
		paramName: arrayParam(c.values),
	}
	return sql, params
}

// cmpCondition implements ordered comparison (field <op> value).
type cmpCondition struct {
	field string
	op    Operator
	value interface{}
}

// Cmp creates a WHERE condition for an ordered comparison.
// Example: Cmp("quantity", OpGt, 0) generates "quantity > @p0"
func Cmp(field string, op Operator, value interface{}) Condition {
	return &cmpCondition{
		field: field,
		op:    op,
		value: value,
	}
}

// SQL generates the SQL fragment for an ordered comparison.
func (c *cmpCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s %s @%s", c.field, c.op, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// arrayParam converts a value list into a typed slice when homogeneous,
// since Spanner array parameters must carry a concrete element type.
func arrayParam(values []interface{}) interface{} {
	if ints, ok := int64Slice(values); ok {
		return ints
	}
	if strs, ok := stringSlice(values); ok {
		return strs
	}
	if floats, ok := float64Slice(values); ok {
		return floats
	}
	return values
}

func int64Slice(values []interface{}) ([]int64, bool) {
	out := make([]int64, 0, len(values))
	for _, v := range values {
		switch n := v.(type) {
		case int64:
			out = append(out, n)
		case int:
			out = append(out, int64(n))
		default:
			return nil, false
		}
	}
	return out, true
}

func stringSlice(values []interface{}) ([]string, bool) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func float64Slice(values []interface{}) ([]float64, bool) {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		f, ok := v.(float64)
		if !ok {
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}
