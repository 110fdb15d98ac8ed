package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/fanoutgo/internal/config"
	"github.com/specialistvlad/fanoutgo/internal/schema"
)

// translateRecord converts the HCL record block into the agnostic spec.
// The values expression accepts either a flat list of numbers (dimensioned
// by the rows/cols attributes, defaulting to a single row) or a list of
// rows, in which case the dimensions are inferred.
func (l *Loader) translateRecord(rec *schema.Record, filePath string) (*config.RecordSpec, error) {
	spec := &config.RecordSpec{
		Tag:   rec.Tag,
		Label: rec.Label,
		Rows:  rec.Rows,
		Cols:  rec.Cols,
	}
	if rec.Values == nil {
		return spec, nil
	}

	val, diags := rec.Values.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("record block in %s: failed to evaluate values: %w", filePath, diags)
	}
	if val.IsNull() || !val.CanIterateElements() {
		return nil, fmt.Errorf("record block in %s: values must be a list of numbers or a list of rows", filePath)
	}

	nested, err := isNestedList(val)
	if err != nil {
		return nil, fmt.Errorf("record block in %s: %w", filePath, err)
	}

	if nested {
		rows, cols, flat, err := flattenRows(val)
		if err != nil {
			return nil, fmt.Errorf("record block in %s: %w", filePath, err)
		}
		spec.Rows, spec.Cols, spec.Values = rows, cols, flat
		return spec, nil
	}

	flat, err := numberSlice(val)
	if err != nil {
		return nil, fmt.Errorf("record block in %s: %w", filePath, err)
	}
	spec.Values = flat
	if spec.Rows == 0 && spec.Cols == 0 {
		spec.Rows, spec.Cols = 1, len(flat)
	}
	return spec, nil
}

// isNestedList reports whether the first element of val is itself a
// collection, i.e. the values were written as a list of rows.
func isNestedList(val cty.Value) (bool, error) {
	it := val.ElementIterator()
	if !it.Next() {
		return false, fmt.Errorf("values must not be empty")
	}
	_, first := it.Element()
	ty := first.Type()
	return ty.IsTupleType() || ty.IsListType(), nil
}

// flattenRows converts a list of equally sized rows into a dense row-major
// buffer with inferred dimensions.
func flattenRows(val cty.Value) (rows, cols int, flat []float64, err error) {
	it := val.ElementIterator()
	for it.Next() {
		_, rowVal := it.Element()
		if !rowVal.CanIterateElements() {
			return 0, 0, nil, fmt.Errorf("row %d of values is not a list", rows)
		}
		row, err := numberSlice(rowVal)
		if err != nil {
			return 0, 0, nil, fmt.Errorf("row %d of values: %w", rows, err)
		}
		if rows == 0 {
			cols = len(row)
		} else if len(row) != cols {
			return 0, 0, nil, fmt.Errorf("row %d has %d values, expected %d", rows, len(row), cols)
		}
		flat = append(flat, row...)
		rows++
	}
	return rows, cols, flat, nil
}

// numberSlice converts a cty collection of numbers into a float64 slice.
func numberSlice(val cty.Value) ([]float64, error) {
	var out []float64
	it := val.ElementIterator()
	for it.Next() {
		_, elem := it.Element()
		num, err := convert.Convert(elem, cty.Number)
		if err != nil {
			return nil, fmt.Errorf("value %v is not a number: %w", elem, err)
		}
		var f float64
		if err := gocty.FromCtyValue(num, &f); err != nil {
			return nil, fmt.Errorf("failed to read numeric value: %w", err)
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("values must not be empty")
	}
	return out, nil
}
