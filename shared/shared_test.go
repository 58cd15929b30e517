package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"busline/shared"
	"busline/shared/constant"
	"busline/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "numeric true", input: "1", expected: boolPtr(true)},
		{name: "invalid string returns nil", input: "invalid", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 0))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 10))
	assert.Equal(t, 2, shared.CalculateTotalPage(11, 10))
	assert.Equal(t, 5, shared.CalculateTotalPage(42, 10))
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name     string `db:"name"`
		Status   string `db:"status"`
		Untagged string
	}

	fields := shared.TransformFields(update{Name: "Volvo 9600", Untagged: "skipped"}, "admin-1")

	assert.Equal(t, "Volvo 9600", fields["name"])
	assert.NotContains(t, fields, "status")
	assert.NotContains(t, fields, "Untagged")
	assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("trip-1", "id", "trips")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(trips.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "trip-1"}, args)
}

func TestBuildCacheKeyWithQueryIsDeterministic(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "scheduled"},
			dto.Filter{Field: "route_id", Operator: dto.FilterOperatorEq, Value: "r1"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("trip:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("trip:gets", params, filter)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "trip:gets")
}

func boolPtr(b bool) *bool {
	return &b
}
