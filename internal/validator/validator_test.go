package validator_test

import (
	"encoding/json"
	"testing"

	"productapi/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireErrors(t *testing.T, err error) validator.Errors {
	t.Helper()
	require.Error(t, err)
	errs, ok := err.(validator.Errors)
	require.True(t, ok, "expected validator.Errors, got %T", err)
	return errs
}

func TestValidate_CreateProduct_OK(t *testing.T) {
	v, err := validator.CreateProductRules.Validate(map[string]any{
		"name":        "  Smartphone ",
		"price":       json.Number("299.99"),
		"description": "A high-end smartphone",
	})
	require.NoError(t, err)

	name, ok := v.String("name")
	assert.True(t, ok)
	assert.Equal(t, "Smartphone", name)

	price, ok := v.Decimal("price")
	assert.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("299.99")))

	assert.Nil(t, v.IntPtr("stock"))
}

func TestValidate_CreateProduct_MissingPrice(t *testing.T) {
	_, err := validator.CreateProductRules.Validate(map[string]any{
		"name":        "Smartphone",
		"description": "A high-end smartphone",
	})
	errs := requireErrors(t, err)

	assert.Equal(t, validator.Errors{
		"price": {"The price field is required."},
	}, errs)
}

func TestValidate_CreateProduct_AllMissing(t *testing.T) {
	_, err := validator.CreateProductRules.Validate(map[string]any{})
	errs := requireErrors(t, err)

	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "description")
	assert.NotContains(t, errs, "stock")
}

func TestValidate_CreateProduct_WrongTypes(t *testing.T) {
	_, err := validator.CreateProductRules.Validate(map[string]any{
		"name":        json.Number("12"),
		"price":       "abc",
		"description": true,
		"stock":       "1.5",
	})
	errs := requireErrors(t, err)

	assert.Equal(t, []string{"The name field must be a string."}, errs["name"])
	assert.Equal(t, []string{"The price field must be a number."}, errs["price"])
	assert.Equal(t, []string{"The description field must be a string."}, errs["description"])
	assert.Equal(t, []string{"The stock field must be an integer."}, errs["stock"])
}

// 空文字・空白だけは未指定と同じ
func TestValidate_EmptyStringCountsAsMissing(t *testing.T) {
	_, err := validator.GetProductRules.Validate(map[string]any{"id": "   "})
	errs := requireErrors(t, err)

	assert.Equal(t, []string{"The id field is required."}, errs["id"])
}

func TestValidate_Integer(t *testing.T) {
	cases := []struct {
		name  string
		in    any
		want  int64
		valid bool
	}{
		{"json number", json.Number("5"), 5, true},
		{"string", "42", 42, true},
		{"negative string", "-3", -3, true},
		{"float integral", float64(7), 7, true},
		{"int", 9, 9, true},
		{"json decimal", json.Number("5.5"), 0, false},
		{"json exponent", json.Number("1e3"), 0, false},
		{"string decimal", "5.0", 0, false},
		{"text", "abc", 0, false},
		{"bool", true, 0, false},
		{"object", map[string]any{"a": 1}, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := validator.GetProductRules.Validate(map[string]any{"id": tc.in})
			if !tc.valid {
				errs := requireErrors(t, err)
				assert.Equal(t, []string{"The id field must be an integer."}, errs["id"])
				return
			}
			require.NoError(t, err)
			id, ok := v.Int("id")
			assert.True(t, ok)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestValidate_Numeric(t *testing.T) {
	cases := []struct {
		name  string
		in    any
		want  string
		valid bool
	}{
		{"json number", json.Number("399.99"), "399.99", true},
		{"json integer", json.Number("10"), "10", true},
		{"string", "12.5", "12.5", true},
		{"exponent", "1e2", "100", true},
		{"float", 1.25, "1.25", true},
		{"text", "ten", "", false},
		{"bool", false, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := validator.UpdateProductRules.Validate(map[string]any{"id": "1", "price": tc.in})
			if !tc.valid {
				errs := requireErrors(t, err)
				assert.Equal(t, []string{"The price field must be a number."}, errs["price"])
				return
			}
			require.NoError(t, err)
			price := v.DecimalPtr("price")
			require.NotNil(t, price)
			assert.True(t, price.Equal(decimal.RequireFromString(tc.want)), "got %s", price)
		})
	}
}

// updateは任意項目にnullを送ってもよい
func TestValidate_UpdateProduct_NullableFields(t *testing.T) {
	v, err := validator.UpdateProductRules.Validate(map[string]any{
		"id":          json.Number("3"),
		"name":        nil,
		"price":       json.Number("399.99"),
		"description": nil,
		"stock":       nil,
	})
	require.NoError(t, err)

	assert.Nil(t, v.StringPtr("name"))
	assert.Nil(t, v.StringPtr("description"))
	assert.Nil(t, v.IntPtr("stock"))
	assert.NotNil(t, v.DecimalPtr("price"))
}

func TestValidate_UpdateProduct_MissingID(t *testing.T) {
	_, err := validator.UpdateProductRules.Validate(map[string]any{"name": "x"})
	errs := requireErrors(t, err)
	assert.Equal(t, []string{"The id field is required."}, errs["id"])
}

// nullableでない任意項目にnullを明示するのはNG
func TestValidate_ExplicitNullOnNonNullable(t *testing.T) {
	rules := validator.RuleSet{{Field: "note", Type: validator.TypeString}}

	_, err := rules.Validate(map[string]any{"note": nil})
	errs := requireErrors(t, err)
	assert.Equal(t, []string{"The note field must be a string."}, errs["note"])

	_, err = rules.Validate(map[string]any{})
	assert.NoError(t, err)
}

func TestValidate_ListProducts_NoRules(t *testing.T) {
	v, err := validator.ListProductsRules.Validate(map[string]any{"anything": "goes"})
	assert.NoError(t, err)
	assert.Empty(t, v)
}

func TestValidate_AttributeNameUsesSpaces(t *testing.T) {
	rules := validator.RuleSet{{Field: "unit_price", Required: true, Type: validator.TypeNumeric}}

	_, err := rules.Validate(map[string]any{})
	errs := requireErrors(t, err)
	assert.Equal(t, []string{"The unit price field is required."}, errs["unit_price"])
}

func TestErrors_Error(t *testing.T) {
	errs := validator.Errors{
		"price": {"The price field is required."},
		"id":    {"The id field must be an integer."},
	}
	assert.Equal(t,
		"validation failed: id: The id field must be an integer.; price: The price field is required.",
		errs.Error())
}
