package validator

import "github.com/shopspring/decimal"

// 検証済みの値。存在しない（null/未指定）項目は入らない
type Values map[string]any

func (v Values) Int(field string) (int64, bool) {
	i, ok := v[field].(int64)
	return i, ok
}

func (v Values) String(field string) (string, bool) {
	s, ok := v[field].(string)
	return s, ok
}

func (v Values) Decimal(field string) (decimal.Decimal, bool) {
	d, ok := v[field].(decimal.Decimal)
	return d, ok
}

// 部分更新用：無ければnil
func (v Values) IntPtr(field string) *int64 {
	if i, ok := v.Int(field); ok {
		return &i
	}
	return nil
}

func (v Values) StringPtr(field string) *string {
	if s, ok := v.String(field); ok {
		return &s
	}
	return nil
}

func (v Values) DecimalPtr(field string) *decimal.Decimal {
	if d, ok := v.Decimal(field); ok {
		return &d
	}
	return nil
}
