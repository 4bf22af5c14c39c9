package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// 値の型
type Type int

const (
	TypeString Type = iota + 1
	TypeInteger
	TypeNumeric
)

// 1項目分のルール
type Rule struct {
	Field    string
	Required bool
	Nullable bool
	Type     Type
}

// エンドポイントごとのルール表
type RuleSet []Rule

// Errorsは項目名→メッセージ一覧。422のerrorsにそのまま入る
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Validate はinputをルール表で検査する。
// 1つでも失敗すれば Errors を返し、Values は返さない。
// 成功時の Values はルールの型に変換済み（int64 / decimal.Decimal / string）。
func (rs RuleSet) Validate(input map[string]any) (Values, error) {
	errs := Errors{}
	out := Values{}

	for _, r := range rs {
		v, present := input[r.Field]
		raw := normalize(v)

		if raw == nil {
			switch {
			case r.Required:
				errs.add(r.Field, requiredMessage(r.Field))
			case present && !r.Nullable:
				// nullを明示的に送ったがnullableではない
				errs.add(r.Field, typeMessage(r.Field, r.Type))
			}
			continue
		}

		cv, ok := coerce(r.Type, raw)
		if !ok {
			errs.add(r.Field, typeMessage(r.Field, r.Type))
			continue
		}
		out[r.Field] = cv
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// 文字列はtrimして、空文字はnull扱い
func normalize(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

func coerce(t Type, v any) (any, bool) {
	switch t {
	case TypeString:
		s, ok := v.(string)
		return s, ok
	case TypeInteger:
		return toInt(v)
	case TypeNumeric:
		return toDecimal(v)
	}
	return nil, false
}

func toInt(v any) (int64, bool) {
	switch x := v.(type) {
	case json.Number:
		i, err := strconv.ParseInt(x.String(), 10, 64)
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(x, 10, 64)
		return i, err == nil
	case float64:
		if x != math.Trunc(x) || x > math.MaxInt64 || x < math.MinInt64 {
			return 0, false
		}
		return int64(x), true
	case int:
		return int64(x), true
	case int64:
		return x, true
	}
	return 0, false
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(x)
		return d, err == nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(x), true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	}
	return decimal.Decimal{}, false
}

func requiredMessage(field string) string {
	return fmt.Sprintf("The %s field is required.", attribute(field))
}

func typeMessage(field string, t Type) string {
	switch t {
	case TypeInteger:
		return fmt.Sprintf("The %s field must be an integer.", attribute(field))
	case TypeNumeric:
		return fmt.Sprintf("The %s field must be a number.", attribute(field))
	default:
		return fmt.Sprintf("The %s field must be a string.", attribute(field))
	}
}

func attribute(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
