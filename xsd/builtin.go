package xsd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc/xsdns"
)

var (
	booleanDatatype  Datatype
	integerDatatype  Datatype
	doubleDatatype   Datatype
	decimalDatatype  Datatype
	dateTimeDatatype Datatype
)

func init() {
	booleanDatatype = newBooleanDatatype()
	integerDatatype = newIntegerDatatype()
	doubleDatatype = newDoubleDatatype()
	decimalDatatype = newDecimalDatatype()
	dateTimeDatatype = newDateTimeDatatype()

	Register(stringDatatype)
	Register(booleanDatatype)
	Register(integerDatatype)
	Register(doubleDatatype)
	Register(decimalDatatype)
	Register(dateTimeDatatype)
}

var stringDatatype = Datatype{
	ID:               xsdns.String,
	Name:             "string",
	Valid:            func(string) bool { return true },
	CanonicalLexical: func(s string) string { return s },
	Value:            func(s string) (interface{}, error) { return s, nil },
	EqualValue:       func(a, b string) bool { return a == b },
	Compare: func(a, b string) Ordering {
		switch {
		case a < b:
			return Less
		case a > b:
			return Greater
		default:
			return Equal
		}
	},
	Cast: func(l term.Literal) (term.Literal, bool) {
		lex := l.Lexical
		if dt, ok := Lookup(l.Datatype); ok && dt.CanonicalLexical != nil && dt.Valid != nil && dt.Valid(l.Lexical) {
			lex = dt.CanonicalLexical(l.Lexical)
		}
		return term.Literal{Lexical: lex, Datatype: xsdns.String}, true
	},
	Update: func(l term.Literal, f func(interface{}) interface{}) (term.Literal, error) {
		nv := f(l.Lexical)
		s, ok := nv.(string)
		if !ok {
			return term.Literal{}, fmt.Errorf("xsd: string Update function must return a string, got %T", nv)
		}
		return term.Literal{Lexical: s, Datatype: xsdns.String}, nil
	},
}

func newBooleanDatatype() Datatype {
	return Datatype{
		ID:   xsdns.Boolean,
		Name: "boolean",
		Valid: func(s string) bool {
			return s == "true" || s == "false" || s == "1" || s == "0"
		},
		CanonicalLexical: func(s string) string {
			if s == "true" || s == "1" {
				return "true"
			}
			return "false"
		},
		Value: func(s string) (interface{}, error) {
			return s == "true" || s == "1", nil
		},
		EqualValue: func(a, b string) bool {
			av, _ := booleanDatatype.Value(a)
			bv, _ := booleanDatatype.Value(b)
			return av == bv
		},
		Compare: func(a, b string) Ordering {
			av, _ := booleanDatatype.Value(a)
			bv, _ := booleanDatatype.Value(b)
			if av == bv {
				return Equal
			}
			return Incomparable
		},
		Cast: func(l term.Literal) (term.Literal, bool) {
			switch l.Datatype {
			case xsdns.Boolean:
				if !booleanDatatype.Valid(l.Lexical) {
					return term.Literal{}, false
				}
				return term.Literal{Lexical: booleanDatatype.CanonicalLexical(l.Lexical), Datatype: xsdns.Boolean}, true
			case xsdns.Integer:
				n, err := strconv.ParseInt(l.Lexical, 10, 64)
				if err != nil {
					return term.Literal{}, false
				}
				if n == 0 {
					return term.Literal{Lexical: "false", Datatype: xsdns.Boolean}, true
				}
				return term.Literal{Lexical: "true", Datatype: xsdns.Boolean}, true
			case xsdns.String, "":
				if !booleanDatatype.Valid(l.Lexical) {
					return term.Literal{}, false
				}
				return term.Literal{Lexical: booleanDatatype.CanonicalLexical(l.Lexical), Datatype: xsdns.Boolean}, true
			default:
				return term.Literal{}, false
			}
		},
		Update: func(l term.Literal, f func(interface{}) interface{}) (term.Literal, error) {
			v, err := booleanDatatype.Value(l.Lexical)
			if err != nil {
				return term.Literal{}, err
			}
			nv := f(v)
			b, ok := nv.(bool)
			if !ok {
				return term.Literal{}, fmt.Errorf("xsd: boolean Update function must return a bool, got %T", nv)
			}
			lex := "false"
			if b {
				lex = "true"
			}
			return term.Literal{Lexical: lex, Datatype: xsdns.Boolean}, nil
		},
	}
}

func newIntegerDatatype() Datatype {
	return Datatype{
		ID:   xsdns.Integer,
		Name: "integer",
		Valid: func(s string) bool {
			_, err := strconv.ParseInt(s, 10, 64)
			return err == nil
		},
		CanonicalLexical: func(s string) string {
			v, _ := strconv.ParseInt(s, 10, 64)
			return strconv.FormatInt(v, 10)
		},
		Value: func(s string) (interface{}, error) { return strconv.ParseInt(s, 10, 64) },
		EqualValue: func(a, b string) bool {
			av, erra := strconv.ParseInt(a, 10, 64)
			bv, errb := strconv.ParseInt(b, 10, 64)
			return erra == nil && errb == nil && av == bv
		},
		Compare: func(a, b string) Ordering {
			av, erra := strconv.ParseInt(a, 10, 64)
			bv, errb := strconv.ParseInt(b, 10, 64)
			if erra != nil || errb != nil {
				return Incomparable
			}
			return cmpInt64(av, bv)
		},
		Cast: func(l term.Literal) (term.Literal, bool) {
			switch l.Datatype {
			case xsdns.Integer:
				if !integerDatatype.Valid(l.Lexical) {
					return term.Literal{}, false
				}
				return term.Literal{Lexical: integerDatatype.CanonicalLexical(l.Lexical), Datatype: xsdns.Integer}, true
			case xsdns.Double, xsdns.Decimal:
				f, err := strconv.ParseFloat(l.Lexical, 64)
				if err != nil {
					return term.Literal{}, false
				}
				return term.Literal{Lexical: strconv.FormatInt(int64(f), 10), Datatype: xsdns.Integer}, true
			case xsdns.Boolean:
				v, err := booleanDatatype.Value(l.Lexical)
				if err != nil {
					return term.Literal{}, false
				}
				if v.(bool) {
					return term.Literal{Lexical: "1", Datatype: xsdns.Integer}, true
				}
				return term.Literal{Lexical: "0", Datatype: xsdns.Integer}, true
			case xsdns.String, "":
				n, err := strconv.ParseInt(l.Lexical, 10, 64)
				if err != nil {
					return term.Literal{}, false
				}
				return term.Literal{Lexical: strconv.FormatInt(n, 10), Datatype: xsdns.Integer}, true
			default:
				return term.Literal{}, false
			}
		},
		Update: func(l term.Literal, f func(interface{}) interface{}) (term.Literal, error) {
			v, err := integerDatatype.Value(l.Lexical)
			if err != nil {
				return term.Literal{}, err
			}
			nv := f(v)
			n, ok := nv.(int64)
			if !ok {
				return term.Literal{}, fmt.Errorf("xsd: integer Update function must return an int64, got %T", nv)
			}
			return term.Literal{Lexical: strconv.FormatInt(n, 10), Datatype: xsdns.Integer}, nil
		},
	}
}

func newDoubleDatatype() Datatype {
	return Datatype{
		ID:   xsdns.Double,
		Name: "double",
		Valid: func(s string) bool {
			_, err := strconv.ParseFloat(s, 64)
			return err == nil
		},
		CanonicalLexical: func(s string) string {
			v, _ := strconv.ParseFloat(s, 64)
			return strconv.FormatFloat(v, 'E', -1, 64)
		},
		Value: func(s string) (interface{}, error) { return strconv.ParseFloat(s, 64) },
		EqualValue: func(a, b string) bool {
			av, erra := strconv.ParseFloat(a, 64)
			bv, errb := strconv.ParseFloat(b, 64)
			return erra == nil && errb == nil && av == bv
		},
		Compare: func(a, b string) Ordering {
			av, erra := strconv.ParseFloat(a, 64)
			bv, errb := strconv.ParseFloat(b, 64)
			if erra != nil || errb != nil {
				return Incomparable
			}
			return cmpFloat64(av, bv)
		},
		Cast: func(l term.Literal) (term.Literal, bool) {
			switch l.Datatype {
			case xsdns.Double, xsdns.Decimal, xsdns.Integer, xsdns.String, "":
				f, err := strconv.ParseFloat(l.Lexical, 64)
				if err != nil {
					return term.Literal{}, false
				}
				return term.Literal{Lexical: strconv.FormatFloat(f, 'E', -1, 64), Datatype: xsdns.Double}, true
			default:
				return term.Literal{}, false
			}
		},
		Update: func(l term.Literal, f func(interface{}) interface{}) (term.Literal, error) {
			v, err := doubleDatatype.Value(l.Lexical)
			if err != nil {
				return term.Literal{}, err
			}
			nv := f(v)
			fl, ok := nv.(float64)
			if !ok {
				return term.Literal{}, fmt.Errorf("xsd: double Update function must return a float64, got %T", nv)
			}
			return term.Literal{Lexical: strconv.FormatFloat(fl, 'E', -1, 64), Datatype: xsdns.Double}, nil
		},
	}
}

// decimal reuses double's parser; xsd:decimal's arbitrary precision isn't
// needed by anything this module does with it (canonical rendering only).
func newDecimalDatatype() Datatype {
	return Datatype{
		ID:               xsdns.Decimal,
		Name:             "decimal",
		Valid:            doubleDatatype.Valid,
		CanonicalLexical: func(s string) string { v, _ := strconv.ParseFloat(s, 64); return strconv.FormatFloat(v, 'f', -1, 64) },
		Value:            doubleDatatype.Value,
		EqualValue:       doubleDatatype.EqualValue,
		Compare:          doubleDatatype.Compare,
		Cast: func(l term.Literal) (term.Literal, bool) {
			switch l.Datatype {
			case xsdns.Double, xsdns.Decimal, xsdns.Integer, xsdns.String, "":
				f, err := strconv.ParseFloat(l.Lexical, 64)
				if err != nil {
					return term.Literal{}, false
				}
				return term.Literal{Lexical: strconv.FormatFloat(f, 'f', -1, 64), Datatype: xsdns.Decimal}, true
			default:
				return term.Literal{}, false
			}
		},
		Update: func(l term.Literal, f func(interface{}) interface{}) (term.Literal, error) {
			v, err := decimalDatatype.Value(l.Lexical)
			if err != nil {
				return term.Literal{}, err
			}
			nv := f(v)
			fl, ok := nv.(float64)
			if !ok {
				return term.Literal{}, fmt.Errorf("xsd: decimal Update function must return a float64, got %T", nv)
			}
			return term.Literal{Lexical: strconv.FormatFloat(fl, 'f', -1, 64), Datatype: xsdns.Decimal}, nil
		},
	}
}

func newDateTimeDatatype() Datatype {
	return Datatype{
		ID:   xsdns.DateTime,
		Name: "dateTime",
		Valid: func(s string) bool {
			_, err := time.Parse(time.RFC3339, s)
			return err == nil
		},
		CanonicalLexical: func(s string) string {
			t, _ := time.Parse(time.RFC3339, s)
			return t.UTC().Format(time.RFC3339)
		},
		Value: func(s string) (interface{}, error) { return time.Parse(time.RFC3339, s) },
		EqualValue: func(a, b string) bool {
			ta, erra := time.Parse(time.RFC3339, a)
			tb, errb := time.Parse(time.RFC3339, b)
			return erra == nil && errb == nil && ta.Equal(tb)
		},
		Compare: func(a, b string) Ordering {
			ta, erra := time.Parse(time.RFC3339, a)
			tb, errb := time.Parse(time.RFC3339, b)
			if erra != nil || errb != nil {
				return Incomparable
			}
			switch {
			case ta.Before(tb):
				return Less
			case ta.After(tb):
				return Greater
			default:
				return Equal
			}
		},
		Cast: func(l term.Literal) (term.Literal, bool) {
			if l.Datatype != xsdns.DateTime && l.Datatype != xsdns.String && l.Datatype != "" {
				return term.Literal{}, false
			}
			t, err := time.Parse(time.RFC3339, l.Lexical)
			if err != nil {
				return term.Literal{}, false
			}
			return term.Literal{Lexical: t.UTC().Format(time.RFC3339), Datatype: xsdns.DateTime}, true
		},
		Update: func(l term.Literal, f func(interface{}) interface{}) (term.Literal, error) {
			v, err := dateTimeDatatype.Value(l.Lexical)
			if err != nil {
				return term.Literal{}, err
			}
			nv := f(v)
			t, ok := nv.(time.Time)
			if !ok {
				return term.Literal{}, fmt.Errorf("xsd: dateTime Update function must return a time.Time, got %T", nv)
			}
			return term.Literal{Lexical: t.UTC().Format(time.RFC3339), Datatype: xsdns.DateTime}, nil
		},
	}
}

func cmpInt64(a, b int64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func cmpFloat64(a, b float64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
