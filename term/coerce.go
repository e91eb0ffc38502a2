package term

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rdfkit/rdfkit/rdferr"
)

// Resolver resolves a vocabulary token (e.g. a curie or a ":name" atom) to
// an absolute IRI string. The coercion layer calls it for any input that
// isn't already a Term, an IRI-shaped string, or a registered native value.
// See package voc for the default implementation.
type Resolver interface {
	ResolveTerm(token string) (string, error)
}

// CoerceSubject coerces a raw value into a Term valid in subject position
// (IRI or BlankNode). Strings are coerced as Coerce describes; any result
// that is not an IRI or BlankNode fails with InvalidTerm.
func CoerceSubject(v interface{}, res Resolver) (Term, error) {
	t, err := Coerce(v, res)
	if err != nil {
		return nil, err
	}
	if !IsResource(t) {
		return nil, &rdferr.InvalidTerm{Value: v, Position: "subject"}
	}
	return t, nil
}

// CoercePredicate coerces a raw value into an IRI, the only valid predicate shape.
func CoercePredicate(v interface{}, res Resolver) (IRI, error) {
	t, err := Coerce(v, res)
	if err != nil {
		return "", err
	}
	iri, ok := t.(IRI)
	if !ok {
		return "", &rdferr.InvalidTerm{Value: v, Position: "predicate"}
	}
	return iri, nil
}

// CoerceObject coerces a raw value into any Term.
func CoerceObject(v interface{}, res Resolver) (Term, error) {
	return Coerce(v, res)
}

// Coerce is the single entry point for turning caller-supplied Go values
// into Terms: an existing Term passes through, native number/boolean/time
// values become typed Literals, and a string becomes an IRI if it contains
// "://", else the Resolver's result if one is given and resolves it, else
// an IRI if it starts with a URI scheme and ':', else an InvalidIRI error;
// anything else fails with InvalidTerm. Keeping this centralized (rather than re-implemented
// per leaf constructor) is deliberate: see design notes on the coercion layer.
func Coerce(v interface{}, res Resolver) (Term, error) {
	switch val := v.(type) {
	case Term:
		return val, nil
	case IRI:
		return val, nil
	case BlankNode:
		return val, nil
	case Literal:
		return val, nil
	case string:
		return coerceString(val, res)
	case bool:
		return boolLiteral(val), nil
	case int:
		return intLiteral(int64(val)), nil
	case int32:
		return intLiteral(int64(val)), nil
	case int64:
		return intLiteral(val), nil
	case float32:
		return floatLiteral(float64(val)), nil
	case float64:
		return floatLiteral(val), nil
	case time.Time:
		return NewTypedLiteral(val.Format(time.RFC3339Nano), dateTimeIRI), nil
	default:
		return nil, &rdferr.InvalidTerm{Value: v}
	}
}

const (
	xsdInteger  IRI = "http://www.w3.org/2001/XMLSchema#integer"
	xsdDouble   IRI = "http://www.w3.org/2001/XMLSchema#double"
	xsdBoolean  IRI = "http://www.w3.org/2001/XMLSchema#boolean"
	dateTimeIRI IRI = "http://www.w3.org/2001/XMLSchema#dateTime"
)

func intLiteral(v int64) Literal   { return NewTypedLiteral(strconv.FormatInt(v, 10), xsdInteger) }
func floatLiteral(v float64) Literal {
	return NewTypedLiteral(strconv.FormatFloat(v, 'g', -1, 64), xsdDouble)
}
func boolLiteral(v bool) Literal {
	if v {
		return NewTypedLiteral("true", xsdBoolean)
	}
	return NewTypedLiteral("false", xsdBoolean)
}

// coerceString distinguishes a network-style absolute IRI ("scheme://...")
// from a bare "prefix:local" vocabulary token: both match the minimal
// scheme-colon grammar looksAbsoluteIRI checks, so an authority marker is
// what settles it. A token without "://" goes to the resolver first (a
// CURIE such as "rdf:type" would otherwise be swallowed as the literal IRI
// "rdf:type"); only once the resolver is absent or declines does it fall
// back to being treated as an already-absolute IRI.
func coerceString(s string, res Resolver) (Term, error) {
	if strings.Contains(s, "://") {
		return IRI(s), nil
	}
	if res != nil {
		if full, err := res.ResolveTerm(s); err == nil && full != "" {
			return IRI(full), nil
		}
	}
	if looksAbsoluteIRI(s) {
		return IRI(s), nil
	}
	return nil, &rdferr.InvalidIRI{Value: s, Err: fmt.Errorf("not an absolute IRI and no resolver matched it")}
}

// looksAbsoluteIRI applies the minimal RFC 3986 check this module needs: a
// scheme (ALPHA *(ALPHA / DIGIT / "+" / "-" / ".")) followed by ":".
func looksAbsoluteIRI(s string) bool {
	i := 0
	for i < len(s) && isSchemeChar(s[i], i == 0) {
		i++
	}
	return i > 0 && i < len(s) && s[i] == ':'
}

func isSchemeChar(c byte, first bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case !first && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		return true
	default:
		return false
	}
}
