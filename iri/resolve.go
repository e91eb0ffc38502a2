// Package iri implements IRI relative-reference resolution per RFC 3986
// §5: turning a possibly-relative reference into an absolute IRI against a
// base. spec.md's Turtle component assumes a "based-relative name" but
// never spells out the algorithm; the Turtle parser's @base handling uses
// this one. The Turtle serializer's base-relative rendering does not call
// it: it only strips the base IRI when it is a string prefix of the IRI.
package iri

import (
	"errors"
	"strings"

	"github.com/rdfkit/rdfkit/rdferr"
)

var errNoBase = errors.New("relative reference with no base IRI in scope")

// ResolveIRI resolves ref against base per RFC 3986 §5.3. An absolute ref
// is returned unchanged. A relative ref with an empty base is an error.
func ResolveIRI(base, ref string) (string, error) {
	if isAbsolute(ref) {
		return ref, nil
	}
	if base == "" {
		return "", &rdferr.InvalidIRI{Value: ref, Err: errNoBase}
	}
	bScheme, bAuth, bPath, bQuery, _ := splitIRI(base)
	rScheme, rAuth, rPath, rQuery, rFrag := splitIRI(ref)

	var scheme, authority, path, query string
	scheme = bScheme
	switch {
	case rScheme != "":
		scheme, authority, path, query = rScheme, rAuth, removeDotSegments(rPath), rQuery
	case rAuth != "":
		authority, path, query = rAuth, removeDotSegments(rPath), rQuery
	case rPath == "":
		authority, path = bAuth, bPath
		if rQuery != "" {
			query = rQuery
		} else {
			query = bQuery
		}
	case strings.HasPrefix(rPath, "/"):
		authority, path, query = bAuth, removeDotSegments(rPath), rQuery
	default:
		authority, path, query = bAuth, removeDotSegments(mergePath(bAuth, bPath, rPath)), rQuery
	}

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteByte(':')
	if authority != "" {
		b.WriteString("//")
		b.WriteString(authority)
	}
	b.WriteString(path)
	if query != "" {
		b.WriteByte('?')
		b.WriteString(query)
	}
	if rFrag != "" {
		b.WriteByte('#')
		b.WriteString(rFrag)
	}
	return b.String(), nil
}

func isAbsolute(s string) bool {
	_, _, ok := cutScheme(s)
	return ok
}

// cutScheme splits "scheme:rest" when s begins with a valid RFC 3986
// scheme token, reporting ok=false otherwise (s has no scheme, i.e. it is
// a relative reference).
func cutScheme(s string) (scheme, rest string, ok bool) {
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return "", s, false
	}
	sch := s[:i]
	if !isSchemeStart(sch[0]) {
		return "", s, false
	}
	for j := 1; j < len(sch); j++ {
		if !isSchemeChar(sch[j]) {
			return "", s, false
		}
	}
	return sch, s[i+1:], true
}

func isSchemeStart(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func isSchemeChar(b byte) bool {
	return isSchemeStart(b) || (b >= '0' && b <= '9') || b == '+' || b == '-' || b == '.'
}

// splitIRI decomposes an IRI (absolute or relative) into its RFC 3986
// components. scheme is empty for a relative reference.
func splitIRI(s string) (scheme, authority, path, query, fragment string) {
	rest := s
	if sch, r, ok := cutScheme(s); ok {
		scheme, rest = sch, r
	}
	if before, after, ok := strings.Cut(rest, "#"); ok {
		rest, fragment = before, after
	}
	if before, after, ok := strings.Cut(rest, "?"); ok {
		rest, query = before, after
	}
	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		if idx := strings.IndexAny(rest, "/?#"); idx >= 0 {
			authority, path = rest[:idx], rest[idx:]
		} else {
			authority = rest
		}
	} else {
		path = rest
	}
	return
}

// mergePath implements RFC 3986 §5.3's path merge step.
func mergePath(baseAuth, basePath, refPath string) string {
	if baseAuth != "" && basePath == "" {
		return "/" + refPath
	}
	if idx := strings.LastIndexByte(basePath, '/'); idx >= 0 {
		return basePath[:idx+1] + refPath
	}
	return refPath
}

// removeDotSegments implements RFC 3986 §5.2.4.
func removeDotSegments(path string) string {
	var out []string
	in := path
	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = "/" + in[3:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = "/" + in[4:]
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == "/..":
			in = "/"
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == "." || in == "..":
			in = ""
		default:
			idx := nextSegmentBoundary(in)
			if idx <= 0 {
				out = append(out, in)
				in = ""
			} else {
				out = append(out, in[:idx])
				in = in[idx:]
			}
		}
	}
	return strings.Join(out, "")
}

// nextSegmentBoundary returns the length of in's first path segment
// (including a leading "/", if any), or -1 if in has no further boundary.
func nextSegmentBoundary(in string) int {
	if strings.HasPrefix(in, "/") {
		if idx := strings.IndexByte(in[1:], '/'); idx >= 0 {
			return idx + 1
		}
		return -1
	}
	return strings.IndexByte(in, '/')
}
