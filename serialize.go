package rdftab

import (
	"fmt"
	"io"
	"strings"
)

// WriteTriples renders triples to w as a sequence of @prefix directives
// (one per shortener's known prefix, longest base first) followed by one
// "S P O ." line per triple, round-trip mode's STDOUT contract (§6).
func WriteTriples(w io.Writer, shortener *PrefixShortener, triples []Triple) error {
	for _, p := range shortener.Prefixes() {
		if _, err := fmt.Fprintf(w, "@prefix %s: <%s> .\n", p.Prefix, p.Base); err != nil {
			return err
		}
	}

	for _, t := range triples {
		if _, err := fmt.Fprintf(w, "%s %s %s .\n", t.Subject, t.Predicate, serializeTerm(t)); err != nil {
			return err
		}
	}

	return nil
}

// serializeTerm renders the object position: a bare term for a node, or a
// triple-quoted literal optionally suffixed with ^^datatype or @lang.
func serializeTerm(t Triple) string {
	if !t.IsLiteral {
		return t.Object
	}

	var b strings.Builder
	b.WriteString(`"""`)
	b.WriteString(t.Value)
	b.WriteString(`"""`)

	switch {
	case t.Language != "":
		b.WriteString("@")
		b.WriteString(t.Language)
	case t.Datatype != "":
		b.WriteString("^^")
		b.WriteString(t.Datatype)
	}

	return b.String()
}
