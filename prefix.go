package rdftab

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

// Prefix is one row of the pre-populated `prefix(prefix, base)` table.
type Prefix struct {
	Prefix string
	Base   string
}

// PrefixShortener maps IRIs to CURIEs and back using a fixed table, read
// once at startup. Longest base wins when more than one prefix matches.
type PrefixShortener struct {
	prefixes []Prefix // sorted by len(Base) descending
}

// NewPrefixShortener builds a shortener from prefixes, re-sorting them by
// base length (longest first) so the first match in Shorten is always the
// most specific one.
func NewPrefixShortener(prefixes []Prefix) *PrefixShortener {
	sorted := make([]Prefix, len(prefixes))
	copy(sorted, prefixes)
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i].Base) > len(sorted[j].Base)
	})
	return &PrefixShortener{prefixes: sorted}
}

// LoadPrefixes reads the `prefix` table, read-only to the core.
func LoadPrefixes(db *sql.DB) ([]Prefix, error) {
	rows, err := db.Query(`SELECT prefix, base FROM prefix ORDER BY length(base) DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query prefix table: %w", err)
	}
	defer rows.Close()

	var prefixes []Prefix
	for rows.Next() {
		var p Prefix
		if err := rows.Scan(&p.Prefix, &p.Base); err != nil {
			return nil, fmt.Errorf("failed to scan prefix row: %w", err)
		}
		prefixes = append(prefixes, p)
	}
	return prefixes, rows.Err()
}

// Prefixes returns the known prefix table, longest-base-first.
func (p *PrefixShortener) Prefixes() []Prefix { return p.prefixes }

// Shorten returns "prefix:local" when some base is a strict prefix of iri,
// or the bracketed form "<iri>" otherwise. An unknown prefix is not an
// error; the caller gets a valid, if unshortened, token back.
func (p *PrefixShortener) Shorten(iri string) string {
	for _, pfx := range p.prefixes {
		if len(iri) > len(pfx.Base) && strings.HasPrefix(iri, pfx.Base) {
			return pfx.Prefix + ":" + iri[len(pfx.Base):]
		}
	}
	return "<" + iri + ">"
}

// Expand is the inverse of Shorten. Blank-node tokens ("_:id") pass
// straight through; a bracketed IRI ("<iri>") is returned without its
// angle brackets. An unrecognized prefix is returned
// unchanged, matching Shorten's "not an error" policy.
func (p *PrefixShortener) Expand(token string) string {
	if strings.HasPrefix(token, "_:") {
		return token
	}
	if strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">") {
		return token[1 : len(token)-1]
	}
	idx := strings.Index(token, ":")
	if idx < 0 {
		return token
	}
	prefix, local := token[:idx], token[idx+1:]
	for _, pfx := range p.prefixes {
		if pfx.Prefix == prefix {
			return pfx.Base + local
		}
	}
	return token
}
