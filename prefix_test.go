package rdftab

import "testing"

func TestPrefixShortenerShorten(t *testing.T) {
	s := NewPrefixShortener([]Prefix{
		{Prefix: "ex", Base: "http://example.com/"},
		{Prefix: "exsub", Base: "http://example.com/sub/"},
	})

	tests := []struct {
		iri  string
		want string
	}{
		{"http://example.com/sub/Thing", "exsub:Thing"}, // longest base wins
		{"http://example.com/Thing", "ex:Thing"},
		{"http://other.org/Thing", "<http://other.org/Thing>"}, // UnknownPrefix: pass through
	}
	for _, tc := range tests {
		if got := s.Shorten(tc.iri); got != tc.want {
			t.Errorf("Shorten(%q) = %q, want %q", tc.iri, got, tc.want)
		}
	}
}

func TestPrefixShortenerExpand(t *testing.T) {
	s := NewPrefixShortener([]Prefix{{Prefix: "ex", Base: "http://example.com/"}})

	tests := []struct {
		token string
		want  string
	}{
		{"ex:Thing", "http://example.com/Thing"},
		{"<http://other.org/Thing>", "http://other.org/Thing"},
		{"_:b1", "_:b1"},
		{"unknown:Thing", "unknown:Thing"},
	}
	for _, tc := range tests {
		if got := s.Expand(tc.token); got != tc.want {
			t.Errorf("Expand(%q) = %q, want %q", tc.token, got, tc.want)
		}
	}
}

func TestPrefixShortenerRoundTrip(t *testing.T) {
	s := NewPrefixShortener([]Prefix{{Prefix: "ex", Base: "http://example.com/"}})
	iri := "http://example.com/Thing"
	if got := s.Expand(s.Shorten(iri)); got != iri {
		t.Errorf("round trip: got %q, want %q", got, iri)
	}
}
