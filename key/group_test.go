package key

import "testing"

func TestGroupMatches(t *testing.T) {
	tests := []struct {
		group Group
		r     rune
		want  bool
	}{
		{GroupUpper, 'A', true},
		{GroupUpper, 'Z', true},
		{GroupUpper, 'a', false},
		{GroupUpper, '5', false},
		{GroupLower, 'a', true},
		{GroupLower, 'z', true},
		{GroupLower, 'A', false},
		{GroupAlpha, 'a', true},
		{GroupAlpha, 'Q', true},
		{GroupAlpha, '3', false},
		{GroupAlpha, '/', false},
		{GroupAlnum, 'a', true},
		{GroupAlnum, 'Z', true},
		{GroupAlnum, '0', true},
		{GroupAlnum, '9', true},
		{GroupAlnum, ';', false},
		{GroupDigit, '0', true},
		{GroupDigit, '9', true},
		{GroupDigit, 'a', false},
		{GroupAny, 'a', true},
		{GroupAny, '/', true},
		{GroupAny, ' ', true},
		{GroupNone, 'a', false},
	}

	for _, tt := range tests {
		if got := tt.group.Matches(tt.r); got != tt.want {
			t.Errorf("%v.Matches(%q) = %v, want %v", tt.group, tt.r, got, tt.want)
		}
	}
}

func TestGroupString(t *testing.T) {
	tests := []struct {
		group Group
		want  string
	}{
		{GroupUpper, "@upper"},
		{GroupLower, "@lower"},
		{GroupAlpha, "@alpha"},
		{GroupAlnum, "@alnum"},
		{GroupDigit, "@digit"},
		{GroupAny, "@any"},
	}

	for _, tt := range tests {
		if got := tt.group.String(); got != tt.want {
			t.Errorf("Group.String() = %q, want %q", got, tt.want)
		}
	}
}

// Group names are case-sensitive, unlike named keys.
func TestGroupFromName(t *testing.T) {
	tests := []struct {
		name string
		want Group
	}{
		{"upper", GroupUpper},
		{"lower", GroupLower},
		{"alpha", GroupAlpha},
		{"alnum", GroupAlnum},
		{"digit", GroupDigit},
		{"any", GroupAny},
		{"Upper", GroupNone},
		{"ANY", GroupNone},
		{"digits", GroupNone},
		{"", GroupNone},
	}

	for _, tt := range tests {
		if got := GroupFromName(tt.name); got != tt.want {
			t.Errorf("GroupFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
