package key

// Group classifies characters for wildcard patterns. A group atom in a
// key specification ("@digit", "@any") matches any single character in
// its class and captures the character that matched.
type Group uint8

const (
	// GroupNone represents no group.
	GroupNone Group = iota
	// GroupUpper matches uppercase ASCII letters (A-Z).
	GroupUpper
	// GroupLower matches lowercase ASCII letters (a-z).
	GroupLower
	// GroupAlpha matches ASCII letters (A-Z, a-z).
	GroupAlpha
	// GroupAlnum matches ASCII letters and digits.
	GroupAlnum
	// GroupDigit matches ASCII digits (0-9).
	GroupDigit
	// GroupAny matches any key.
	GroupAny
)

// Matches returns true if the character belongs to the group's class.
// GroupAny matches every character; GroupNone matches nothing.
func (g Group) Matches(r rune) bool {
	switch g {
	case GroupUpper:
		return r >= 'A' && r <= 'Z'
	case GroupLower:
		return r >= 'a' && r <= 'z'
	case GroupAlpha:
		return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
	case GroupAlnum:
		return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
	case GroupDigit:
		return r >= '0' && r <= '9'
	case GroupAny:
		return true
	default:
		return false
	}
}

// String returns the group keyword including its "@" prefix.
func (g Group) String() string {
	switch g {
	case GroupUpper:
		return "@upper"
	case GroupLower:
		return "@lower"
	case GroupAlpha:
		return "@alpha"
	case GroupAlnum:
		return "@alnum"
	case GroupDigit:
		return "@digit"
	case GroupAny:
		return "@any"
	default:
		return "@none"
	}
}

// groupNameMap maps group keywords to Group values. Group names are
// case-sensitive: "@Upper" is not a group.
var groupNameMap = map[string]Group{
	"upper": GroupUpper,
	"lower": GroupLower,
	"alpha": GroupAlpha,
	"alnum": GroupAlnum,
	"digit": GroupDigit,
	"any":   GroupAny,
}

// GroupFromName returns the Group for a given keyword without the "@"
// prefix. The lookup is case-sensitive. Returns GroupNone if the name
// is not recognized.
func GroupFromName(name string) Group {
	if g, ok := groupNameMap[name]; ok {
		return g
	}
	return GroupNone
}
