package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyEnter, "enter"},
		{KeyEsc, "esc"},
		{KeyTab, "tab"},
		{KeyBackTab, "backtab"},
		{KeySpace, "space"},
		{KeyBackspace, "backspace"},
		{KeyDelete, "delete"},
		{KeyInsert, "insert"},
		{KeyHome, "home"},
		{KeyEnd, "end"},
		{KeyPageUp, "pageup"},
		{KeyPageDown, "pagedown"},
		{KeyUp, "up"},
		{KeyDown, "down"},
		{KeyLeft, "left"},
		{KeyRight, "right"},
		{KeyF1, "f1"},
		{KeyF10, "f10"},
		{KeyF12, "f12"},
		{KeyNone, "none"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

// Every named key's String must resolve back to the same key through
// KeyFromName, so serialized specs re-parse to the same value.
func TestKeyStringRoundTrip(t *testing.T) {
	for k := KeyBackspace; k <= KeyF12; k++ {
		if got := KeyFromName(k.String()); got != k {
			t.Errorf("KeyFromName(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestKeyFromNameAliases(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"escape", KeyEsc},
		{"return", KeyEnter},
		{"del", KeyDelete},
		{"ins", KeyInsert},
		{"pgup", KeyPageUp},
		{"pgdn", KeyPageDown},
		{"bs", KeyBackspace},
		{"ESC", KeyEsc},
		{"  enter  ", KeyEnter},
		{"unknown", KeyNone},
		{"", KeyNone},
	}

	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFunctionKey(t *testing.T) {
	tests := []struct {
		n    int
		want Key
	}{
		{1, KeyF1},
		{5, KeyF5},
		{12, KeyF12},
		{0, KeyNone},
		{13, KeyNone},
		{-1, KeyNone},
	}

	for _, tt := range tests {
		if got := FunctionKey(tt.n); got != tt.want {
			t.Errorf("FunctionKey(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestIsFunctionKey(t *testing.T) {
	if !KeyF1.IsFunctionKey() {
		t.Error("KeyF1.IsFunctionKey() = false")
	}
	if !KeyF12.IsFunctionKey() {
		t.Error("KeyF12.IsFunctionKey() = false")
	}
	if KeyEnter.IsFunctionKey() {
		t.Error("KeyEnter.IsFunctionKey() = true")
	}
	if KeyRune.IsFunctionKey() {
		t.Error("KeyRune.IsFunctionKey() = true")
	}
}
