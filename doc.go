// Package keybind resolves keyboard input against textual key binding
// specifications.
//
// Bindings map action names to patterns written in a compact grammar
// ("ctrl-s", "ctrl-b n", "@digit") parsed by the key subpackage. A
// Table holds a validated, immutable set of bindings; a Matcher feeds
// live input against a Table one key at a time, buffering multi-key
// sequences under a completion timeout.
//
// # Building a table
//
// Tables come from three sources that all converge on the same
// validation: Go values via New, configuration items via FromItems,
// and files via FromFile or MergeFile. Merge layers a user file over
// derived defaults; an action present in both keeps only the file
// version. Two actions claiming the same normalized pattern fail
// construction with *DuplicatePatternError.
//
//	defaults := map[string]keybind.Item{
//		"quit": {Keys: []string{"q", "esc"}},
//		"jump": {Keys: []string{"@digit"}, Description: "jump to window"},
//	}
//	table, err := keybind.MergeFile(defaults, "~/.config/app/keys.toml")
//
// # Matching input
//
// A backend adapter (see backend/tcellkey and backend/teakey) converts
// native events to key.Spec values, which are fed to a Matcher:
//
//	m := keybind.NewMatcher(table, 0)
//	res := m.Feed(spec, time.Now())
//	if res.Kind == keybind.MatchComplete {
//		dispatch(res.Action, res.Capture)
//	}
//
// Group patterns such as "@digit" report the concrete character they
// matched in Result.Capture. Literal patterns always win over group
// patterns for the same input.
//
// # Reloading
//
// Watch rebuilds the table when the bindings file changes on disk and
// delivers each new table on a channel; swap it into the matcher with
// SetTable.
package keybind
