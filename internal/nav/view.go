// Package nav implements the hub's view navigation: a closed set of views
// and a non-empty history stack whose top decides which screen renders.
package nav

import "fmt"

// View identifies one screen of the hub.
type View int

const (
	Landing View = iota
	Dashboard
	Playoffs
	Registration
	Admin
	BradyList
	DivisionalList
	RankingGlobal

	numViews
)

var viewNames = [numViews]string{
	Landing:        "landing",
	Dashboard:      "dashboard",
	Playoffs:       "playoffs",
	Registration:   "registration",
	Admin:          "admin",
	BradyList:      "brady-list",
	DivisionalList: "divisional-list",
	RankingGlobal:  "ranking-global",
}

// Views lists every view in declaration order.
func Views() []View {
	out := make([]View, 0, numViews)
	for v := Landing; v < numViews; v++ {
		out = append(out, v)
	}
	return out
}

// Valid reports whether v is one of the declared views.
func (v View) Valid() bool {
	return v >= Landing && v < numViews
}

func (v View) String() string {
	if !v.Valid() {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewNames[v]
}

// ParseView maps a view name back to its View.
func ParseView(s string) (View, error) {
	for v, name := range viewNames {
		if name == s {
			return View(v), nil
		}
	}
	return 0, fmt.Errorf("unknown view %q", s)
}

// MarshalText encodes the view by name.
func (v View) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("invalid view %d", int(v))
	}
	return []byte(viewNames[v]), nil
}

// UnmarshalText decodes a view name.
func (v *View) UnmarshalText(b []byte) error {
	parsed, err := ParseView(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
