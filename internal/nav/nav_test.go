package nav

import (
	"encoding/json"
	"math/rand"
	"testing"
)

func TestPushPushPop(t *testing.T) {
	h := NewHistory(Landing)
	h.Push(BradyList)
	h.Push(Dashboard)
	h.Pop()

	got := h.Entries()
	if len(got) != 2 || got[0] != Landing || got[1] != BradyList {
		t.Fatalf("entries = %v", got)
	}
	if h.Current() != BradyList {
		t.Fatalf("current = %v", h.Current())
	}
}

func TestPopAtRootIsNoop(t *testing.T) {
	h := NewHistory(Landing)
	if h.Pop() {
		t.Fatal("Pop at root reported removal")
	}
	if h.Len() != 1 || h.Current() != Landing {
		t.Fatalf("len=%d current=%v", h.Len(), h.Current())
	}
}

func TestRepeatedPushCreatesEntries(t *testing.T) {
	h := NewHistory(Landing)
	h.Push(Dashboard)
	h.Push(Dashboard)
	if h.Len() != 3 {
		t.Fatalf("len = %d, want 3", h.Len())
	}
	h.Pop()
	if h.Current() != Dashboard {
		t.Fatalf("current = %v", h.Current())
	}
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	views := Views()

	for run := 0; run < 200; run++ {
		h := NewHistory(Landing)
		model := []View{Landing}

		for step := 0; step < 50; step++ {
			if rng.Intn(2) == 0 {
				v := views[rng.Intn(len(views))]
				h.Push(v)
				model = append(model, v)
			} else {
				h.Pop()
				if len(model) > 1 {
					model = model[:len(model)-1]
				}
			}

			if h.Len() < 1 {
				t.Fatalf("run %d step %d: history emptied", run, step)
			}
			if h.Len() != len(model) || h.Current() != model[len(model)-1] {
				t.Fatalf("run %d step %d: got %v, model %v", run, step, h.Entries(), model)
			}
		}
	}
}

func TestEntriesIsCopy(t *testing.T) {
	h := NewHistory(Landing)
	e := h.Entries()
	e[0] = Admin
	if h.Current() != Landing {
		t.Fatal("Entries exposed internal slice")
	}
}

func TestViewNamesRoundTrip(t *testing.T) {
	for _, v := range Views() {
		parsed, err := ParseView(v.String())
		if err != nil || parsed != v {
			t.Errorf("ParseView(%q) = %v, %v", v.String(), parsed, err)
		}
	}
	if _, err := ParseView("settings"); err == nil {
		t.Error("expected error for unknown view")
	}
	if View(42).Valid() {
		t.Error("View(42) should be invalid")
	}
}

func TestViewJSON(t *testing.T) {
	b, err := json.Marshal([]View{Landing, RankingGlobal})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `["landing","ranking-global"]` {
		t.Fatalf("json = %s", b)
	}

	var v View
	if err := json.Unmarshal([]byte(`"divisional-list"`), &v); err != nil || v != DivisionalList {
		t.Fatalf("Unmarshal = %v, %v", v, err)
	}
}
