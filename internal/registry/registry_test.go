package registry

import "testing"

func TestBuildNamesByPosition(t *testing.T) {
	got := Build([]string{"A", "B", "C", "D"}, []string{"A", "B"}, []string{"first", "second"})

	want := []Descriptor{
		{ID: "A", Name: "first", Category: Championship},
		{ID: "B", Name: "second", Category: Championship},
		{ID: "C", Name: "FWL 2025 - Divisional D1", Category: Divisional},
		{ID: "D", Name: "FWL 2025 - Divisional D2", Category: Divisional},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBuildIsOrderDependent(t *testing.T) {
	a := Build([]string{"A", "B", "C", "D"}, []string{"A", "B"}, ChampionshipLabels)
	b := Build([]string{"A", "B", "D", "C"}, []string{"A", "B"}, ChampionshipLabels)

	if a[2].ID != "C" || b[3].ID != "C" {
		t.Fatal("unexpected ordering")
	}
	if a[2].Name == b[3].Name {
		t.Errorf("C should be renamed after reorder, both %q", a[2].Name)
	}
}

func TestBuildChampionshipLabelFollowsSubsetPosition(t *testing.T) {
	// Baltimore listed before Atlanta in ids still gets the second label.
	got := Build([]string{"BAL", "ATL"}, []string{"ATL", "BAL"}, ChampionshipLabels)
	if got[0].Name != ChampionshipLabels[1] {
		t.Errorf("BAL name = %q", got[0].Name)
	}
	if got[1].Name != ChampionshipLabels[0] {
		t.Errorf("ATL name = %q", got[1].Name)
	}
}

func TestOfficialLeagues(t *testing.T) {
	leagues := Leagues()
	if len(leagues) != 22 {
		t.Fatalf("len = %d, want 22", len(leagues))
	}
	if leagues[0].Name != "FWL 2025 - Brady Bowl (Atlanta)" {
		t.Errorf("first = %q", leagues[0].Name)
	}
	if leagues[1].Name != "FWL 2025 - Brady Bowl (Baltimore)" {
		t.Errorf("second = %q", leagues[1].Name)
	}
	if leagues[3].ID != AlabamaID || leagues[3].Name != "FWL 2025 - Divisional D2" {
		t.Errorf("alabama = %+v", leagues[3])
	}
	if last := leagues[21]; last.Name != "FWL 2025 - Divisional D20" {
		t.Errorf("last = %q", last.Name)
	}
}

func TestLeaguesReturnsCopy(t *testing.T) {
	l := Leagues()
	l[0].Name = "changed"
	if Leagues()[0].Name == "changed" {
		t.Fatal("Leagues exposed internal slice")
	}
}

func TestByCategoryAndLookup(t *testing.T) {
	if n := len(ByCategory(Championship)); n != 2 {
		t.Errorf("championship count = %d", n)
	}
	if n := len(ByCategory(Divisional)); n != 20 {
		t.Errorf("divisional count = %d", n)
	}
	d, ok := Lookup(BradyIDs[1])
	if !ok || d.Category != Championship {
		t.Errorf("Lookup(baltimore) = %+v, %v", d, ok)
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup should miss unknown id")
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory("divisional"); err != nil || c != Divisional {
		t.Errorf("ParseCategory(divisional) = %q, %v", c, err)
	}
	if _, err := ParseCategory("brady"); err == nil {
		t.Error("expected error")
	}
}

func TestSummaries(t *testing.T) {
	s := Summaries()
	if len(s) != len(OfficialIDs) {
		t.Fatalf("len = %d", len(s))
	}
	first := s[0]
	if first.LeagueID != BradyIDs[0] || first.Season != "2025" || first.TotalRosters != 12 {
		t.Errorf("first = %+v", first)
	}
	if first.Settings.PlayoffWeekStart != 15 || first.Settings.Leg != 17 {
		t.Errorf("settings = %+v", first.Settings)
	}
	if first.Avatar != nil || first.PreviousLeagueID != nil {
		t.Error("summaries should not carry avatar or previous league")
	}
}
