package app

import (
	"sync"
	"testing"
	"time"

	"github.com/fwl-league/fwl-hub/internal/identity"
	"github.com/fwl-league/fwl-hub/internal/nav"
	"github.com/fwl-league/fwl-hub/internal/registry"
)

func strp(s string) *string { return &s }

func TestSelectLeagueSetsIdAndPushesDashboard(t *testing.T) {
	s := NewSession(time.Now())
	s.Open(nav.BradyList)

	st := s.SelectLeague("L1")
	if st.SelectedLeague == nil || *st.SelectedLeague != "L1" {
		t.Fatalf("selected = %v", st.SelectedLeague)
	}
	if st.Current != nav.Dashboard {
		t.Fatalf("current = %v", st.Current)
	}
	if len(st.History) != 3 {
		t.Fatalf("history = %v", st.History)
	}
}

func TestSelectLeagueIsAtomicUnderConcurrency(t *testing.T) {
	s := NewSession(time.Now())
	var wg sync.WaitGroup
	stop := make(chan struct{})

	// Observers must never see a selection without the dashboard on top of
	// the history they were handed in the same snapshot.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			st := s.State()
			if st.SelectedLeague != nil && len(st.History) > 1 {
				dashboards := 0
				for _, v := range st.History {
					if v == nav.Dashboard {
						dashboards++
					}
				}
				if dashboards == 0 {
					t.Errorf("selection visible without dashboard: %+v", st)
					return
				}
			}
		}
	}()

	for i := 0; i < 500; i++ {
		s.SelectLeague("L")
	}
	close(stop)
	wg.Wait()

	if n := len(s.State().History); n != 501 {
		t.Fatalf("history len = %d, want 501", n)
	}
}

func TestBackStopsAtRoot(t *testing.T) {
	s := NewSession(time.Now())
	s.Open(nav.Registration)
	s.Open(nav.Admin)
	s.Back()
	s.Back()
	st := s.Back()
	if st.Current != nav.Landing || len(st.History) != 1 {
		t.Fatalf("state = %+v", st)
	}
}

func TestStateIsSnapshot(t *testing.T) {
	s := NewSession(time.Now())
	st := s.SelectLeague("L1")
	*st.SelectedLeague = "mutated"
	st.History[0] = nav.Admin

	again := s.State()
	if *again.SelectedLeague != "L1" || again.History[0] != nav.Landing {
		t.Fatalf("snapshot aliased session state: %+v", again)
	}
}

func TestRenderLoadingBlocksEveryView(t *testing.T) {
	for _, v := range nav.Views() {
		sc := Render(State{Current: v, History: []nav.View{nav.Landing, v}}, true, identity.Avatars{})
		if sc.Screen != ScreenLoading {
			t.Errorf("view %v while loading rendered %s", v, sc.Screen)
		}
	}
}

func TestRenderDispatch(t *testing.T) {
	id := "L9"
	cases := []struct {
		view     nav.View
		selected *string
		want     ScreenName
	}{
		{nav.Landing, nil, ScreenLanding},
		{nav.Dashboard, &id, ScreenDashboard},
		{nav.Dashboard, nil, ScreenLanding},
		{nav.Playoffs, nil, ScreenBradyPlayoffs},
		{nav.Registration, nil, ScreenRegistration},
		{nav.Admin, nil, ScreenCommissioner},
		{nav.BradyList, nil, ScreenBradyBowl},
		{nav.DivisionalList, nil, ScreenDivisionalLeague},
		{nav.RankingGlobal, nil, ScreenGlobalRanking},
		{nav.View(99), nil, ScreenLanding},
	}
	for _, tc := range cases {
		sc := Render(State{Current: tc.view, SelectedLeague: tc.selected}, false, identity.Avatars{})
		if sc.Screen != tc.want {
			t.Errorf("view %v (selected %v) = %s, want %s", tc.view, tc.selected, sc.Screen, tc.want)
		}
	}
}

func TestRenderPropsAndActions(t *testing.T) {
	sc := Render(State{Current: nav.Dashboard, SelectedLeague: strp("L9")}, false, identity.Avatars{})
	if p, ok := sc.Props.(DashboardProps); !ok || p.LeagueID != "L9" {
		t.Errorf("dashboard props = %#v", sc.Props)
	}
	if sc.Actions[ActionBack].Path != PathBack {
		t.Errorf("dashboard back = %+v", sc.Actions[ActionBack])
	}

	sc = Render(State{Current: nav.Registration}, false, identity.Avatars{})
	if sc.Actions[ActionAdmin].Path != "/api/v1/nav/push/admin" {
		t.Errorf("registration admin = %+v", sc.Actions[ActionAdmin])
	}

	sc = Render(State{Current: nav.DivisionalList}, false, identity.Avatars{})
	lp, ok := sc.Props.(ListProps)
	if !ok || len(lp.Leagues) != len(registry.ByCategory(registry.Divisional)) {
		t.Errorf("divisional props = %#v", sc.Props)
	}
	if _, ok := sc.Actions[ActionSelectLeague]; !ok {
		t.Error("list screen missing select_league")
	}

	sc = Render(State{Current: nav.Playoffs}, false, identity.Avatars{})
	if pp, ok := sc.Props.(PlayoffsProps); !ok || len(pp.Leagues) != len(registry.OfficialIDs) {
		t.Errorf("playoffs props = %#v", sc.Props)
	}
}

func TestRenderLanding(t *testing.T) {
	avatars := identity.Avatars{
		FWLLogo:     strp("logo"),
		RankingIcon: strp("rank"),
		FinalsLogo:  strp("should be dropped"),
	}
	sc := Render(State{Current: nav.Landing}, false, avatars)

	props, ok := sc.Props.(LandingProps)
	if !ok {
		t.Fatalf("props = %#v", sc.Props)
	}
	if len(props.Leagues) != len(registry.OfficialIDs) {
		t.Errorf("leagues = %d", len(props.Leagues))
	}
	if props.Avatars.FWLLogo == nil || *props.Avatars.FWLLogo != "logo" {
		t.Errorf("fwl logo = %v", props.Avatars.FWLLogo)
	}
	if props.Avatars.AtlantaLeague != nil {
		t.Error("unset slot should stay nil")
	}
	if props.Avatars.FinalsLogo != nil {
		t.Error("finals logo must be nil")
	}
	if props.FinalsLeagueID != registry.FinalsLeagueID {
		t.Errorf("finals league = %q", props.FinalsLeagueID)
	}

	want := map[string]string{
		ActionOpenPlayoffs:         "/api/v1/nav/push/playoffs",
		ActionOpenRegistration:     "/api/v1/nav/push/registration",
		ActionOpenBradyBowl:        "/api/v1/nav/push/brady-list",
		ActionOpenDivisionalLeague: "/api/v1/nav/push/divisional-list",
		ActionOpenRanking:          "/api/v1/nav/push/ranking-global",
		ActionSelectLeague:         PathSelect,
	}
	for name, path := range want {
		if got := sc.Actions[name]; got.Path != path || got.Method != "POST" {
			t.Errorf("action %s = %+v, want POST %s", name, got, path)
		}
	}
	if _, ok := sc.Actions[ActionBack]; ok {
		t.Error("landing should not offer back")
	}
}

func TestStoreLifecycle(t *testing.T) {
	st := NewStore(time.Minute)
	clock := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return clock }

	id, sess := st.Create()
	sess.Open(nav.Admin)

	got, ok := st.Get(id)
	if !ok || got != sess {
		t.Fatalf("Get(%s) = %v, %v", id, got, ok)
	}
	if _, ok := st.Get("not-a-uuid"); ok {
		t.Error("malformed id should miss")
	}

	sameID, same, created := st.GetOrCreate(id)
	if created || sameID != id || same != sess {
		t.Error("GetOrCreate should reuse existing session")
	}
	newID, _, created := st.GetOrCreate("")
	if !created || newID == id {
		t.Error("GetOrCreate should issue a new id")
	}

	clock = clock.Add(2 * time.Minute)
	if n := st.Sweep(); n != 2 {
		t.Fatalf("Sweep removed %d, want 2", n)
	}
	if st.Len() != 0 {
		t.Fatalf("Len = %d", st.Len())
	}
}
