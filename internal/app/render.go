package app

import (
	"net/http"

	"github.com/fwl-league/fwl-hub/internal/identity"
	"github.com/fwl-league/fwl-hub/internal/nav"
	"github.com/fwl-league/fwl-hub/internal/registry"
	"github.com/fwl-league/fwl-hub/internal/sleeper"
)

// ScreenName identifies the component a client should mount.
type ScreenName string

const (
	ScreenLoading          ScreenName = "loading"
	ScreenLanding          ScreenName = "landing"
	ScreenDashboard        ScreenName = "dashboard"
	ScreenBradyPlayoffs    ScreenName = "brady-playoffs"
	ScreenRegistration     ScreenName = "registration"
	ScreenCommissioner     ScreenName = "commissioner-area"
	ScreenBradyBowl        ScreenName = "brady-bowl"
	ScreenDivisionalLeague ScreenName = "divisional-league"
	ScreenGlobalRanking    ScreenName = "global-ranking-2025"
)

// Action is a callback handed to a screen, expressed as the request that
// performs it. Paths with {league_id} are templates.
type Action struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Action names.
const (
	ActionBack                 = "back"
	ActionSelectLeague         = "select_league"
	ActionAdmin                = "admin"
	ActionOpenPlayoffs         = "open_playoffs"
	ActionOpenRegistration     = "open_registration"
	ActionOpenBradyBowl        = "open_brady_bowl"
	ActionOpenDivisionalLeague = "open_divisional_league"
	ActionOpenRanking          = "open_ranking"
)

// Screen is the one thing to show for a session.
type Screen struct {
	Screen  ScreenName        `json:"screen"`
	View    nav.View          `json:"view"`
	Actions map[string]Action `json:"actions"`
	Props   any               `json:"props,omitempty"`
}

// LeagueCard is a landing page league entry.
type LeagueCard struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// LandingProps carries the landing page's league list and branding.
type LandingProps struct {
	Leagues        []LeagueCard     `json:"leagues"`
	Avatars        identity.Avatars `json:"avatars"`
	FinalsLeagueID string           `json:"finals_league_id"`
}

// PlayoffsProps lists the leagues the playoff page draws brackets for.
type PlayoffsProps struct {
	Leagues []sleeper.League `json:"leagues"`
}

// DashboardProps names the league the dashboard loads.
type DashboardProps struct {
	LeagueID string `json:"league_id"`
}

// ListProps lists the leagues a list page offers for selection.
type ListProps struct {
	Leagues []registry.Descriptor `json:"leagues"`
}

// Router paths used to build actions. Kept in sync with internal/api.
const (
	PathBack   = "/api/v1/nav/back"
	PathPush   = "/api/v1/nav/push/"
	PathSelect = "/api/v1/nav/select/{league_id}"
)

func back() Action {
	return Action{Method: http.MethodPost, Path: PathBack}
}

func selectLeague() Action {
	return Action{Method: http.MethodPost, Path: PathSelect}
}

func open(v nav.View) Action {
	return Action{Method: http.MethodPost, Path: PathPush + v.String()}
}

// Render picks the screen for st. While the identity batch is loading every
// view renders the loading screen. A dashboard with no selected league falls
// through to the landing page, as does any unknown view.
func Render(st State, loading bool, avatars identity.Avatars) Screen {
	if loading {
		return Screen{Screen: ScreenLoading, View: st.Current, Actions: map[string]Action{}}
	}

	switch st.Current {
	case nav.Playoffs:
		return Screen{
			Screen:  ScreenBradyPlayoffs,
			View:    st.Current,
			Actions: map[string]Action{ActionBack: back()},
			Props:   PlayoffsProps{Leagues: registry.Summaries()},
		}
	case nav.Dashboard:
		if st.SelectedLeague != nil {
			return Screen{
				Screen:  ScreenDashboard,
				View:    st.Current,
				Actions: map[string]Action{ActionBack: back()},
				Props:   DashboardProps{LeagueID: *st.SelectedLeague},
			}
		}
	case nav.Registration:
		return Screen{
			Screen: ScreenRegistration,
			View:   st.Current,
			Actions: map[string]Action{
				ActionBack:  back(),
				ActionAdmin: open(nav.Admin),
			},
		}
	case nav.Admin:
		return Screen{
			Screen:  ScreenCommissioner,
			View:    st.Current,
			Actions: map[string]Action{ActionBack: back()},
		}
	case nav.BradyList:
		return Screen{
			Screen: ScreenBradyBowl,
			View:   st.Current,
			Actions: map[string]Action{
				ActionBack:         back(),
				ActionSelectLeague: selectLeague(),
			},
			Props: ListProps{Leagues: registry.ByCategory(registry.Championship)},
		}
	case nav.DivisionalList:
		return Screen{
			Screen: ScreenDivisionalLeague,
			View:   st.Current,
			Actions: map[string]Action{
				ActionBack:         back(),
				ActionSelectLeague: selectLeague(),
			},
			Props: ListProps{Leagues: registry.ByCategory(registry.Divisional)},
		}
	case nav.RankingGlobal:
		return Screen{
			Screen:  ScreenGlobalRanking,
			View:    st.Current,
			Actions: map[string]Action{ActionBack: back()},
		}
	case nav.Landing:
	}

	return landing(st, avatars)
}

func landing(st State, avatars identity.Avatars) Screen {
	summaries := registry.Summaries()
	cards := make([]LeagueCard, 0, len(summaries))
	for _, l := range summaries {
		cards = append(cards, LeagueCard{ID: l.LeagueID, Name: l.Name, Avatar: l.Avatar})
	}
	// The finals logo has no source.
	avatars.FinalsLogo = nil

	return Screen{
		Screen: ScreenLanding,
		View:   st.Current,
		Actions: map[string]Action{
			ActionSelectLeague:         selectLeague(),
			ActionOpenPlayoffs:         open(nav.Playoffs),
			ActionOpenRegistration:     open(nav.Registration),
			ActionOpenBradyBowl:        open(nav.BradyList),
			ActionOpenDivisionalLeague: open(nav.DivisionalList),
			ActionOpenRanking:          open(nav.RankingGlobal),
		},
		Props: LandingProps{
			Leagues:        cards,
			Avatars:        avatars,
			FinalsLeagueID: registry.FinalsLeagueID,
		},
	}
}
