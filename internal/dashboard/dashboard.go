// Package dashboard shapes raw Sleeper league data into the display records
// the league screens render: standings, weekly matchups, the winners bracket
// and recent transactions.
package dashboard

import (
	"sort"

	"github.com/fwl-league/fwl-hub/internal/sleeper"
)

// Team is a roster joined to its owner.
type Team struct {
	RosterID        int     `json:"roster_id"`
	OwnerID         string  `json:"owner_id,omitempty"`
	OwnerName       string  `json:"owner_name"`
	TeamName        string  `json:"team_name"`
	Avatar          *string `json:"avatar"`
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	Ties            int     `json:"ties"`
	PointsFor       float64 `json:"points_for"`
	PotentialPoints float64 `json:"potential_points"`
}

// Standing is a Team with its rank, 1-based.
type Standing struct {
	Rank int `json:"rank"`
	Team
}

// MatchupSide is one roster's score in a matchup.
type MatchupSide struct {
	RosterID int     `json:"roster_id"`
	TeamName string  `json:"team_name"`
	Points   float64 `json:"points"`
}

// MatchupPair groups the sides sharing a matchup_id. Byes have a nil
// MatchupID and a single side.
type MatchupPair struct {
	MatchupID *int          `json:"matchup_id"`
	Sides     []MatchupSide `json:"sides"`
}

// BracketRound is one round of the winners bracket.
type BracketRound struct {
	Round   int            `json:"round"`
	Matches []BracketMatch `json:"matches"`
}

// BracketMatch is a bracket node with team names resolved.
type BracketMatch struct {
	Match  int     `json:"match"`
	Team1  *string `json:"team1"`
	Team2  *string `json:"team2"`
	Winner *string `json:"winner"`
	Place  *int    `json:"place,omitempty"`
}

// TransactionSummary condenses a roster move for display.
type TransactionSummary struct {
	ID        string                  `json:"id"`
	Type      sleeper.TransactionType `json:"type"`
	Status    string                  `json:"status"`
	Teams     []string                `json:"teams"`
	Adds      int                     `json:"adds"`
	Drops     int                     `json:"drops"`
	CreatedMs int64                   `json:"created_ms"`
}

// View is the full dashboard for one league.
type View struct {
	LeagueID     string               `json:"league_id"`
	Name         string               `json:"name"`
	Season       string               `json:"season"`
	Week         int                  `json:"week"`
	Avatar       *string              `json:"avatar"`
	Standings    []Standing           `json:"standings"`
	Matchups     []MatchupPair        `json:"matchups"`
	Bracket      []BracketRound       `json:"bracket"`
	Transactions []TransactionSummary `json:"transactions"`
}

// Build shapes d into a dashboard View. It never fails: unknown owners and
// rosters render with empty names.
func Build(d *sleeper.LeagueData) View {
	teams := Teams(d)
	byRoster := indexTeams(teams)

	return View{
		LeagueID:     d.League.LeagueID,
		Name:         d.League.Name,
		Season:       d.League.Season,
		Week:         d.Week,
		Avatar:       d.League.Avatar,
		Standings:    Standings(teams),
		Matchups:     Matchups(d.Matchups, byRoster),
		Bracket:      Bracket(d.WinnersBracket, byRoster),
		Transactions: Transactions(d.Transactions, byRoster),
	}
}

// Teams joins every roster to its owner, in roster order.
func Teams(d *sleeper.LeagueData) []Team {
	out := make([]Team, 0, len(d.Rosters))
	for _, r := range d.Rosters {
		t := Team{
			RosterID:        r.RosterID,
			Wins:            r.Settings.Wins,
			Losses:          r.Settings.Losses,
			Ties:            r.Settings.Ties,
			PointsFor:       r.Settings.PointsFor(),
			PotentialPoints: r.Settings.PotentialPoints(),
		}
		if u, ok := d.OwnerOf(r); ok {
			t.OwnerID = u.UserID
			t.OwnerName = u.DisplayName
			t.TeamName = u.Metadata.TeamName
			t.Avatar = u.AvatarRef()
		}
		if t.TeamName == "" {
			t.TeamName = t.OwnerName
		}
		out = append(out, t)
	}
	return out
}

// Standings ranks teams by wins, then points for, then roster id.
func Standings(teams []Team) []Standing {
	sorted := make([]Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.PointsFor != b.PointsFor {
			return a.PointsFor > b.PointsFor
		}
		return a.RosterID < b.RosterID
	})

	out := make([]Standing, len(sorted))
	for i, t := range sorted {
		out[i] = Standing{Rank: i + 1, Team: t}
	}
	return out
}

// Matchups groups matchup rows by matchup_id, ordered by id with byes last.
func Matchups(rows []sleeper.Matchup, teams map[int]Team) []MatchupPair {
	index := make(map[int]int)
	var pairs []MatchupPair
	var byes []MatchupPair

	for _, m := range rows {
		side := MatchupSide{RosterID: m.RosterID, TeamName: teams[m.RosterID].TeamName, Points: m.Points}
		if m.MatchupID == nil {
			byes = append(byes, MatchupPair{Sides: []MatchupSide{side}})
			continue
		}
		if i, ok := index[*m.MatchupID]; ok {
			pairs[i].Sides = append(pairs[i].Sides, side)
			continue
		}
		id := *m.MatchupID
		index[id] = len(pairs)
		pairs = append(pairs, MatchupPair{MatchupID: &id, Sides: []MatchupSide{side}})
	}

	sort.SliceStable(pairs, func(i, j int) bool { return *pairs[i].MatchupID < *pairs[j].MatchupID })
	return append(pairs, byes...)
}

// Bracket groups bracket nodes by round, ascending, matches ordered by id.
func Bracket(nodes []sleeper.BracketMatch, teams map[int]Team) []BracketRound {
	rounds := make(map[int][]BracketMatch)
	for _, n := range nodes {
		rounds[n.Round] = append(rounds[n.Round], BracketMatch{
			Match:  n.Match,
			Team1:  teamName(n.T1, teams),
			Team2:  teamName(n.T2, teams),
			Winner: teamName(n.Winner, teams),
			Place:  n.Place,
		})
	}

	out := make([]BracketRound, 0, len(rounds))
	for r, matches := range rounds {
		sort.Slice(matches, func(i, j int) bool { return matches[i].Match < matches[j].Match })
		out = append(out, BracketRound{Round: r, Matches: matches})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Round < out[j].Round })
	return out
}

// Champion returns the winner of the first-place game, if decided.
func Champion(nodes []sleeper.BracketMatch, teams map[int]Team) *string {
	for _, n := range nodes {
		if n.Place != nil && *n.Place == 1 {
			return teamName(n.Winner, teams)
		}
	}
	return nil
}

// Transactions summarises moves newest first.
func Transactions(txs []sleeper.Transaction, teams map[int]Team) []TransactionSummary {
	out := make([]TransactionSummary, 0, len(txs))
	for _, tx := range txs {
		s := TransactionSummary{
			ID:        tx.TransactionID,
			Type:      tx.Type,
			Status:    tx.Status,
			Adds:      len(tx.Adds),
			Drops:     len(tx.Drops),
			CreatedMs: tx.Created,
		}
		for _, id := range tx.RosterIDs {
			s.Teams = append(s.Teams, teams[id].TeamName)
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedMs > out[j].CreatedMs })
	return out
}

func teamName(rosterID *int, teams map[int]Team) *string {
	if rosterID == nil {
		return nil
	}
	name := teams[*rosterID].TeamName
	return &name
}

// Playoff is the bracket view of one championship league. Available is
// false when the league could not be fetched.
type Playoff struct {
	LeagueID  string         `json:"league_id"`
	Name      string         `json:"name"`
	Available bool           `json:"available"`
	Champion  *string        `json:"champion"`
	Bracket   []BracketRound `json:"bracket"`
}

// BuildPlayoff shapes the bracket of d under the registry name.
func BuildPlayoff(name string, d *sleeper.LeagueData) Playoff {
	byRoster := indexTeams(Teams(d))
	return Playoff{
		LeagueID:  d.League.LeagueID,
		Name:      name,
		Available: true,
		Champion:  Champion(d.WinnersBracket, byRoster),
		Bracket:   Bracket(d.WinnersBracket, byRoster),
	}
}

func indexTeams(teams []Team) map[int]Team {
	m := make(map[int]Team, len(teams))
	for _, t := range teams {
		m[t.RosterID] = t
	}
	return m
}
