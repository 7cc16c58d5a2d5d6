package sleeper

// League is the /league/{id} response. Avatar and PreviousLeagueID are
// null for leagues that never set them.
type League struct {
	Name             string         `json:"name"`
	LeagueID         string         `json:"league_id"`
	Season           string         `json:"season"`
	Status           string         `json:"status"`
	TotalRosters     int            `json:"total_rosters"`
	Settings         LeagueSettings `json:"settings"`
	Avatar           *string        `json:"avatar"`
	PreviousLeagueID *string        `json:"previous_league_id"`
}

// LeagueSettings is the subset of league settings the hub reads.
// Leg is the league's current week.
type LeagueSettings struct {
	MaxKeepers       int `json:"max_keepers"`
	Type             int `json:"type"`
	Leg              int `json:"leg"`
	PlayoffWeekStart int `json:"playoff_week_start"`
}

// User is one entry of /league/{id}/users.
type User struct {
	UserID      string       `json:"user_id"`
	DisplayName string       `json:"display_name"`
	Avatar      *string      `json:"avatar"`
	Metadata    UserMetadata `json:"metadata"`
}

// UserMetadata carries the per-league team customisation.
type UserMetadata struct {
	TeamName string `json:"team_name,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// Roster is one entry of /league/{id}/rosters. OwnerID is null for
// orphaned rosters.
type Roster struct {
	RosterID int            `json:"roster_id"`
	OwnerID  *string        `json:"owner_id"`
	LeagueID string         `json:"league_id"`
	Players  []string       `json:"players"`
	Starters []string       `json:"starters"`
	Settings RosterSettings `json:"settings"`
}

// RosterSettings is the win/loss record. Points are split into whole and
// hundredths parts by the API.
type RosterSettings struct {
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Ties        int `json:"ties"`
	Fpts        int `json:"fpts"`
	FptsDecimal int `json:"fpts_decimal"`
	Ppts        int `json:"ppts"`
	PptsDecimal int `json:"ppts_decimal"`
}

// PointsFor returns fpts with its decimal part folded in.
func (s RosterSettings) PointsFor() float64 {
	return float64(s.Fpts) + float64(s.FptsDecimal)/100
}

// PotentialPoints returns ppts with its decimal part folded in.
func (s RosterSettings) PotentialPoints() float64 {
	return float64(s.Ppts) + float64(s.PptsDecimal)/100
}

// Matchup is one roster's side of a weekly matchup. MatchupID is null for
// rosters on bye.
type Matchup struct {
	MatchupID *int     `json:"matchup_id"`
	RosterID  int      `json:"roster_id"`
	Points    float64  `json:"points"`
	Starters  []string `json:"starters"`
	Players   []string `json:"players"`
}

// TransactionType is the kind of roster move.
type TransactionType string

const (
	TransactionTrade     TransactionType = "trade"
	TransactionFreeAgent TransactionType = "free_agent"
	TransactionWaiver    TransactionType = "waiver"
)

// Transaction is one entry of /league/{id}/transactions/{week}.
type Transaction struct {
	Type          TransactionType `json:"type"`
	Status        string          `json:"status"`
	RosterIDs     []int           `json:"roster_ids"`
	Drops         map[string]int  `json:"drops"`
	Adds          map[string]int  `json:"adds"`
	Created       int64           `json:"created"`
	TransactionID string          `json:"transaction_id"`
}

// BracketMatch is one node of the winners bracket. T1/T2 are null until the
// feeding matches are decided, W/L until this one is. P is set only for
// placement games.
type BracketMatch struct {
	Round  int  `json:"r"`
	Match  int  `json:"m"`
	T1     *int `json:"t1"`
	T2     *int `json:"t2"`
	Winner *int `json:"w"`
	Loser  *int `json:"l"`
	Place  *int `json:"p,omitempty"`
}

// LeagueData is everything the hub needs to render one league.
type LeagueData struct {
	League         League         `json:"league"`
	Week           int            `json:"week"`
	Users          []User         `json:"users"`
	Rosters        []Roster       `json:"rosters"`
	Matchups       []Matchup      `json:"matchups"`
	Transactions   []Transaction  `json:"transactions"`
	WinnersBracket []BracketMatch `json:"winners_bracket"`
}

// RosterByID returns the roster with the given roster_id.
func (d *LeagueData) RosterByID(id int) (Roster, bool) {
	for _, r := range d.Rosters {
		if r.RosterID == id {
			return r, true
		}
	}
	return Roster{}, false
}

// UserByID returns the user with the given user_id.
func (d *LeagueData) UserByID(id string) (User, bool) {
	for _, u := range d.Users {
		if u.UserID == id {
			return u, true
		}
	}
	return User{}, false
}

// OwnerOf returns the user owning roster r, if any.
func (d *LeagueData) OwnerOf(r Roster) (User, bool) {
	if r.OwnerID == nil {
		return User{}, false
	}
	return d.UserByID(*r.OwnerID)
}

// AvatarRef resolves a user's image reference: the league-specific
// metadata avatar wins over the account avatar. Empty strings count as
// absent.
func (u User) AvatarRef() *string {
	if u.Metadata.Avatar != "" {
		v := u.Metadata.Avatar
		return &v
	}
	if u.Avatar != nil && *u.Avatar != "" {
		v := *u.Avatar
		return &v
	}
	return nil
}
