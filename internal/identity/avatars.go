// Package identity resolves the hub's branding images once at startup: four
// league logos and two owner avatars, each from an independent Sleeper
// lookup.
package identity

import "github.com/fwl-league/fwl-hub/internal/sleeper"

// Avatars holds the resolved image references. A nil field means "no image
// available", never an error.
type Avatars struct {
	FWLLogo           *string `json:"fwl_logo"`
	AtlantaLeague     *string `json:"atlanta_league"`
	PlayoffsChallenge *string `json:"playoffs_challenge"`
	DivisionalLeague  *string `json:"divisional_league"`
	RegulationIcon    *string `json:"regulation_icon"`
	RankingIcon       *string `json:"ranking_icon"`

	// FinalsLogo has no source and is always nil.
	FinalsLogo *string `json:"finals_logo"`
}

// IdentityOwnerAvatar picks roster 1, or the first roster when no roster
// has id 1, and returns its owner's avatar.
func IdentityOwnerAvatar(d *sleeper.LeagueData) *string {
	if d == nil {
		return nil
	}
	r, ok := d.RosterByID(1)
	if !ok {
		if len(d.Rosters) == 0 {
			return nil
		}
		r = d.Rosters[0]
	}
	return ownerAvatar(d, r)
}

// RankingOwnerAvatar returns the avatar of roster 1's owner. Unlike
// IdentityOwnerAvatar there is no fallback roster.
func RankingOwnerAvatar(d *sleeper.LeagueData) *string {
	if d == nil {
		return nil
	}
	r, ok := d.RosterByID(1)
	if !ok {
		return nil
	}
	return ownerAvatar(d, r)
}

func ownerAvatar(d *sleeper.LeagueData, r sleeper.Roster) *string {
	u, ok := d.OwnerOf(r)
	if !ok {
		return nil
	}
	return u.AvatarRef()
}

func leagueAvatar(l *sleeper.League) *string {
	if l == nil {
		return nil
	}
	return l.Avatar
}
