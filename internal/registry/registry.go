// Package registry holds the compiled-in FWL league identifiers and derives
// the display descriptors for them.
//
// Names depend on position: reordering OfficialIDs changes which league is
// "Divisional D3" even if the same identifiers are present.
package registry

import (
	"fmt"

	"github.com/fwl-league/fwl-hub/internal/config"
)

// Category partitions the registry into championship and divisional leagues.
type Category string

const (
	Championship Category = "championship"
	Divisional   Category = "divisional"
)

// Descriptor is the display record for one registry league.
type Descriptor struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// --------------------------------------------------------------------------
// Official identifiers
// --------------------------------------------------------------------------

// BradyIDs are the Brady Bowl (championship) leagues: Atlanta, Baltimore.
var BradyIDs = []string{
	"1232712391108612096",
	"1312531415799205888",
}

// AlabamaID is the divisional league used as the Alabama reference.
const AlabamaID = "1204159865153388544"

// OfficialIDs is the ordered list of every FWL league, championship first.
var OfficialIDs = append(append([]string{}, BradyIDs...),
	"1204160977872883712",
	AlabamaID,
	"1227148843859062784",
	"1208790166441840640",
	"1208794512017600512",
	"1232712789961752576",
	"1208795936831045632",
	"1232708700569870337",
	"1208789004187598848",
	"1208795656680906752",
	"1232709253005836288",
	"1232708223719460864",
	"1227147929278484480",
	"1208783620852948992",
	"1208793711744405504",
	"1208794950024581120",
	"1232707452298870784",
	"1232711908889473024",
	"1208789644955615232",
	"1208795273556398080",
)

// Identity sources resolved once at startup.
const (
	LogoSourceID     = "1308130620014096384"
	ChallengeLogoID  = "1314010987120066560"
	DivisionalLogoID = "1312539231599472640"
	RankingSourceID  = "1314010987120066560"
)

// IdentityLeagueID and FinalsLeagueID both point at the Atlanta Brady Bowl.
var (
	IdentityLeagueID = BradyIDs[0]
	FinalsLeagueID   = BradyIDs[0]
)

// ChampionshipLabels name championship entries by their position.
var ChampionshipLabels = []string{
	"FWL 2025 - Brady Bowl (Atlanta)",
	"FWL 2025 - Brady Bowl (Baltimore)",
}

// --------------------------------------------------------------------------
// Derivation
// --------------------------------------------------------------------------

// Build derives a descriptor for every identifier in ids. Entries present in
// championship are named labels[i] where i is the entry's position within
// championship; positions past the end of labels fall back to the last
// label. All other entries are divisional and numbered from their offset in
// ids minus the size of the championship subset.
func Build(ids, championship, labels []string) []Descriptor {
	position := make(map[string]int, len(championship))
	for i, id := range championship {
		if _, dup := position[id]; !dup {
			position[id] = i
		}
	}

	out := make([]Descriptor, 0, len(ids))
	for index, id := range ids {
		if pos, ok := position[id]; ok {
			out = append(out, Descriptor{
				ID:       id,
				Name:     championshipLabel(labels, pos),
				Category: Championship,
			})
			continue
		}
		out = append(out, Descriptor{
			ID:       id,
			Name:     fmt.Sprintf("FWL %s - Divisional D%d", config.Season, index-len(championship)+1),
			Category: Divisional,
		})
	}
	return out
}

func championshipLabel(labels []string, pos int) string {
	if len(labels) == 0 {
		return ""
	}
	if pos >= len(labels) {
		pos = len(labels) - 1
	}
	return labels[pos]
}

var official = Build(OfficialIDs, BradyIDs, ChampionshipLabels)

// Leagues returns the descriptors for the official list.
func Leagues() []Descriptor {
	out := make([]Descriptor, len(official))
	copy(out, official)
	return out
}

// ByCategory returns the official descriptors of one category, in order.
func ByCategory(c Category) []Descriptor {
	var out []Descriptor
	for _, d := range official {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// Lookup finds an official descriptor by league identifier.
func Lookup(id string) (Descriptor, bool) {
	for _, d := range official {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Championship, Divisional:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}
