package registry

import (
	"github.com/fwl-league/fwl-hub/internal/config"
	"github.com/fwl-league/fwl-hub/internal/sleeper"
)

// Registry leagues share one fixed format.
const (
	defaultTotalRosters     = 12
	defaultLeagueType       = 2
	defaultLeg              = 17
	defaultPlayoffWeekStart = 15
)

// Summaries returns a display League record for every official league.
// The records are built locally and never carry an avatar.
func Summaries() []sleeper.League {
	out := make([]sleeper.League, 0, len(official))
	for _, d := range official {
		out = append(out, sleeper.League{
			LeagueID:     d.ID,
			Name:         d.Name,
			Season:       config.Season,
			Status:       "active",
			TotalRosters: defaultTotalRosters,
			Settings: sleeper.LeagueSettings{
				MaxKeepers:       0,
				Type:             defaultLeagueType,
				Leg:              defaultLeg,
				PlayoffWeekStart: defaultPlayoffWeekStart,
			},
		})
	}
	return out
}
