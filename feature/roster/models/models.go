package models

// RosterRecord is one player's current team assignment as reported by
// the feed. PlayerID is the identity key for membership reconciliation;
// every other field is carried along for the staging load but never
// participates in the diff.
type RosterRecord struct {
	PlayerID      int64  `gorm:"column:playerId" json:"playerId"`
	TeamAbbrev    string `gorm:"column:teamAbbrev" json:"teamAbbrev"`
	Position      string `gorm:"column:position" json:"position"`
	FirstName     string `gorm:"column:firstName" json:"firstName"`
	LastName      string `gorm:"column:lastName" json:"lastName"`
	SweaterNumber int    `gorm:"column:sweaterNumber" json:"sweaterNumber"`
}

// SeasonStats bundles the two current-season statistical snapshots.
// They are fetched together but staged and synced as separate slots.
type SeasonStats struct {
	Skaters []SkaterStats
	Goalies []GoalieStats
}

// SkaterStats is one skater's current-season summary line.
type SkaterStats struct {
	PlayerID         int64   `gorm:"column:playerId" json:"playerId"`
	SeasonID         int64   `gorm:"column:seasonId" json:"seasonId"`
	TeamAbbrev       string  `gorm:"column:teamAbbrevs" json:"teamAbbrevs"`
	GamesPlayed      int     `gorm:"column:gamesPlayed" json:"gamesPlayed"`
	Goals            int     `gorm:"column:goals" json:"goals"`
	Assists          int     `gorm:"column:assists" json:"assists"`
	Points           int     `gorm:"column:points" json:"points"`
	PlusMinus        int     `gorm:"column:plusMinus" json:"plusMinus"`
	PenaltyMins      int     `gorm:"column:penaltyMinutes" json:"penaltyMinutes"`
	Shots            int     `gorm:"column:shots" json:"shots"`
	TimeOnIcePerGame float64 `gorm:"column:timeOnIcePerGame" json:"timeOnIcePerGame"`
}

// GoalieStats is one goalie's current-season summary line.
type GoalieStats struct {
	PlayerID        int64   `gorm:"column:playerId" json:"playerId"`
	SeasonID        int64   `gorm:"column:seasonId" json:"seasonId"`
	TeamAbbrev      string  `gorm:"column:teamAbbrevs" json:"teamAbbrevs"`
	GamesPlayed     int     `gorm:"column:gamesPlayed" json:"gamesPlayed"`
	Wins            int     `gorm:"column:wins" json:"wins"`
	Losses          int     `gorm:"column:losses" json:"losses"`
	OvertimeLosses  int     `gorm:"column:otLosses" json:"otLosses"`
	SavePct         float64 `gorm:"column:savePct" json:"savePct"`
	GoalsAgainstAvg float64 `gorm:"column:goalsAgainstAverage" json:"goalsAgainstAverage"`
	Shutouts        int     `gorm:"column:shutouts" json:"shutouts"`
}

// PlayerDetail is the biographical record fetched for new call-ups.
type PlayerDetail struct {
	PlayerID     int64  `gorm:"column:playerId" json:"playerId"`
	FirstName    string `gorm:"column:firstName" json:"firstName"`
	LastName     string `gorm:"column:lastName" json:"lastName"`
	Position     string `gorm:"column:position" json:"position"`
	Shoots       string `gorm:"column:shootsCatches" json:"shootsCatches"`
	BirthDate    string `gorm:"column:birthDate" json:"birthDate"`
	BirthCountry string `gorm:"column:birthCountry" json:"birthCountry"`
	HeightCm     int    `gorm:"column:heightInCentimeters" json:"heightInCentimeters"`
	WeightKg     int    `gorm:"column:weightInKilograms" json:"weightInKilograms"`
}

// PlayerSeasonSkater is one historical season split for a skater,
// staged alongside the player detail for new call-ups.
type PlayerSeasonSkater struct {
	PlayerID     int64  `gorm:"column:playerId" json:"playerId"`
	SeasonID     int64  `gorm:"column:seasonId" json:"seasonId"`
	LeagueAbbrev string `gorm:"column:leagueAbbrev" json:"leagueAbbrev"`
	GamesPlayed  int    `gorm:"column:gamesPlayed" json:"gamesPlayed"`
	Goals        int    `gorm:"column:goals" json:"goals"`
	Assists      int    `gorm:"column:assists" json:"assists"`
	Points       int    `gorm:"column:points" json:"points"`
}

// PlayerSeasonGoalie is one historical season split for a goalie.
type PlayerSeasonGoalie struct {
	PlayerID        int64   `gorm:"column:playerId" json:"playerId"`
	SeasonID        int64   `gorm:"column:seasonId" json:"seasonId"`
	LeagueAbbrev    string  `gorm:"column:leagueAbbrev" json:"leagueAbbrev"`
	GamesPlayed     int     `gorm:"column:gamesPlayed" json:"gamesPlayed"`
	Wins            int     `gorm:"column:wins" json:"wins"`
	SavePct         float64 `gorm:"column:savePct" json:"savePct"`
	GoalsAgainstAvg float64 `gorm:"column:goalsAgainstAverage" json:"goalsAgainstAverage"`
}
