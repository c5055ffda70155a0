package feed

// localized is the NHL API's wrapper for translatable strings.
type localized struct {
	Default string `json:"default"`
}

type standingsResponse struct {
	Standings []struct {
		TeamAbbrev localized `json:"teamAbbrev"`
	} `json:"standings"`
}

type rosterPlayer struct {
	ID            int64     `json:"id"`
	FirstName     localized `json:"firstName"`
	LastName      localized `json:"lastName"`
	SweaterNumber int       `json:"sweaterNumber"`
	PositionCode  string    `json:"positionCode"`
}

type rosterResponse struct {
	Forwards   []rosterPlayer `json:"forwards"`
	Defensemen []rosterPlayer `json:"defensemen"`
	Goalies    []rosterPlayer `json:"goalies"`
}

// summaryResponse wraps the stats REST API's data envelope. T is the
// row type (models.SkaterStats or models.GoalieStats), whose json tags
// match the API field names.
type summaryResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type playerLanding struct {
	PlayerID            int64     `json:"playerId"`
	FirstName           localized `json:"firstName"`
	LastName            localized `json:"lastName"`
	Position            string    `json:"position"`
	ShootsCatches       string    `json:"shootsCatches"`
	BirthDate           string    `json:"birthDate"`
	BirthCountry        string    `json:"birthCountry"`
	HeightInCentimeters int       `json:"heightInCentimeters"`
	WeightInKilograms   int       `json:"weightInKilograms"`
	SeasonTotals        []struct {
		Season          int64   `json:"season"`
		LeagueAbbrev    string  `json:"leagueAbbrev"`
		GameTypeID      int     `json:"gameTypeId"`
		GamesPlayed     int     `json:"gamesPlayed"`
		Goals           int     `json:"goals"`
		Assists         int     `json:"assists"`
		Points          int     `json:"points"`
		Wins            int     `json:"wins"`
		SavePctg        float64 `json:"savePctg"`
		GoalsAgainstAvg float64 `json:"goalsAgainstAvg"`
	} `json:"seasonTotals"`
}
