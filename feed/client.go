package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"roster-etl/errs"
	"roster-etl/feature/roster/models"
	"roster-etl/feature/roster/staging"
)

// Client fetches roster and statistics snapshots from the NHL web API.
// It is stateless with respect to any target store and is safely shared
// across sequential runs.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger

	// now is the clock used for season derivation; replaced in tests.
	now func() time.Time
}

// NewClient creates a feed client. The HTTP client carries a hard
// timeout so a stalled feed endpoint cannot hang a scheduled run.
func NewClient(cfg Config, log *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		log:  log,
		now:  time.Now,
	}
}

// FetchCurrentRosters returns the full current roster snapshot: every
// player on every active team's roster. Team membership comes from the
// current standings, the per-team rosters from the roster endpoint.
func (c *Client) FetchCurrentRosters(ctx context.Context) ([]models.RosterRecord, error) {
	var standings standingsResponse
	if err := c.getJSON(ctx, c.cfg.BaseURL+"/standings/now", &standings); err != nil {
		return nil, errs.New(errs.KindFetch, "standings", err)
	}

	var records []models.RosterRecord
	for _, team := range standings.Standings {
		abbrev := team.TeamAbbrev.Default
		if abbrev == "" {
			continue
		}

		var roster rosterResponse
		url := fmt.Sprintf("%s/roster/%s/current", c.cfg.BaseURL, abbrev)
		if err := c.getJSON(ctx, url, &roster); err != nil {
			return nil, errs.New(errs.KindFetch, "roster "+abbrev, err)
		}

		for _, group := range [][]rosterPlayer{roster.Forwards, roster.Defensemen, roster.Goalies} {
			for _, p := range group {
				records = append(records, models.RosterRecord{
					PlayerID:      p.ID,
					TeamAbbrev:    abbrev,
					Position:      p.PositionCode,
					FirstName:     p.FirstName.Default,
					LastName:      p.LastName.Default,
					SweaterNumber: p.SweaterNumber,
				})
			}
		}
	}

	return records, nil
}

// FetchCurrentSeasonStats returns the current season's skater and
// goalie summary snapshots in one call pair.
func (c *Client) FetchCurrentSeasonStats(ctx context.Context) (*models.SeasonStats, error) {
	season := currentSeasonID(c.now())

	var skaters summaryResponse[models.SkaterStats]
	url := fmt.Sprintf("%s/skater/summary?isAggregate=false&limit=-1&cayenneExp=seasonId=%d%%20and%%20gameTypeId=2", c.cfg.StatsURL, season)
	if err := c.getJSON(ctx, url, &skaters); err != nil {
		return nil, errs.New(errs.KindFetch, "skater summary", err)
	}

	var goalies summaryResponse[models.GoalieStats]
	url = fmt.Sprintf("%s/goalie/summary?isAggregate=false&limit=-1&cayenneExp=seasonId=%d%%20and%%20gameTypeId=2", c.cfg.StatsURL, season)
	if err := c.getJSON(ctx, url, &goalies); err != nil {
		return nil, errs.New(errs.KindFetch, "goalie summary", err)
	}

	return &models.SeasonStats{Skaters: skaters.Data, Goalies: goalies.Data}, nil
}

// FetchDetailedRecords fetches biographical detail and historical
// season splits for the given players and writes them into the detail
// staging slots of db. The write happens here, inside the client,
// because the detail payload never travels back to the orchestrator.
func (c *Client) FetchDetailedRecords(ctx context.Context, playerIDs []int64, db *gorm.DB) error {
	var (
		details []models.PlayerDetail
		skaters []models.PlayerSeasonSkater
		goalies []models.PlayerSeasonGoalie
	)

	for _, id := range playerIDs {
		var landing playerLanding
		url := fmt.Sprintf("%s/player/%d/landing", c.cfg.BaseURL, id)
		if err := c.getJSON(ctx, url, &landing); err != nil {
			return errs.New(errs.KindFetch, fmt.Sprintf("player %d", id), err)
		}

		details = append(details, models.PlayerDetail{
			PlayerID:     landing.PlayerID,
			FirstName:    landing.FirstName.Default,
			LastName:     landing.LastName.Default,
			Position:     landing.Position,
			Shoots:       landing.ShootsCatches,
			BirthDate:    landing.BirthDate,
			BirthCountry: landing.BirthCountry,
			HeightCm:     landing.HeightInCentimeters,
			WeightKg:     landing.WeightInKilograms,
		})

		for _, s := range landing.SeasonTotals {
			// Regular season splits only; the sync procedures have no
			// notion of playoff rows.
			if s.GameTypeID != 2 {
				continue
			}
			if landing.Position == "G" {
				goalies = append(goalies, models.PlayerSeasonGoalie{
					PlayerID:        landing.PlayerID,
					SeasonID:        s.Season,
					LeagueAbbrev:    s.LeagueAbbrev,
					GamesPlayed:     s.GamesPlayed,
					Wins:            s.Wins,
					SavePct:         s.SavePctg,
					GoalsAgainstAvg: s.GoalsAgainstAvg,
				})
			} else {
				skaters = append(skaters, models.PlayerSeasonSkater{
					PlayerID:     landing.PlayerID,
					SeasonID:     s.Season,
					LeagueAbbrev: s.LeagueAbbrev,
					GamesPlayed:  s.GamesPlayed,
					Goals:        s.Goals,
					Assists:      s.Assists,
					Points:       s.Points,
				})
			}
		}
	}

	c.log.Info("Fetched player details",
		zap.Int("players", len(details)),
		zap.Int("skater_seasons", len(skaters)),
		zap.Int("goalie_seasons", len(goalies)))

	loader := staging.NewLoader(db)
	if err := loader.Replace(ctx, staging.SlotPlayers, details); err != nil {
		return err
	}
	if err := loader.Replace(ctx, staging.SlotSeasonSkaters, skaters); err != nil {
		return err
	}
	return loader.Replace(ctx, staging.SlotSeasonGoalies, goalies)
}

// getJSON performs one GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// currentSeasonID derives the NHL season identifier (e.g. 20252026)
// from the wall clock. Seasons roll over in July.
func currentSeasonID(now time.Time) int64 {
	year := int64(now.Year())
	if now.Month() < time.July {
		year--
	}
	return year*10000 + year + 1
}
