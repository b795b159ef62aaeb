package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/gymsplit/internal/schedule"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	spreadsheetIDKey = "gym_tracker_sheet_id"
	cycleStartDayKey = "gym_tracker_cycle_start_day"
)

var ErrMissingSpreadsheetID = errors.New("spreadsheet id is required")

// Settings is the persisted client configuration.
type Settings struct {
	SpreadsheetID string `json:"spreadsheetId"`
	CycleStartDay int    `json:"cycleStartDay"`
}

func (s Settings) CycleConfig() schedule.CycleConfig {
	return schedule.CycleConfig{StartDay: s.CycleStartDay}
}

func (s Settings) Validate() error {
	if strings.TrimSpace(s.SpreadsheetID) == "" {
		return ErrMissingSpreadsheetID
	}
	return s.CycleConfig().Validate()
}

// Static serves fixed settings, for callers that take them from flags or
// the environment instead of redis.
type Static Settings

func (s Static) Load(context.Context) (Settings, error) {
	return Settings(s), nil
}

// Store keeps Settings in redis under two fixed keys.
type Store struct {
	redisClient     *redis.Client
	defaultStartDay int
}

func NewStore(redisClient *redis.Client, defaultStartDay int) *Store {
	return &Store{
		redisClient:     redisClient,
		defaultStartDay: defaultStartDay,
	}
}

// Load returns the stored settings. Missing keys yield an empty spreadsheet
// id and the default cycle start day; an unreadable start day also falls
// back to the default.
func (s *Store) Load(ctx context.Context) (Settings, error) {
	settings := Settings{CycleStartDay: s.defaultStartDay}

	vals, err := s.redisClient.MGet(ctx, spreadsheetIDKey, cycleStartDayKey).Result()
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}

	if id, ok := vals[0].(string); ok {
		settings.SpreadsheetID = id
	}
	if raw, ok := vals[1].(string); ok {
		startDay, err := strconv.Atoi(raw)
		if err != nil || (schedule.CycleConfig{StartDay: startDay}).Validate() != nil {
			log.Warnf("settings: ignoring stored cycle start day [%s]", raw)
		} else {
			settings.CycleStartDay = startDay
		}
	}

	return settings, nil
}

func (s *Store) Save(ctx context.Context, settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	settings.SpreadsheetID = strings.TrimSpace(settings.SpreadsheetID)
	if err := s.redisClient.MSet(
		ctx,
		spreadsheetIDKey, settings.SpreadsheetID,
		cycleStartDayKey, strconv.Itoa(settings.CycleStartDay),
	).Err(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	log.Debugf("settings saved: sheet [%s], cycle start day [%d]", settings.SpreadsheetID, settings.CycleStartDay)
	return nil
}
