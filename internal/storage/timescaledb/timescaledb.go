// Package timescaledb persists readings and forecast events to a
// TimescaleDB hypertable.
package timescaledb

import (
	"context"
	"sync"
	"time"

	"github.com/microwx/microwx/internal/database"
	"github.com/microwx/microwx/internal/log"
	"github.com/microwx/microwx/internal/types"
	"gorm.io/gorm"
)

// Storage holds the configuration for a TimescaleDB reporting backend
type Storage struct {
	TimescaleDBConn *gorm.DB
}

// ForecastRow is one persisted forecast event
type ForecastRow struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Time         time.Time `gorm:"column:time"`
	StationName  string    `gorm:"column:stationname"`
	Temperature  float32   `gorm:"column:temperature"`
	Humidity     float32   `gorm:"column:humidity"`
	Pressure     float32   `gorm:"column:pressure"`
	StormWarning bool      `gorm:"column:storm_warning"`
	RainLikely   bool      `gorm:"column:rain_likely"`
	HeatAlert    bool      `gorm:"column:heat_alert"`
	FreezeAlert  bool      `gorm:"column:freeze_alert"`
	Status       string    `gorm:"column:status"`
}

func (ForecastRow) TableName() string {
	return "forecasts"
}

// ForecastPointRow is one predicted step of a persisted forecast
type ForecastPointRow struct {
	ForecastID  string    `gorm:"column:forecast_id"`
	Step        int       `gorm:"column:step"`
	Time        time.Time `gorm:"column:time"`
	Temperature float32   `gorm:"column:temperature"`
	Humidity    float32   `gorm:"column:humidity"`
	Pressure    float32   `gorm:"column:pressure"`
}

func (ForecastPointRow) TableName() string {
	return "forecast_points"
}

// StartStorageEngine creates a goroutine loop to receive forecast
// events and send them off to TimescaleDB
func (t *Storage) StartStorageEngine(ctx context.Context, wg *sync.WaitGroup) chan<- types.ForecastEvent {
	log.Info("starting TimescaleDB reporting engine...")
	eventChan := make(chan types.ForecastEvent, 10)
	go t.processEvents(ctx, wg, eventChan)
	return eventChan
}

func (t *Storage) processEvents(ctx context.Context, wg *sync.WaitGroup, events <-chan types.ForecastEvent) {
	wg.Add(1)
	defer wg.Done()

	for {
		select {
		case ev := <-events:
			if err := t.StoreForecastEvent(ev); err != nil {
				log.Error("could not store forecast event:", err)
			}
		case <-ctx.Done():
			log.Info("cancellation request received. Cancelling forecast event processor.")
			return
		}
	}
}

// StoreReading stores a raw reading in TimescaleDB
func (t *Storage) StoreReading(r types.Reading) error {
	err := t.TimescaleDBConn.Table("readings").Create(&r).Error
	if err != nil {
		log.Error("could not store reading:", err)
		return err
	}
	return nil
}

// StoreForecastEvent stores a forecast event plus its per-step points
func (t *Storage) StoreForecastEvent(ev types.ForecastEvent) error {
	if err := t.StoreReading(ev.Current); err != nil {
		return err
	}

	row := ForecastRow{
		ID:           ev.ID,
		Time:         ev.Cycle,
		StationName:  ev.Current.StationName,
		Temperature:  ev.Current.Temperature,
		Humidity:     ev.Current.Humidity,
		Pressure:     ev.Current.Pressure,
		StormWarning: ev.Alerts.StormWarning,
		RainLikely:   ev.Alerts.RainLikely,
		HeatAlert:    ev.Alerts.HeatAlert,
		FreezeAlert:  ev.Alerts.FreezeAlert,
		Status:       string(ev.Alerts.Status),
	}
	if err := t.TimescaleDBConn.Create(&row).Error; err != nil {
		return err
	}

	points := make([]ForecastPointRow, len(ev.Forecast))
	for i, r := range ev.Forecast {
		points[i] = ForecastPointRow{
			ForecastID:  ev.ID,
			Step:        i,
			Time:        r.Timestamp,
			Temperature: r.Temperature,
			Humidity:    r.Humidity,
			Pressure:    r.Pressure,
		}
	}
	if len(points) > 0 {
		if err := t.TimescaleDBConn.Create(&points).Error; err != nil {
			return err
		}
	}

	return nil
}

// New sets up a new TimescaleDB reporting backend
func New(ctx context.Context, connectionString string) (*Storage, error) {
	var err error
	t := Storage{}

	t.TimescaleDBConn, err = database.CreateConnection(connectionString)
	if err != nil {
		log.Warn("warning: unable to create a TimescaleDB connection:", err)
		return &Storage{}, err
	}

	// Create tables and hypertables
	for _, stmt := range []string{
		createReadingsTableSQL,
		createForecastsTableSQL,
		createForecastPointsTableSQL,
		createExtensionSQL,
		createReadingsHypertableSQL,
	} {
		if err := t.TimescaleDBConn.WithContext(ctx).Exec(stmt).Error; err != nil {
			log.Warn("warning: could not run schema statement:", err)
			return &Storage{}, err
		}
	}

	return &t, nil
}
