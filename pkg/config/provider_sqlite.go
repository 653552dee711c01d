package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database
// configuration, produced by the config-convert tool from a YAML file
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads and validates the complete configuration from the
// SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	err := s.db.QueryRow(
		`SELECT name, type, serial_device, baud, hostname, port, sample_interval
		 FROM sensor LIMIT 1`,
	).Scan(&config.Sensor.Name, &config.Sensor.Type, &config.Sensor.SerialDevice,
		&config.Sensor.Baud, &config.Sensor.Hostname, &config.Sensor.Port,
		&config.Sensor.SampleInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to load sensor config: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT runner_addr, report_every FROM model LIMIT 1`,
	).Scan(&config.Model.RunnerAddr, &config.Model.ReportEvery)
	if err != nil {
		return nil, fmt.Errorf("failed to load model config: %w", err)
	}

	features, err := s.loadFeatures()
	if err != nil {
		return nil, err
	}
	config.Model.Features = features

	if err := s.loadThresholds(&config.Thresholds); err != nil {
		return nil, err
	}

	if err := s.loadStorage(&config.Storage); err != nil {
		return nil, err
	}

	rest, err := s.loadRESTServer()
	if err != nil {
		return nil, err
	}
	config.RESTServer = rest

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (s *SQLiteProvider) loadFeatures() ([]FeatureStatData, error) {
	rows, err := s.db.Query(
		`SELECT name, mean, std FROM model_features ORDER BY feature_index`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load model features: %w", err)
	}
	defer rows.Close()

	var features []FeatureStatData
	for rows.Next() {
		var f FeatureStatData
		if err := rows.Scan(&f.Name, &f.Mean, &f.Std); err != nil {
			return nil, fmt.Errorf("failed to scan model feature: %w", err)
		}
		features = append(features, f)
	}
	return features, rows.Err()
}

func (s *SQLiteProvider) loadThresholds(t *ThresholdsData) error {
	err := s.db.QueryRow(
		`SELECT storm_pressure_drop, rain_pressure_drop, rain_humidity,
		        heat_temp, freeze_temp, rising_pressure, pressure_source
		 FROM thresholds LIMIT 1`,
	).Scan(&t.StormPressureDrop, &t.RainPressureDrop, &t.RainHumidity,
		&t.HeatTemp, &t.FreezeTemp, &t.RisingPressure, &t.PressureSource)
	if err == sql.ErrNoRows {
		// Built-in defaults apply
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load thresholds: %w", err)
	}
	return nil
}

func (s *SQLiteProvider) loadStorage(st *StorageData) error {
	var connStr string
	err := s.db.QueryRow(`SELECT connection_string FROM storage_timescaledb LIMIT 1`).Scan(&connStr)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to load timescaledb config: %w", err)
	}
	if err == nil && connStr != "" {
		st.TimescaleDB = &TimescaleDBData{ConnectionString: connStr}
	}

	var w WebhookData
	err = s.db.QueryRow(
		`SELECT url, alerts_only, timeout FROM storage_webhook LIMIT 1`,
	).Scan(&w.URL, &w.AlertsOnly, &w.Timeout)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to load webhook config: %w", err)
	}
	if err == nil && w.URL != "" {
		st.Webhook = &w
	}

	return nil
}

func (s *SQLiteProvider) loadRESTServer() (*RESTServerData, error) {
	var r RESTServerData
	err := s.db.QueryRow(`SELECT listen_addr, port FROM rest_server LIMIT 1`).Scan(&r.ListenAddr, &r.Port)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load rest server config: %w", err)
	}
	return &r, nil
}

// IsReadOnly returns false since SQLite configuration can be modified
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}
