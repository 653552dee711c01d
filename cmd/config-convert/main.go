// config-convert converts a YAML configuration file to the SQLite
// schema the daemon's -config-backend sqlite mode reads.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/microwx/microwx/pkg/config"
	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE sensor (
		name TEXT,
		type TEXT NOT NULL,
		serial_device TEXT DEFAULT '',
		baud INTEGER DEFAULT 0,
		hostname TEXT DEFAULT '',
		port TEXT DEFAULT '',
		sample_interval TEXT DEFAULT ''
	);`,
	`CREATE TABLE model (
		runner_addr TEXT NOT NULL,
		report_every INTEGER DEFAULT 0
	);`,
	`CREATE TABLE model_features (
		feature_index INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		mean REAL NOT NULL,
		std REAL NOT NULL
	);`,
	`CREATE TABLE thresholds (
		storm_pressure_drop REAL DEFAULT 0,
		rain_pressure_drop REAL DEFAULT 0,
		rain_humidity REAL DEFAULT 0,
		heat_temp REAL DEFAULT 0,
		freeze_temp REAL DEFAULT 0,
		rising_pressure REAL DEFAULT 0,
		pressure_source TEXT DEFAULT ''
	);`,
	`CREATE TABLE storage_timescaledb (
		connection_string TEXT NOT NULL
	);`,
	`CREATE TABLE storage_webhook (
		url TEXT NOT NULL,
		alerts_only INTEGER DEFAULT 0,
		timeout TEXT DEFAULT ''
	);`,
	`CREATE TABLE rest_server (
		listen_addr TEXT DEFAULT '',
		port INTEGER NOT NULL
	);`,
}

func main() {
	var (
		yamlFile   = flag.String("yaml", "", "Path to YAML configuration file (required)")
		sqliteFile = flag.String("sqlite", "", "Path to SQLite database file (required)")
		force      = flag.Bool("force", false, "Overwrite existing SQLite database")
	)
	flag.Parse()

	if *yamlFile == "" || *sqliteFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -yaml <config.yaml> -sqlite <config.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := os.Stat(*sqliteFile); err == nil {
		if !*force {
			fmt.Fprintf(os.Stderr, "Error: SQLite file already exists: %s\n", *sqliteFile)
			fmt.Fprintf(os.Stderr, "Use -force to overwrite or choose a different filename\n")
			os.Exit(1)
		}
		if err := os.Remove(*sqliteFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing existing SQLite file: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Converting YAML configuration to SQLite...\n")
	fmt.Printf("  Source: %s\n", *yamlFile)
	fmt.Printf("  Target: %s\n", *sqliteFile)

	// Loading through the YAML provider validates the configuration
	// before anything is written.
	cfg, err := config.NewYAMLProvider(*yamlFile).LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading YAML configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("sqlite", *sqliteFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SQLite database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := convert(db, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error converting configuration: %v\n", err)
		os.Exit(1)
	}

	// Round-trip check: the SQLite provider must load and validate what
	// we just wrote.
	provider, err := config.NewSQLiteProvider(*sqliteFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reopening SQLite database: %v\n", err)
		os.Exit(1)
	}
	defer provider.Close()
	if _, err := provider.LoadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error verifying converted configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Conversion complete: %s\n", *sqliteFile)
}

func convert(db *sql.DB, cfg *config.ConfigData) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	_, err := db.Exec(
		`INSERT INTO sensor (name, type, serial_device, baud, hostname, port, sample_interval)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		cfg.Sensor.Name, cfg.Sensor.Type, cfg.Sensor.SerialDevice,
		cfg.Sensor.Baud, cfg.Sensor.Hostname, cfg.Sensor.Port, cfg.Sensor.SampleInterval)
	if err != nil {
		return fmt.Errorf("writing sensor config: %w", err)
	}

	_, err = db.Exec(`INSERT INTO model (runner_addr, report_every) VALUES (?, ?)`,
		cfg.Model.RunnerAddr, cfg.Model.ReportEvery)
	if err != nil {
		return fmt.Errorf("writing model config: %w", err)
	}

	for i, f := range cfg.Model.Features {
		_, err = db.Exec(
			`INSERT INTO model_features (feature_index, name, mean, std) VALUES (?, ?, ?, ?)`,
			i, f.Name, f.Mean, f.Std)
		if err != nil {
			return fmt.Errorf("writing model feature %q: %w", f.Name, err)
		}
	}

	_, err = db.Exec(
		`INSERT INTO thresholds (storm_pressure_drop, rain_pressure_drop, rain_humidity,
		                         heat_temp, freeze_temp, rising_pressure, pressure_source)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		cfg.Thresholds.StormPressureDrop, cfg.Thresholds.RainPressureDrop,
		cfg.Thresholds.RainHumidity, cfg.Thresholds.HeatTemp, cfg.Thresholds.FreezeTemp,
		cfg.Thresholds.RisingPressure, cfg.Thresholds.PressureSource)
	if err != nil {
		return fmt.Errorf("writing thresholds: %w", err)
	}

	if cfg.Storage.TimescaleDB != nil {
		_, err = db.Exec(`INSERT INTO storage_timescaledb (connection_string) VALUES (?)`,
			cfg.Storage.TimescaleDB.ConnectionString)
		if err != nil {
			return fmt.Errorf("writing timescaledb config: %w", err)
		}
	}

	if cfg.Storage.Webhook != nil {
		_, err = db.Exec(`INSERT INTO storage_webhook (url, alerts_only, timeout) VALUES (?, ?, ?)`,
			cfg.Storage.Webhook.URL, cfg.Storage.Webhook.AlertsOnly, cfg.Storage.Webhook.Timeout)
		if err != nil {
			return fmt.Errorf("writing webhook config: %w", err)
		}
	}

	if cfg.RESTServer != nil {
		_, err = db.Exec(`INSERT INTO rest_server (listen_addr, port) VALUES (?, ?)`,
			cfg.RESTServer.ListenAddr, cfg.RESTServer.Port)
		if err != nil {
			return fmt.Errorf("writing rest server config: %w", err)
		}
	}

	return nil
}
