package timescaledb

const createReadingsTableSQL = `CREATE TABLE IF NOT EXISTS readings (
	time timestamptz NOT NULL,
	stationname text,
	temperature real,
	humidity real,
	pressure real
);`

const createForecastsTableSQL = `CREATE TABLE IF NOT EXISTS forecasts (
	id text PRIMARY KEY,
	time timestamptz NOT NULL,
	stationname text,
	temperature real,
	humidity real,
	pressure real,
	storm_warning boolean,
	rain_likely boolean,
	heat_alert boolean,
	freeze_alert boolean,
	status text
);`

const createForecastPointsTableSQL = `CREATE TABLE IF NOT EXISTS forecast_points (
	forecast_id text NOT NULL,
	step integer NOT NULL,
	time timestamptz NOT NULL,
	temperature real,
	humidity real,
	pressure real
);`

const createExtensionSQL = `CREATE EXTENSION IF NOT EXISTS timescaledb;`

const createReadingsHypertableSQL = `SELECT create_hypertable('readings', 'time', if_not_exists => TRUE);`
