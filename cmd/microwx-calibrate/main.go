// microwx-calibrate computes per-feature normalization statistics from
// historical readings stored in TimescaleDB and emits a ready-to-paste
// model configuration section.  Run it against the same data the model
// was trained on; mismatched statistics skew every forecast.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v2"
)

// FeatureSample holds one feature's historical values.
type FeatureSample struct {
	Name   string
	Values []float64
}

// FeatureStat is the YAML shape of one normalization entry, matching
// the daemon's model.features configuration.
type FeatureStat struct {
	Name string  `yaml:"name"`
	Mean float32 `yaml:"mean"`
	Std  float32 `yaml:"std"`
}

type modelSection struct {
	Model struct {
		Features []FeatureStat `yaml:"features"`
	} `yaml:"model"`
}

func main() {
	var (
		dbHost  = flag.String("db-host", "localhost", "Database host")
		dbPort  = flag.Int("db-port", 5432, "Database port")
		dbUser  = flag.String("db-user", "postgres", "Database user")
		dbPass  = flag.String("db-pass", "", "Database password")
		dbName  = flag.String("db-name", "microwx", "Database name")
		station = flag.String("station", "", "Restrict to one station name (default: all)")
		days    = flag.Int("days", 30, "Number of days of data to analyze")
		output  = flag.String("output", "", "Write YAML to this file instead of stdout")
	)
	flag.Parse()

	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		*dbHost, *dbPort, *dbUser, *dbPass, *dbName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Fprintf(os.Stderr, "Error pinging database: %v\n", err)
		os.Exit(1)
	}

	samples := fetchSamples(db, *station, *days)
	for _, s := range samples {
		if len(s.Values) < 10 {
			fmt.Fprintf(os.Stderr, "Error: not enough %s samples (%d). Need at least 10.\n", s.Name, len(s.Values))
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stderr, "Analyzed %d readings over %d days\n\n", len(samples[0].Values), *days)

	var section modelSection
	for _, s := range samples {
		mean := stat.Mean(s.Values, nil)
		std := stat.StdDev(s.Values, nil)
		fmt.Fprintf(os.Stderr, "  %-12s mean=%.3f std=%.3f min=%.3f max=%.3f\n",
			s.Name, mean, std, minOf(s.Values), maxOf(s.Values))
		section.Model.Features = append(section.Model.Features, FeatureStat{
			Name: s.Name,
			Mean: float32(mean),
			Std:  float32(std),
		})
	}

	out, err := yaml.Marshal(&section)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling YAML: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *output, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "\nWrote %s\n", *output)
		return
	}
	fmt.Println(string(out))
}

func fetchSamples(db *sql.DB, station string, days int) []FeatureSample {
	query := `
		SELECT temperature, humidity, pressure
		FROM readings
		WHERE time >= NOW() - INTERVAL '1 day' * $1
		  AND temperature IS NOT NULL
		  AND humidity IS NOT NULL
		  AND pressure IS NOT NULL
		  AND ($2 = '' OR stationname = $2)
		ORDER BY time
	`

	rows, err := db.Query(query, days, station)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error querying readings: %v\n", err)
		os.Exit(1)
	}
	defer rows.Close()

	samples := []FeatureSample{
		{Name: "temperature"},
		{Name: "humidity"},
		{Name: "pressure"},
	}

	start := time.Now()
	for rows.Next() {
		var t, h, p float64
		if err := rows.Scan(&t, &h, &p); err != nil {
			fmt.Fprintf(os.Stderr, "Error scanning row: %v\n", err)
			os.Exit(1)
		}
		samples[0].Values = append(samples[0].Values, t)
		samples[1].Values = append(samples[1].Values, h)
		samples[2].Values = append(samples[2].Values, p)
	}
	if err := rows.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading rows: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Query completed in %v\n", time.Since(start).Round(time.Millisecond))

	return samples
}

func minOf(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
