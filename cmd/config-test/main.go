// config-test loads a configuration from either backend, validates it,
// and prints a summary.  Exit status reports whether the daemon would
// accept the file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/microwx/microwx/pkg/config"
)

func main() {
	var (
		yamlFile   = flag.String("yaml", "", "Path to YAML configuration file")
		sqliteFile = flag.String("sqlite", "", "Path to SQLite configuration file")
	)
	flag.Parse()

	if (*yamlFile == "") == (*sqliteFile == "") {
		fmt.Fprintf(os.Stderr, "Usage: %s -yaml <config.yaml> | -sqlite <config.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	var (
		cfg *config.ConfigData
		err error
	)
	if *yamlFile != "" {
		fmt.Printf("Loading YAML configuration: %s\n", *yamlFile)
		cfg, err = config.NewYAMLProvider(*yamlFile).LoadConfig()
	} else {
		fmt.Printf("Loading SQLite configuration: %s\n", *sqliteFile)
		var provider *config.SQLiteProvider
		provider, err = config.NewSQLiteProvider(*sqliteFile)
		if err == nil {
			defer provider.Close()
			cfg, err = provider.LoadConfig()
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Configuration invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ Configuration valid")
	fmt.Println()
	fmt.Printf("Sensor:      %s (%s)\n", cfg.Sensor.Name, cfg.Sensor.Type)
	if cfg.Sensor.SerialDevice != "" {
		fmt.Printf("  Device:    %s @ %d baud\n", cfg.Sensor.SerialDevice, cfg.Sensor.Baud)
	} else {
		fmt.Printf("  Endpoint:  %s:%s\n", cfg.Sensor.Hostname, cfg.Sensor.Port)
	}
	interval, _ := cfg.Sensor.Interval()
	fmt.Printf("  Interval:  %v\n", interval)

	fmt.Printf("Model:       %s\n", cfg.Model.RunnerAddr)
	for _, f := range cfg.Model.Features {
		fmt.Printf("  %-12s mean=%.3f std=%.3f\n", f.Name, f.Mean, f.Std)
	}

	fmt.Printf("Storage:\n")
	if cfg.Storage.TimescaleDB != nil {
		fmt.Printf("  TimescaleDB: configured\n")
	}
	if cfg.Storage.Webhook != nil {
		fmt.Printf("  Webhook:     %s (alerts_only=%v)\n", cfg.Storage.Webhook.URL, cfg.Storage.Webhook.AlertsOnly)
	}
	if cfg.Storage.TimescaleDB == nil && cfg.Storage.Webhook == nil {
		fmt.Printf("  (none)\n")
	}

	if cfg.RESTServer != nil {
		fmt.Printf("REST server: port %d\n", cfg.RESTServer.Port)
	}
}
