package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"tokyo-weather/models"
	"tokyo-weather/openweather"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from a .env file when one exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments; every default reproduces a bare run
	units := flag.String("units", "", "measurement units: metric, imperial or standard (default metric)")
	lang := flag.String("lang", "", "language code for the conditions text, e.g. ja or en (default ja)")
	jsonOut := flag.Bool("json", false, "print the parsed report as JSON instead of formatted text")
	timeout := flag.Duration("timeout", 0, "HTTP request timeout (default 10s)")
	flag.Parse()

	if *units != "" && !models.Units(*units).Valid() {
		fmt.Fprintf(os.Stderr, "error: invalid units %q (use metric, imperial or standard)\n", *units)
		os.Exit(1)
	}

	cfg, err := openweather.LoadConfig()
	if err != nil {
		fail(err)
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}

	client, err := openweather.NewClient(cfg)
	if err != nil {
		fail(err)
	}

	ctx := context.Background()
	query := openweather.Query{Units: models.Units(*units), Lang: *lang}

	if *jsonOut {
		report, err := client.GetCurrentWeather(ctx, query)
		if err != nil {
			fail(err)
		}
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fail(err)
		}
		fmt.Println(string(out))
		return
	}

	formatted, err := client.GetFormattedWeather(ctx, query)
	if err != nil {
		fail(err)
	}
	fmt.Println(formatted)
}

// fail prints the error to stderr, adds setup instructions for
// configuration problems, and exits non-zero.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)

	var cfgErr *openweather.ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "To use this tool:")
		fmt.Fprintln(os.Stderr, "  1. Create an API key at https://openweathermap.org/api")
		fmt.Fprintf(os.Stderr, "  2. Set %s in the environment or in a .env file\n", openweather.APIKeyEnv)
	}
	os.Exit(1)
}
