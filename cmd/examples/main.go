package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"tokyo-weather/models"
	"tokyo-weather/openweather"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("=== Tokyo weather client: usage examples ===")

	// Load .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("Warning: Error loading .env file:", err)
	}

	if os.Getenv(openweather.APIKeyEnv) == "" {
		fmt.Printf("%s is not set.\n\n", openweather.APIKeyEnv)
		fmt.Println("1. Create an API key at https://openweathermap.org/api")
		fmt.Printf("2. Add %s=<your key> to a .env file or the environment\n", openweather.APIKeyEnv)
		fmt.Println("3. Run this program again")
		return
	}

	client, err := openweather.NewClientFromEnv()
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	// Example 1: formatted weather with the defaults (metric units, Japanese)
	fmt.Println("\n*** Example 1: defaults ***")
	formatted, err := client.GetFormattedWeather(ctx, openweather.Query{})
	if err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}
	fmt.Println(formatted)

	// Example 2: Fahrenheit with English labels and description
	fmt.Println("\n*** Example 2: imperial units, English ***")
	formatted, err = client.GetFormattedWeather(ctx, openweather.Query{
		Units: models.UnitsImperial,
		Lang:  "en",
	})
	if err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}
	fmt.Println(formatted)

	// Example 3: the raw parsed report
	fmt.Println("\n*** Example 3: raw report ***")
	report, err := client.GetCurrentWeather(ctx, openweather.Query{})
	if err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}
	fmt.Printf("Location: %s\n", report.City)
	fmt.Printf("Weather: %s\n", report.Description)
	fmt.Printf("Temperature: %.1f%s\n", report.Temperature, report.Units.TempSuffix())
	fmt.Printf("Humidity: %d%%\n", report.Humidity)
	fmt.Printf("Wind speed: %.1f %s\n", report.WindSpeed, report.Units.WindSuffix())

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal report: %v", err)
	}
	fmt.Printf("\nAs JSON:\n%s\n", out)
}
