package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/helloworld/web-app/internal/config"
	"github.com/helloworld/web-app/internal/models"
	"github.com/helloworld/web-app/internal/validators"
)

const probeTimeout = 5 * time.Second

func main() {
	fmt.Println("Hello World Web Application - Health Probe")
	fmt.Println("==========================================")
	fmt.Println()

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	url := settings.URL() + "/health"
	fmt.Printf("Probing %s\n", url)

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	health, err := probe(ctx, http.DefaultClient, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Health check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Status:   %s\n", health.Status)
	fmt.Printf("Message:  %s\n", health.Message)
	fmt.Printf("App:      %s v%s\n", health.AppName, health.AppVersion)
	fmt.Printf("Reported: %s\n", validators.FormatUTCTimestamp(validators.FromEpochSeconds(health.Timestamp)))
	fmt.Println()
	fmt.Println("Health check passed!")
}

// probe fetches url and requires a healthy response carrying a current timestamp
func probe(ctx context.Context, client *http.Client, url string) (*models.HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var health models.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if !health.IsHealthy() {
		return nil, fmt.Errorf("status is %q", health.Status)
	}

	reported := validators.FromEpochSeconds(health.Timestamp)
	if !validators.IsRecent(reported, time.Minute) {
		return nil, fmt.Errorf("timestamp %s is not current", validators.FormatUTCTimestamp(reported))
	}
	return &health, nil
}
