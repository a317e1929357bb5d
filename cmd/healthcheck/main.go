// Package main checks the local fulfillment server's liveness endpoint.
// It is meant for container HEALTHCHECK instructions, where no curl exists.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/garyellow/showrank-lexbot/internal/config"
)

func main() {
	port := os.Getenv(config.EnvPort)
	if port == "" {
		port = "10000"
	}

	client := &http.Client{Timeout: 3 * time.Second}
	url := fmt.Sprintf("http://localhost:%s/livez", port)

	resp, err := client.Get(url)
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}

	os.Exit(0)
}
