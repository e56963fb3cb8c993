package cronjobs

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"go-reviewpulse/types"
)

// InitCronJobs schedules reachability probes for the configured custom
// model endpoints. Probes only log; the resolver's backend choice is made
// once at startup and never revisited.
func InitCronJobs(endpoints map[types.Schema]string) {
	if len(endpoints) == 0 {
		return
	}

	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Custom model probe: run every 10 minutes
	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("\nCronJob: Custom Model Probe Running")
		for schema, url := range endpoints {
			probeEndpoint(schema, url)
		}
	})
	if err != nil {
		log.Println("Error scheduling Custom Model Probe:", err)
	}

	c.Start()
}

func probeEndpoint(schema types.Schema, baseURL string) {
	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Get(strings.TrimRight(baseURL, "/") + "/labels")
	if err != nil {
		log.Printf("Custom %s model unreachable: %v", schema, err)
		return
	}
	defer resp.Body.Close()

	log.Printf("Custom %s model responded with %s", schema, resp.Status)
}
