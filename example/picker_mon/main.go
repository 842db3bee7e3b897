// Example: cronpick integration with Prometheus.
// Exposes change counters on the /metrics endpoint via promhttp while a
// picker cycles through schedules.

package main

import (
	"github.com/osmike/cronpick"
	"github.com/osmike/cronpick/internal/monitoring"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log"
	"math/rand"
	"net/http"
	"time"
)

func main() {
	mon, err := monitoring.NewPrometheus(nil)
	if err != nil {
		log.Fatal(err)
	}

	p, err := cronpick.NewPicker(cronpick.NewMemoryHost(""), cronpick.NewQuartz(),
		cronpick.WithMonitoring(mon),
	)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		types := []cronpick.RecurrenceType{cronpick.Daily, cronpick.Weekly, cronpick.Monthly}
		for range time.Tick(2 * time.Second) {
			p.SetType(types[rand.Intn(len(types))])
			p.SetMinutes(rand.Intn(60))
			log.Printf("[cronpick] %q", p.Expression())
		}
	}()

	http.Handle("/metrics", promhttp.Handler())
	log.Println("[Metrics] Exposed on http://localhost:2112/metrics")
	log.Fatal(http.ListenAndServe(":2112", nil))
}
