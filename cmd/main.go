package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/amirphl/cfmm-router/internal/config"
	"github.com/amirphl/cfmm-router/internal/objective"
	"github.com/amirphl/cfmm-router/internal/utils"
)

// Objective inspector: loads an orders file, constructs every objective, and
// prints its box bounds, expiry, and conjugate value/gradient at each probe
// vector. Useful when debugging why the routing solver rejects or stalls on
// an order.
func main() {
	configPath := flag.String("config", "orders.yaml", "Path to YAML orders file")
	flag.Parse()

	logger := utils.GetLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Printf("Inspecting %d orders from %s", len(cfg.Orders), *configPath)

	for _, order := range cfg.Orders {
		spec, err := order.Spec()
		if err != nil {
			log.Fatalf("Failed to parse order %s: %v", order.Name, err)
		}
		obj, err := objective.New(spec)
		if err != nil {
			log.Fatalf("Failed to construct order %s: %v", order.Name, err)
		}

		n := obj.Tokens()
		logger.Printf("[%s] kind=%s tokens=%d expiry=%s", order.Name, order.Kind, n, formatExpiry(obj.TimeToExpiry()))
		logger.Printf("[%s] lower=%v upper=%v", order.Name, obj.LowerLimit(), obj.UpperLimit())

		grad := make([]float64, n)
		for _, probe := range order.Probes {
			val, err := obj.F(probe)
			if err != nil {
				log.Fatalf("Failed to evaluate order %s at %v: %v", order.Name, probe, err)
			}
			if math.IsInf(val, 1) {
				logger.Printf("[%s] probe=%v infeasible", order.Name, probe)
				continue
			}
			if err := obj.Grad(grad, probe); err != nil {
				log.Fatalf("Failed to evaluate gradient of order %s at %v: %v", order.Name, probe, err)
			}
			logger.Printf("[%s] probe=%v value=%g grad=%v", order.Name, probe, val, grad)
		}
	}
}

func formatExpiry(tau float64) string {
	if math.IsInf(tau, 1) {
		return "never"
	}
	return time.Duration(tau * float64(time.Second)).String()
}
