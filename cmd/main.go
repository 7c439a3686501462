package main

import (
	"flag"
	"log"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Harkirat-Singh4/vyomlab/rocket"
	"github.com/Harkirat-Singh4/vyomlab/simulator"
	"github.com/Harkirat-Singh4/vyomlab/utils"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config.yaml")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	catalog := rocket.DefaultCatalog()
	if cfg.MotorCatalogPath != "" {
		loaded, err := rocket.LoadCatalogFile(cfg.MotorCatalogPath)
		if err != nil {
			log.Printf("motor catalog: %v, falling back to the built-in set", err)
		} else {
			catalog = loaded
			log.Printf("Loaded %d motors from %s", len(catalog), cfg.MotorCatalogPath)
		}
	}

	session := simulator.NewSession(cfg.Simulation.MaxTimeSeconds, cfg.Simulation.TimeStepSeconds)
	simulator.SetCurrentSession(session)

	http.Handle("/actuator/prometheus", promhttp.Handler())
	go func() {
		log.Printf("Metrics server listening at %s", cfg.Server.MetricsAddr)
		ln, err := net.Listen("tcp", cfg.Server.MetricsAddr)
		if err != nil {
			log.Fatal(err)
		}
		http.Serve(ln, nil)
	}()

	go startRESTServer(cfg.Server.APIAddr, catalog)

	simulationLoop(cfg.Simulation.PlaybackRate)
}
