package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/gorilla/mux"

	"github.com/Harkirat-Singh4/vyomlab/rocket"
	"github.com/Harkirat-Singh4/vyomlab/simulator"
	"github.com/Harkirat-Singh4/vyomlab/views"
)

func startRESTServer(addr string, catalog rocket.Catalog) {
	router := mux.NewRouter()
	router.HandleFunc("/design", getDesignHandler).Methods("GET")
	router.HandleFunc("/design/components", getComponentsHandler).Methods("GET")
	router.HandleFunc("/design/components", setComponentsHandler).Methods("PUT", "OPTIONS")
	router.HandleFunc("/design/components", addComponentHandler).Methods("POST")
	router.HandleFunc("/design/components/{id}", deleteComponentHandler).Methods("DELETE", "OPTIONS")
	router.HandleFunc("/design/motor/{designation}", selectMotorHandler(catalog)).Methods("POST", "OPTIONS")
	router.HandleFunc("/design/motor", clearMotorHandler).Methods("DELETE", "OPTIONS")
	router.HandleFunc("/motors", listMotorsHandler(catalog)).Methods("GET")
	router.HandleFunc("/stability", getStabilityHandler).Methods("GET")
	router.HandleFunc("/launch", setLaunchHandler).Methods("PUT", "OPTIONS")
	router.HandleFunc("/simulation/start", startSimulationHandler).Methods("POST", "OPTIONS")
	router.HandleFunc("/simulation/data", getSimulationDataHandler).Methods("GET")
	router.HandleFunc("/simulation/summary", getSummaryHandler).Methods("GET")
	router.HandleFunc("/simulation/export", exportSimulationHandler).Methods("GET")

	log.Printf("REST API server running on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}

// setCORS adds the CORS headers every handler carries and answers the
// preflight request. Returns true when the request is already handled.
func setCORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func getDesignHandler(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}
	writeJSON(w, simulator.CurrentSession.Snapshot())
}

func getComponentsHandler(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}
	components := simulator.CurrentSession.Components()
	if components == nil {
		components = []rocket.Component{}
	}
	writeJSON(w, components)
}

func setComponentsHandler(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}
	var components []rocket.Component
	if err := json.NewDecoder(r.Body).Decode(&components); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	simulator.CurrentSession.SetComponents(components)
	writeJSON(w, simulator.CurrentSession.Snapshot())
}

func addComponentHandler(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}
	var c rocket.Component
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if c.ID == "" {
		http.Error(w, "Component id is required", http.StatusBadRequest)
		return
	}
	simulator.CurrentSession.AddComponent(c)
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, simulator.CurrentSession.Snapshot())
}

func deleteComponentHandler(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}
	id := mux.Vars(r)["id"]
	if !simulator.CurrentSession.RemoveComponent(id) {
		http.Error(w, "Unknown component id", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Component %s removed", id)
}

func selectMotorHandler(catalog rocket.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if setCORS(w, r) {
			return
		}
		designation := mux.Vars(r)["designation"]
		motor, ok := catalog.Lookup(designation)
		if !ok {
			http.Error(w, "Unknown motor designation", http.StatusNotFound)
			return
		}
		simulator.CurrentSession.SelectMotor(motor)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Motor %s selected", designation)
	}
}

func clearMotorHandler(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}
	simulator.CurrentSession.ClearMotor()
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Motor cleared")
}

func listMotorsHandler(catalog rocket.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if setCORS(w, r) {
			return
		}
		motors := make([]rocket.Motor, 0, len(catalog))
		for _, m := range catalog {
			motors = append(motors, m)
		}
		sort.Slice(motors, func(i, j int) bool {
			return motors[i].Designation < motors[j].Designation
		})
		writeJSON(w, motors)
	}
}

func getStabilityHandler(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}
	writeJSON(w, simulator.CurrentSession.Stability())
}

func setLaunchHandler(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}
	lc := simulator.DefaultLaunchConditions()
	if err := json.NewDecoder(r.Body).Decode(&lc); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	simulator.CurrentSession.SetConditions(lc)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Launch conditions updated")
}

func startSimulationHandler(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}
	select {
	case simulationStartChan <- true:
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprintln(w, "Simulation start command accepted")
	default:
		http.Error(w, "Simulation already running or start command already issued", http.StatusConflict)
	}
}

func getSimulationDataHandler(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}
	samples := simulator.CurrentSession.LastRun()
	if samples == nil {
		samples = []simulator.FlightStateSample{}
	}
	writeJSON(w, samples)
}

func getSummaryHandler(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}
	writeJSON(w, simulator.Summarize(simulator.CurrentSession.LastRun()))
}

func exportSimulationHandler(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="flight.csv"`)
	if err := views.WriteFlightCSV(w, simulator.CurrentSession.LastRun()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
