package main

import (
	"fmt"
	"log"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/Harkirat-Singh4/vyomlab/metrics"
	"github.com/Harkirat-Singh4/vyomlab/simulator"
)

// simulationStartChan carries the run command from the REST surface.
var simulationStartChan = make(chan bool, 1)

// simulationLoop waits for start commands, runs the core synchronously,
// then replays the finished trajectory to the metrics endpoint. Playback
// pacing lives entirely here: the core's output is already complete and
// immutable before the first gauge update.
func simulationLoop(playbackRate float64) {
	for {
		<-simulationStartChan
		log.Println("Starting simulation run")

		session := simulator.CurrentSession
		metrics.SendStability(session.Stability())
		metrics.SendComponentMasses(session.Components())

		samples := session.Run()
		playback(samples, playbackRate)

		sum := simulator.Summarize(samples)
		log.Printf("🚀 Flight complete: apogee %.1f m at %.2f s, max velocity %.1f m/s, touchdown at %.2f s",
			sum.Apogee, sum.ApogeeTime, sum.MaxVelocity, sum.FlightTime)
		printAltitudeProfile(samples)
		log.Println("Simulation ended, waiting for next start command")
	}
}

// playback streams samples to the gauges at rate× real time. A rate of 0
// or less publishes everything immediately.
func playback(samples []simulator.FlightStateSample, rate float64) {
	prev := 0.0
	for _, s := range samples {
		metrics.SendFlightSample(s)
		if rate > 0 {
			dt := s.Time - prev
			prev = s.Time
			if dt > 0 {
				time.Sleep(time.Duration(dt / rate * float64(time.Second)))
			}
		}
	}
}

// printAltitudeProfile draws the altitude curve in the terminal,
// downsampled to a screenful of points.
func printAltitudeProfile(samples []simulator.FlightStateSample) {
	if len(samples) < 2 {
		return
	}
	const maxPoints = 120
	stride := 1
	if len(samples) > maxPoints {
		stride = len(samples) / maxPoints
	}
	series := make([]float64, 0, maxPoints+1)
	for i := 0; i < len(samples); i += stride {
		series = append(series, samples[i].Altitude)
	}
	series = append(series, samples[len(samples)-1].Altitude)

	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Caption("altitude, m"),
	))
}
