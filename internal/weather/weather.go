// Package weather serves the fixed sample conditions shown on the site. No
// external weather source is consulted.
package weather

import (
	"net/http"

	"agriservice/internal/handlers"

	"github.com/go-chi/chi/v5"
)

// Current holds the conditions reported for now.
type Current struct {
	TemperatureC int `json:"temperature_c"`
	HumidityPct  int `json:"humidity_pct"`
	WindKmh      int `json:"wind_kmh"`
	RainfallMm   int `json:"rainfall_mm"`
}

// Day is one entry of the seven-day forecast.
type Day struct {
	Day          string `json:"day"`
	TemperatureC int    `json:"temperature_c"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
}

// Report is the body of GET /weather.
type Report struct {
	Current  Current `json:"current"`
	Forecast []Day   `json:"forecast"`
}

var sample = Report{
	Current: Current{TemperatureC: 24, HumidityPct: 65, WindKmh: 12, RainfallMm: 0},
	Forecast: []Day{
		{Day: "Today", TemperatureC: 24, Description: "Sunny", Icon: "fas fa-sun"},
		{Day: "Tomorrow", TemperatureC: 22, Description: "Partly Cloudy", Icon: "fas fa-cloud-sun"},
		{Day: "Wed", TemperatureC: 20, Description: "Rainy", Icon: "fas fa-cloud-rain"},
		{Day: "Thu", TemperatureC: 18, Description: "Cloudy", Icon: "fas fa-cloud"},
		{Day: "Fri", TemperatureC: 25, Description: "Sunny", Icon: "fas fa-sun"},
		{Day: "Sat", TemperatureC: 27, Description: "Hot", Icon: "fas fa-thermometer-full"},
		{Day: "Sun", TemperatureC: 26, Description: "Sunny", Icon: "fas fa-sun"},
	},
}

// Sample returns a copy of the sample report.
func Sample() Report {
	r := sample
	r.Forecast = append([]Day(nil), sample.Forecast...)
	return r
}

// RegisterRoutes mounts GET /weather.
func RegisterRoutes(r chi.Router) {
	r.Get("/weather", func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteJSON(w, http.StatusOK, Sample())
	})
}
