package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/models"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/services"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/random"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/web/server"
)

type SimulateResponse struct {
	Config models.SimulationConfig `json:"config"`
	Result models.Result           `json:"result"`
	Report string                  `json:"report"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// SimulateHandler runs the simulation described in the request body. Every request reads
// randomFile from its first line, so concurrent requests never share a source.
func SimulateHandler(randomFile string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg models.SimulationConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			slog.Warn("Invalid simulation request", "err", err)
			server.SendJsonStatus(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		source, err := random.OpenFile(randomFile)
		if err != nil {
			slog.Error("Cannot open random numbers", "err", err)
			server.SendJsonStatus(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		defer source.Close()

		result, err := services.Simulate(cfg, source)
		if err != nil {
			status := http.StatusInternalServerError
			switch {
			case errors.Is(err, models.ErrConfiguration):
				status = http.StatusBadRequest
			case errors.Is(err, random.ErrSourceExhausted), errors.Is(err, random.ErrInvalidValue):
				status = http.StatusUnprocessableEntity
			}
			slog.Warn("Simulation failed", "status", status, "err", err)
			server.SendJsonStatus(w, status, ErrorResponse{Error: err.Error()})
			return
		}

		server.SendJsonResponse(w, SimulateResponse{
			Config: cfg,
			Result: result,
			Report: services.Report(cfg, result),
		})
	}
}
