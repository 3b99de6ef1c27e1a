package handler

import (
	"net/http"

	"launch-control-service/internal/domain/repository"
	"launch-control-service/pkg/logger"
)

// PlanetHandler serves the planet catalog
type PlanetHandler struct {
	planetRepo repository.PlanetRepository
	logger     logger.Logger
}

// NewPlanetHandler creates a new planet handler
func NewPlanetHandler(planetRepo repository.PlanetRepository, logger logger.Logger) *PlanetHandler {
	return &PlanetHandler{
		planetRepo: planetRepo,
		logger:     logger,
	}
}

// Register mounts the planet routes on mux
func (h *PlanetHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/planets", h.ListPlanets)
}

type planetResponse struct {
	KeplerName string `json:"keplerName"`
}

// ListPlanets handles GET /v1/planets
func (h *PlanetHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.planetRepo.FindAll(r.Context())
	if err != nil {
		h.logger.Error("Failed to list planets", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, MsgInternal)
		return
	}

	response := make([]planetResponse, 0, len(planets))
	for _, planet := range planets {
		response = append(response, planetResponse{KeplerName: planet.KeplerName})
	}
	writeJSON(w, h.logger, http.StatusOK, response)
}
