package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"launch-control-service/internal/domain/entity"
	"launch-control-service/internal/usecase"
	"launch-control-service/pkg/logger"
	"launch-control-service/pkg/utils"
)

// Error messages returned to clients
const (
	MsgMissingProperty = "Missing required launch property"
	MsgInvalidDate     = "Invalid launch date"
	MsgInvalidID       = "Invalid launch id"
	MsgInvalidQuery    = "Invalid pagination parameters"
	MsgLaunchNotFound  = "Launch not found"
	MsgNotAborted      = "Launch not aborted"
	MsgNoPlanet        = "No matching planet found"
	MsgInternal        = "Internal server error"
)

// LaunchService is the launch lifecycle as seen by the HTTP layer
type LaunchService interface {
	ExistsLaunch(ctx context.Context, flightNumber int) (bool, error)
	ListLaunches(ctx context.Context, query entity.LaunchQuery) ([]*entity.Launch, error)
	ScheduleLaunch(ctx context.Context, input entity.LaunchInput) (*entity.Launch, error)
	AbortLaunch(ctx context.Context, flightNumber int) (bool, error)
}

// LaunchHandler serves the launch routes
type LaunchHandler struct {
	launches LaunchService
	logger   logger.Logger
}

// NewLaunchHandler creates a new launch handler
func NewLaunchHandler(launches LaunchService, logger logger.Logger) *LaunchHandler {
	return &LaunchHandler{
		launches: launches,
		logger:   logger,
	}
}

// Register mounts the launch routes on mux
func (h *LaunchHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/launches", h.ListLaunches)
	mux.HandleFunc("POST /v1/launches", h.ScheduleLaunch)
	mux.HandleFunc("DELETE /v1/launches/{id}", h.AbortLaunch)
}

// launchRequest is the body of a schedule request
type launchRequest struct {
	Mission    string `json:"mission"`
	Rocket     string `json:"rocket"`
	Target     string `json:"target"`
	LaunchDate string `json:"launchDate"`
}

// ValidationError reports a malformed request
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// toInput checks required fields and parses the launch date
func (r launchRequest) toInput() (entity.LaunchInput, error) {
	if r.Mission == "" || r.Rocket == "" || r.Target == "" || r.LaunchDate == "" {
		return entity.LaunchInput{}, &ValidationError{Message: MsgMissingProperty}
	}

	launchDate, err := utils.ParseLaunchDate(r.LaunchDate)
	if err != nil {
		return entity.LaunchInput{}, &ValidationError{Message: MsgInvalidDate}
	}

	return entity.LaunchInput{
		Mission:    r.Mission,
		Rocket:     r.Rocket,
		Target:     r.Target,
		LaunchDate: launchDate,
	}, nil
}

// ListLaunches handles GET /v1/launches
func (h *LaunchHandler) ListLaunches(w http.ResponseWriter, r *http.Request) {
	query, err := parseLaunchQuery(r)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, MsgInvalidQuery)
		return
	}

	launches, err := h.launches.ListLaunches(r.Context(), query)
	if err != nil {
		h.logger.Error("Failed to list launches", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, MsgInternal)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, launches)
}

// ScheduleLaunch handles POST /v1/launches
func (h *LaunchHandler) ScheduleLaunch(w http.ResponseWriter, r *http.Request) {
	var req launchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, MsgMissingProperty)
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	launch, err := h.launches.ScheduleLaunch(r.Context(), input)
	if errors.Is(err, usecase.ErrTargetNotFound) {
		writeError(w, h.logger, http.StatusBadRequest, MsgNoPlanet)
		return
	}
	if err != nil {
		h.logger.Error("Failed to schedule launch", "mission", input.Mission, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, MsgInternal)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, launch)
}

// AbortLaunch handles DELETE /v1/launches/{id}
func (h *LaunchHandler) AbortLaunch(w http.ResponseWriter, r *http.Request) {
	flightNumber, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, MsgInvalidID)
		return
	}

	exists, err := h.launches.ExistsLaunch(r.Context(), flightNumber)
	if err != nil {
		h.logger.Error("Failed to look up launch", "flightNumber", flightNumber, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, MsgInternal)
		return
	}
	if !exists {
		writeError(w, h.logger, http.StatusNotFound, MsgLaunchNotFound)
		return
	}

	aborted, err := h.launches.AbortLaunch(r.Context(), flightNumber)
	if err != nil {
		h.logger.Error("Failed to abort launch", "flightNumber", flightNumber, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, MsgInternal)
		return
	}
	if !aborted {
		writeError(w, h.logger, http.StatusBadRequest, MsgNotAborted)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, map[string]bool{"ok": true})
}

func parseLaunchQuery(r *http.Request) (entity.LaunchQuery, error) {
	var query entity.LaunchQuery

	if v := r.URL.Query().Get("skip"); v != "" {
		skip, err := strconv.ParseInt(v, 10, 64)
		if err != nil || skip < 0 {
			return query, &ValidationError{Message: MsgInvalidQuery}
		}
		query.Skip = skip
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil || limit < 0 {
			return query, &ValidationError{Message: MsgInvalidQuery}
		}
		query.Limit = limit
	}

	return query, nil
}
