package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"launch-control-service/internal/domain/entity"
	"launch-control-service/internal/domain/repository"
	"launch-control-service/pkg/logger"
)

// SpaceXRepository fetches launch history from the SpaceX API
type SpaceXRepository struct {
	client  *http.Client
	baseURL string
	logger  logger.Logger
}

// NewSpaceXRepository creates a new SpaceX launch provider
func NewSpaceXRepository(client *http.Client, baseURL string, logger logger.Logger) repository.LaunchProvider {
	return &SpaceXRepository{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

type populateOption struct {
	Path   string         `json:"path"`
	Select map[string]int `json:"select"`
}

type launchQueryOptions struct {
	Pagination bool             `json:"pagination"`
	Populate   []populateOption `json:"populate"`
}

type launchQueryRequest struct {
	Query   map[string]interface{} `json:"query"`
	Options launchQueryOptions     `json:"options"`
}

// launchHistoryQuery asks for every launch with rocket names and payload customers populated
var launchHistoryQuery = launchQueryRequest{
	Query: map[string]interface{}{},
	Options: launchQueryOptions{
		Pagination: false,
		Populate: []populateOption{
			{Path: "rocket", Select: map[string]int{"name": 1}},
			{Path: "payloads", Select: map[string]int{"customers": 1}},
		},
	},
}

// FetchLaunches downloads the full launch history in a single request
func (r *SpaceXRepository) FetchLaunches(ctx context.Context) ([]*entity.ProviderLaunch, error) {
	jsonData, err := json.Marshal(launchHistoryQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal launch query: %w", err)
	}

	url := fmt.Sprintf("%s/v4/launches/query", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	r.logger.Info("Downloading launch data", "url", url)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: status %d: %s", entity.ErrProviderUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var page entity.ProviderLaunchPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode launch data: %w", err)
	}

	r.logger.Info("Launch data downloaded", "count", len(page.Docs), "totalDocs", page.TotalDocs)

	return page.Docs, nil
}
