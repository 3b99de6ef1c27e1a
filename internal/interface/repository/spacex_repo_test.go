package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"launch-control-service/internal/domain/entity"
	"launch-control-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const launchPage = `{
	"docs": [
		{
			"flight_number": 1,
			"name": "FalconSat",
			"rocket": {"name": "Falcon 1"},
			"payloads": [{"customers": ["DARPA"]}],
			"date_local": "2006-03-25T10:30:00+12:00",
			"upcoming": false,
			"success": false
		},
		{
			"flight_number": 187,
			"name": "Crew-5",
			"rocket": {"name": "Falcon 9"},
			"payloads": [{"customers": ["NASA (CCP)"]}],
			"date_local": "2022-09-29T12:00:00-04:00",
			"upcoming": true,
			"success": null
		}
	],
	"totalDocs": 2,
	"pagingCounter": 1
}`

func TestSpaceXRepository_FetchLaunches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v4/launches/query", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body launchQueryRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Empty(t, body.Query)
		assert.False(t, body.Options.Pagination)
		assert.Equal(t, []populateOption{
			{Path: "rocket", Select: map[string]int{"name": 1}},
			{Path: "payloads", Select: map[string]int{"customers": 1}},
		}, body.Options.Populate)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(launchPage))
	}))
	defer server.Close()

	provider := NewSpaceXRepository(server.Client(), server.URL+"/", logger.NewNopLogger())

	launches, err := provider.FetchLaunches(context.Background())
	require.NoError(t, err)
	require.Len(t, launches, 2)

	assert.Equal(t, 1, launches[0].FlightNumber)
	assert.Equal(t, "Falcon 1", launches[0].Rocket.Name)
	assert.Equal(t, []string{"DARPA"}, launches[0].Customers())
	require.NotNil(t, launches[0].Success)
	assert.False(t, *launches[0].Success)

	assert.True(t, launches[1].Upcoming)
	assert.Nil(t, launches[1].Success)
	assert.True(t, launches[1].DateLocal.Equal(time.Date(2022, time.September, 29, 16, 0, 0, 0, time.UTC)))
}

func TestSpaceXRepository_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewSpaceXRepository(server.Client(), server.URL, logger.NewNopLogger())

	launches, err := provider.FetchLaunches(context.Background())
	assert.Nil(t, launches)
	assert.ErrorIs(t, err, entity.ErrProviderUnavailable)
	assert.Contains(t, err.Error(), "429")
}

func TestSpaceXRepository_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	provider := NewSpaceXRepository(&http.Client{Timeout: time.Second}, url, logger.NewNopLogger())

	_, err := provider.FetchLaunches(context.Background())
	assert.ErrorIs(t, err, entity.ErrProviderUnavailable)
}

func TestSpaceXRepository_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"docs": [{"flight_number": "one"}]}`))
	}))
	defer server.Close()

	provider := NewSpaceXRepository(server.Client(), server.URL, logger.NewNopLogger())

	_, err := provider.FetchLaunches(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrProviderUnavailable)
}
