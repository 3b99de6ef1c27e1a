// internal/domain/entity/provider_launch.go
package entity

import (
	"errors"
	"time"
)

// ErrProviderUnavailable is returned when the launch provider cannot serve a request
var ErrProviderUnavailable = errors.New("launch provider unavailable")

// ProviderLaunchPage is the response of the provider's launch query endpoint
type ProviderLaunchPage struct {
	Docs      []*ProviderLaunch `json:"docs"`
	TotalDocs int               `json:"totalDocs"`
}

// ProviderLaunch is a launch document as returned by the provider
type ProviderLaunch struct {
	FlightNumber int               `json:"flight_number"`
	Name         string            `json:"name"`
	Rocket       ProviderRocket    `json:"rocket"`
	Payloads     []ProviderPayload `json:"payloads"`
	DateLocal    time.Time         `json:"date_local"`
	Upcoming     bool              `json:"upcoming"`
	Success      *bool             `json:"success"`
}

// ProviderRocket is the populated rocket of a provider launch
type ProviderRocket struct {
	Name string `json:"name"`
}

// ProviderPayload is a populated payload of a provider launch
type ProviderPayload struct {
	Customers []string `json:"customers"`
}

// Customers flattens the payload customer lists in payload order, keeping duplicates
func (l *ProviderLaunch) Customers() []string {
	customers := make([]string, 0)
	for _, payload := range l.Payloads {
		customers = append(customers, payload.Customers...)
	}
	return customers
}

// ToLaunch maps the provider document onto a Launch record
func (l *ProviderLaunch) ToLaunch() *Launch {
	return &Launch{
		FlightNumber: l.FlightNumber,
		Mission:      l.Name,
		Rocket:       l.Rocket.Name,
		LaunchDate:   l.DateLocal,
		Customers:    l.Customers(),
		Upcoming:     l.Upcoming,
		Success:      l.Success,
	}
}
