package usecase

import (
	"context"
	"errors"
	"sync"

	"launch-control-service/internal/domain/entity"
)

var errStoreDown = errors.New("store down")

// memLaunchRepo keeps launches in insertion order and mirrors Mongo's
// modified-count semantics for partial updates.
type memLaunchRepo struct {
	mu        sync.Mutex
	launches  []*entity.Launch
	upserts   int
	failOn    int // fail the upsert of this flight number
	failFinds bool
}

func newMemLaunchRepo(launches ...*entity.Launch) *memLaunchRepo {
	r := &memLaunchRepo{}
	for _, l := range launches {
		r.launches = append(r.launches, cloneLaunch(l))
	}
	return r
}

func cloneLaunch(l *entity.Launch) *entity.Launch {
	c := *l
	c.Customers = append([]string(nil), l.Customers...)
	if l.Success != nil {
		c.Success = entity.Bool(*l.Success)
	}
	return &c
}

func (r *memLaunchRepo) FindByFlightNumber(ctx context.Context, flightNumber int) (*entity.Launch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFinds {
		return nil, errStoreDown
	}
	for _, l := range r.launches {
		if l.FlightNumber == flightNumber {
			return cloneLaunch(l), nil
		}
	}
	return nil, nil
}

func (r *memLaunchRepo) FindAll(ctx context.Context, query entity.LaunchQuery) ([]*entity.Launch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFinds {
		return nil, errStoreDown
	}
	out := make([]*entity.Launch, 0, len(r.launches))
	for i, l := range r.launches {
		if int64(i) < query.Skip {
			continue
		}
		if query.Limit > 0 && int64(len(out)) >= query.Limit {
			break
		}
		out = append(out, cloneLaunch(l))
	}
	return out, nil
}

func (r *memLaunchRepo) FindLatestByFlightNumber(ctx context.Context) (*entity.Launch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFinds {
		return nil, errStoreDown
	}
	var latest *entity.Launch
	for _, l := range r.launches {
		if latest == nil || l.FlightNumber > latest.FlightNumber {
			latest = l
		}
	}
	if latest == nil {
		return nil, nil
	}
	return cloneLaunch(latest), nil
}

func (r *memLaunchRepo) UpsertByFlightNumber(ctx context.Context, launch *entity.Launch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn != 0 && launch.FlightNumber == r.failOn {
		return errStoreDown
	}
	r.upserts++
	for i, l := range r.launches {
		if l.FlightNumber == launch.FlightNumber {
			r.launches[i] = cloneLaunch(launch)
			return nil
		}
	}
	r.launches = append(r.launches, cloneLaunch(launch))
	return nil
}

func (r *memLaunchRepo) UpdateByFlightNumber(ctx context.Context, flightNumber int, patch entity.LaunchPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.launches {
		if l.FlightNumber != flightNumber {
			continue
		}
		modified := false
		if patch.Upcoming != nil && l.Upcoming != *patch.Upcoming {
			l.Upcoming = *patch.Upcoming
			modified = true
		}
		if patch.Success != nil && (l.Success == nil || *l.Success != *patch.Success) {
			l.Success = entity.Bool(*patch.Success)
			modified = true
		}
		return modified, nil
	}
	return false, nil
}

func (r *memLaunchRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.launches)
}

func (r *memLaunchRepo) snapshot() []*entity.Launch {
	all, _ := r.FindAll(context.Background(), entity.LaunchQuery{})
	return all
}

type memPlanetRepo struct {
	names []string
	err   error
}

func (r *memPlanetRepo) FindByName(ctx context.Context, name string) (*entity.Planet, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i, n := range r.names {
		if n == name {
			return &entity.Planet{ID: uint(i + 1), KeplerName: n}, nil
		}
	}
	return nil, nil
}

func (r *memPlanetRepo) FindAll(ctx context.Context) ([]*entity.Planet, error) {
	planets := make([]*entity.Planet, 0, len(r.names))
	for i, n := range r.names {
		planets = append(planets, &entity.Planet{ID: uint(i + 1), KeplerName: n})
	}
	return planets, nil
}

type stubProvider struct {
	launches []*entity.ProviderLaunch
	err      error
	calls    int
}

func (p *stubProvider) FetchLaunches(ctx context.Context) ([]*entity.ProviderLaunch, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.launches, nil
}
