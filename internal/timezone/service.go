package timezone

import (
	"errors"
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/ringsaturn/tzf"
)

var ErrUnknownTimezone = errors.New("could not determine timezone")

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
	// LocalTime converts t to the wall clock of the zone covering the coordinates
	LocalTime(latitude, longitude float64, t time.Time) (time.Time, string, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service
// Uses singleton pattern because tzf.Finder loads timezone data into memory (~50MB)
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates
// Returns timezone names like "Asia/Jakarta", "Europe/London", etc.
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("%w for coordinates lat=%f, lon=%f", ErrUnknownTimezone, latitude, longitude)
	}

	return name, nil
}

func (s *service) LocalTime(latitude, longitude float64, t time.Time) (time.Time, string, error) {
	name, err := s.GetTimezone(latitude, longitude)
	if err != nil {
		return time.Time{}, "", err
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("failed to load location %s: %w", name, err)
	}

	return t.In(loc), name, nil
}
