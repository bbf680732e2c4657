package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/beka-birhanu/wumpus-api/world"
	"gopkg.in/yaml.v3"
)

const (
	defaultWorldSide      = 4
	defaultPitProbability = 0.2
	defaultMaxAttempts    = 1000
)

var ErrInvalidWorldProfile = errors.New("invalid world profile")

// WorldProfile tunes world generation.
type WorldProfile struct {
	Side           int      `yaml:"side"`            // Default side length of generated worlds
	PitProbability *float64 `yaml:"pit_probability"` // Per-cell pit chance; zero is a valid value
	MaxAttempts    int      `yaml:"max_attempts"`    // Retry guard for random placements
}

// DefaultWorldProfile returns the reference 4x4 profile.
func DefaultWorldProfile() WorldProfile {
	p := defaultPitProbability
	return WorldProfile{
		Side:           defaultWorldSide,
		PitProbability: &p,
		MaxAttempts:    defaultMaxAttempts,
	}
}

// LoadWorldProfile reads a YAML profile from path. An empty path yields the
// default profile; fields missing from the file keep their default.
func LoadWorldProfile(path string) (WorldProfile, error) {
	profile := DefaultWorldProfile()
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("reading world profile: %w", err)
	}

	var loaded WorldProfile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return profile, fmt.Errorf("decoding world profile: %w", err)
	}

	if loaded.Side != 0 {
		profile.Side = loaded.Side
	}
	if loaded.PitProbability != nil {
		profile.PitProbability = loaded.PitProbability
	}
	if loaded.MaxAttempts != 0 {
		profile.MaxAttempts = loaded.MaxAttempts
	}

	return profile, profile.Validate()
}

// Validate checks the profile values are usable.
func (p WorldProfile) Validate() error {
	if !world.ValidSide(p.Side) {
		return fmt.Errorf("%w: side must be between %d and %d", ErrInvalidWorldProfile, world.MinSide, world.MaxSide)
	}
	if p.PitProbability == nil || *p.PitProbability < 0 || *p.PitProbability >= 1 {
		return fmt.Errorf("%w: pit_probability must be in [0, 1)", ErrInvalidWorldProfile)
	}
	if p.MaxAttempts < 0 {
		return fmt.Errorf("%w: max_attempts must not be negative", ErrInvalidWorldProfile)
	}
	return nil
}
