package heroapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"heroes/internal/domain"
)

// DefaultHeroes is the data set the API starts with when no seed file is given.
func DefaultHeroes() []domain.Hero {
	return []domain.Hero{
		{ID: 11, Name: "Dr. Nice"},
		{ID: 12, Name: "Narco"},
		{ID: 13, Name: "Bombasto"},
		{ID: 14, Name: "Celeritas"},
		{ID: 15, Name: "Magneta"},
		{ID: 16, Name: "RubberMan"},
		{ID: 17, Name: "Dynama"},
		{ID: 18, Name: "Dr. IQ"},
		{ID: 19, Name: "Magma"},
		{ID: 20, Name: "Tornado"},
	}
}

// LoadSeed reads a JSON array of heroes from path. An empty path or a missing
// file yields DefaultHeroes.
func LoadSeed(path string) ([]domain.Hero, error) {
	if path == "" {
		return DefaultHeroes(), nil
	}
	var heroes []domain.Hero
	found, err := readJSON(path, &heroes)
	if err != nil {
		return nil, fmt.Errorf("load seed %s: %w", path, err)
	}
	if !found {
		return DefaultHeroes(), nil
	}
	for _, h := range heroes {
		if h.ID == 0 {
			return nil, fmt.Errorf("load seed %s: hero %q has no id", path, h.Name)
		}
	}
	return heroes, nil
}

// readJSON reads path into out; a missing file is reported as found=false.
func readJSON(path string, out any) (found bool, err error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, out)
}
