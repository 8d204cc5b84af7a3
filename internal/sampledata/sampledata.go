package sampledata

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

//go:embed data.yaml
var embedded []byte

// Set is the fixed collection of players and tournaments shown to every user
type Set struct {
	Players     []model.Player     `yaml:"players"`
	Tournaments []model.Tournament `yaml:"tournaments"`
}

// Default decodes the built-in sample set
func Default() (*Set, error) {
	return Load(bytes.NewReader(embedded))
}

// LoadFile decodes a sample set from a YAML file
func LoadFile(path string) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Load(file)
}

// Load decodes and validates a sample set
func Load(r io.Reader) (*Set, error) {
	var set Set
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("decode sample data: %w", err)
	}
	if err := set.validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *Set) validate() error {
	playerIDs := make(map[model.PlayerID]struct{}, len(s.Players))
	for _, p := range s.Players {
		if p.ID == "" {
			return fmt.Errorf("player %q has no id", p.Nickname)
		}
		if _, dup := playerIDs[p.ID]; dup {
			return fmt.Errorf("duplicate player id %q", p.ID)
		}
		playerIDs[p.ID] = struct{}{}
	}

	tournamentIDs := make(map[model.TournamentID]struct{}, len(s.Tournaments))
	for _, t := range s.Tournaments {
		if t.ID == "" {
			return fmt.Errorf("tournament %q has no id", t.Name)
		}
		if _, dup := tournamentIDs[t.ID]; dup {
			return fmt.Errorf("duplicate tournament id %q", t.ID)
		}
		if !t.Status.Valid() {
			return fmt.Errorf("tournament %q has invalid status %q", t.ID, t.Status)
		}
		tournamentIDs[t.ID] = struct{}{}
	}
	return nil
}
