// Package scenario loads scripted reservation sessions from YAML and replays
// them against a ReservationService.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	corereservation "github.com/example/hotelres/internal/core/reservation"
	"github.com/example/hotelres/internal/models"
)

//go:embed demo.yaml
var demoYAML string

// Scenario is a named list of steps over a cast of guests.
type Scenario struct {
	Name   string                  `yaml:"name"`
	Guests map[string]models.Guest `yaml:"guests"`
	Steps  []Step                  `yaml:"steps"`
}

// Step performs exactly one of its actions.
type Step struct {
	Name   string       `yaml:"name"`
	Add    *AddStep     `yaml:"add"`
	Cancel *CancelStep  `yaml:"cancel"`
	List   bool         `yaml:"list"`
	Expect *Expectation `yaml:"expect"`
}

// AddStep books the referenced guests.
type AddStep struct {
	Guests    []string `yaml:"guests"`
	Days      int      `yaml:"days"`
	Breakfast bool     `yaml:"breakfast"`
	// As labels the booked reservation for later steps.
	As string `yaml:"as"`
	// Error is the expected error kind, e.g. "guest_collision".
	Error string `yaml:"error"`
}

// CancelStep cancels a labelled reservation or a literal ID.
type CancelStep struct {
	Ref   string `yaml:"ref"`
	ID    string `yaml:"id"`
	Error string `yaml:"error"`
}

// Expectation asserts on registry state. Reservation fields apply to Ref.
type Expectation struct {
	Count      *int     `yaml:"count"`
	Ref        string   `yaml:"ref"`
	FirstGuest string   `yaml:"first_guest"`
	Days       *int     `yaml:"days"`
	Breakfast  *bool    `yaml:"breakfast"`
	Price      string   `yaml:"price"`
	SamePrice  []string `yaml:"same_price"`
}

// Load decodes and validates a scenario. Unknown keys are rejected.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// LoadFile reads a scenario from path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Demo returns the built-in scenario.
func Demo() (*Scenario, error) {
	return Load(strings.NewReader(demoYAML))
}

// Validate checks step shape and guest references before anything runs.
func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New("scenario has no steps")
	}

	labels := map[string]bool{}
	for i, step := range s.Steps {
		where := fmt.Sprintf("step %d", i+1)
		if step.Name != "" {
			where = fmt.Sprintf("step %d (%s)", i+1, step.Name)
		}

		actions := 0
		for _, set := range []bool{step.Add != nil, step.Cancel != nil, step.List, step.Expect != nil} {
			if set {
				actions++
			}
		}
		if actions != 1 {
			return fmt.Errorf("%s: exactly one of add, cancel, list, expect is required", where)
		}

		switch {
		case step.Add != nil:
			for _, key := range step.Add.Guests {
				if _, ok := s.Guests[key]; !ok {
					return fmt.Errorf("%s: unknown guest %q", where, key)
				}
			}
			if err := validKind(step.Add.Error); err != nil {
				return fmt.Errorf("%s: %w", where, err)
			}
			if step.Add.As != "" {
				labels[step.Add.As] = true
			}
		case step.Cancel != nil:
			if (step.Cancel.Ref == "") == (step.Cancel.ID == "") {
				return fmt.Errorf("%s: cancel needs exactly one of ref or id", where)
			}
			if step.Cancel.Ref != "" && !labels[step.Cancel.Ref] {
				return fmt.Errorf("%s: unknown reservation label %q", where, step.Cancel.Ref)
			}
			if err := validKind(step.Cancel.Error); err != nil {
				return fmt.Errorf("%s: %w", where, err)
			}
		case step.Expect != nil:
			refs := append([]string{}, step.Expect.SamePrice...)
			if step.Expect.Ref != "" {
				refs = append(refs, step.Expect.Ref)
			}
			for _, ref := range refs {
				if !labels[ref] {
					return fmt.Errorf("%s: unknown reservation label %q", where, ref)
				}
			}
		}
	}

	return nil
}

func validKind(name string) error {
	if name == "" {
		return nil
	}
	for k := corereservation.KindIdentifierCollision; k <= corereservation.KindInvalidRequest; k++ {
		if k.String() == name {
			return nil
		}
	}
	return fmt.Errorf("unknown error kind %q", name)
}
