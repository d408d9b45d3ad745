package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/hotelres/internal/models"
)

// ParseGuest parses "name:age:height". The name may itself contain colons;
// age and height are taken from the last two fields.
func ParseGuest(s string) (models.Guest, error) {
	heightAt := strings.LastIndex(s, ":")
	if heightAt < 0 {
		return models.Guest{}, fmt.Errorf("guest %q: expected name:age:height", s)
	}
	ageAt := strings.LastIndex(s[:heightAt], ":")
	if ageAt < 0 {
		return models.Guest{}, fmt.Errorf("guest %q: expected name:age:height", s)
	}

	name := strings.TrimSpace(s[:ageAt])
	if name == "" {
		return models.Guest{}, fmt.Errorf("guest %q: name must not be empty", s)
	}

	age, err := strconv.ParseUint(strings.TrimSpace(s[ageAt+1:heightAt]), 10, 8)
	if err != nil {
		return models.Guest{}, fmt.Errorf("guest %q: age must be 0-255: %w", s, err)
	}

	height, err := strconv.Atoi(strings.TrimSpace(s[heightAt+1:]))
	if err != nil {
		return models.Guest{}, fmt.Errorf("guest %q: height must be an integer: %w", s, err)
	}

	return models.Guest{Name: name, Age: uint8(age), Height: height}, nil
}

// ParseGuests parses every --guest value in order.
func ParseGuests(values []string) ([]models.Guest, error) {
	guests := make([]models.Guest, 0, len(values))
	for _, v := range values {
		g, err := ParseGuest(v)
		if err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, nil
}
