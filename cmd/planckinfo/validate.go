package main

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	errNonPositiveTemperature = errors.New("temperature must be a finite value > 0 K")
	errNonPositiveWavelength  = errors.New("wavelength must be a finite value > 0 µm")
	errInvertedBand           = errors.New("minimum wavelength must be below maximum wavelength")
	errInvalidSteps           = errors.New("step count must be >= 1")
	errInvalidPoints          = errors.New("point count must be >= 1")
	errUnknownFormat          = errors.New("unknown output format")
)

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func validateTemperature(t float64) error {
	if !finitePositive(t) {
		return fmt.Errorf("%w: %v", errNonPositiveTemperature, t)
	}
	return nil
}

func validateWavelength(um float64) error {
	if !finitePositive(um) {
		return fmt.Errorf("%w: %v", errNonPositiveWavelength, um)
	}
	return nil
}

func validateBand(minUM, maxUM float64) error {
	if err := validateWavelength(minUM); err != nil {
		return err
	}
	if err := validateWavelength(maxUM); err != nil {
		return err
	}
	if minUM >= maxUM {
		return fmt.Errorf("%w: [%v, %v]", errInvertedBand, minUM, maxUM)
	}
	return nil
}

func validateFormat(format string, allowed ...string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	for _, a := range allowed {
		if f == a {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %s)", errUnknownFormat, format, strings.Join(allowed, ", "))
}
