package validator

import (
	"fmt"
	"regexp"
)

const (
	minEmailLength    = 3
	maxEmailLength    = 255
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 8
	maxPasswordLength = 128
	minAthleteAge     = 10

	errEmailEmptyFmt        = "email cannot be empty"
	errEmailLengthFmt       = "email must be between %d and %d characters"
	errEmailInvalidFmt      = "invalid email format"
	errUsernameEmptyFmt     = "username cannot be empty"
	errUsernameLengthFmt    = "username must be between %d and %d characters"
	errUsernameCharsFmt     = "username may only contain letters, digits, dots, dashes and underscores"
	errPasswordMinLengthFmt = "password must be at least %d characters"
	errPasswordMaxLengthFmt = "password must not exceed %d characters"
	errAthleteNameEmptyFmt  = "athlete name cannot be empty"
	errAthleteGenderFmt     = "gender must be M or F"
	errAthleteAgeFmt        = "athlete age must be at least %d"
	errAthletePerfFmt       = "performance cannot be negative"
	errAthletePositiveFmt   = "%s must be positive"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

func Email(email string) error {
	if email == "" {
		return fmt.Errorf(errEmailEmptyFmt)
	}

	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return fmt.Errorf(errEmailLengthFmt, minEmailLength, maxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf(errEmailInvalidFmt)
	}

	return nil
}

func Username(username string) error {
	if username == "" {
		return fmt.Errorf(errUsernameEmptyFmt)
	}

	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return fmt.Errorf(errUsernameLengthFmt, minUsernameLength, maxUsernameLength)
	}

	if !usernameRegex.MatchString(username) {
		return fmt.Errorf(errUsernameCharsFmt)
	}

	return nil
}

func Password(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf(errPasswordMinLengthFmt, minPasswordLength)
	}

	if len(password) > maxPasswordLength {
		return fmt.Errorf(errPasswordMaxLengthFmt, maxPasswordLength)
	}

	return nil
}

func AthleteName(name string) error {
	if name == "" {
		return fmt.Errorf(errAthleteNameEmptyFmt)
	}
	return nil
}

func AthleteGender(gender string) error {
	if gender != "M" && gender != "F" {
		return fmt.Errorf(errAthleteGenderFmt)
	}
	return nil
}

func AthleteAge(age int) error {
	if age < minAthleteAge {
		return fmt.Errorf(errAthleteAgeFmt, minAthleteAge)
	}
	return nil
}

func AthletePerformance(performance int) error {
	if performance < 0 {
		return fmt.Errorf(errAthletePerfFmt)
	}
	return nil
}

func PositiveMeasurement(field string, value float64) error {
	if value <= 0 {
		return fmt.Errorf(errAthletePositiveFmt, field)
	}
	return nil
}
