package candidatevalidator

import (
	"fmt"
	"regexp"
	"strings"
	candidateapimodels "talent-tracker-backend/models/api/candidate"
	"unicode/utf8"
)

const (
	maxNameLength           = 50
	maxAddressLength        = 200
	maxEducationLength      = 500
	maxWorkExperienceLength = 1000
)

var (
	emailRegex       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex       = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	phoneNoiseRemove = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

type ValidationResult struct {
	IsValid bool
	Errors  []string
}

type Validator interface {
	Validate(data candidateapimodels.CandidateData) ValidationResult
}

func NewInstance() Validator {
	return impl{}
}

type impl struct{}

func (i impl) Validate(data candidateapimodels.CandidateData) ValidationResult {
	return Validate(data)
}

// Validate проверяет все правила и возвращает полный список нарушений
func Validate(data candidateapimodels.CandidateData) ValidationResult {
	errs := make([]string, 0)

	if strings.TrimSpace(data.FirstName) == "" {
		errs = append(errs, "First name is required")
	}
	if strings.TrimSpace(data.LastName) == "" {
		errs = append(errs, "Last name is required")
	}

	if strings.TrimSpace(data.Email) == "" {
		errs = append(errs, "Email is required")
	} else if !emailRegex.MatchString(data.Email) {
		errs = append(errs, "Email format is invalid")
	}

	if strings.TrimSpace(data.Phone) == "" {
		errs = append(errs, "Phone number is required")
	} else if !phoneRegex.MatchString(phoneNoiseRemove.Replace(data.Phone)) {
		errs = append(errs, "Phone number format is invalid")
	}

	errs = appendTooLong(errs, "First name", data.FirstName, maxNameLength)
	errs = appendTooLong(errs, "Last name", data.LastName, maxNameLength)
	errs = appendTooLong(errs, "Address", data.Address, maxAddressLength)
	errs = appendTooLong(errs, "Education", data.Education, maxEducationLength)
	errs = appendTooLong(errs, "Work experience", data.WorkExperience, maxWorkExperienceLength)

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

func appendTooLong(errs []string, field, value string, limit int) []string {
	if utf8.RuneCountInString(value) > limit {
		return append(errs, fmt.Sprintf("%s must be less than %d characters", field, limit))
	}
	return errs
}
