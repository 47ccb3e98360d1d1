package core

import (
	"errors"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MinIdeaLength is the shortest idea, in characters, worth planning.
const MinIdeaLength = 10

// ValidateIdea checks a generation request before any LLM call.
func ValidateIdea(req PlanRequest) error {
	idea := strings.TrimSpace(req.Idea)

	if err := validation.Validate(idea, validation.Required.Error("please describe your product idea")); err != nil {
		return &ValidationError{Field: "idea", Message: err.Error()}
	}
	if err := validation.Validate(idea,
		validation.RuneLength(MinIdeaLength, 0).Error("idea is too short, please add more detail"),
	); err != nil {
		return &ValidationError{Field: "idea", Message: err.Error()}
	}

	if err := validation.Validate(req.ReferenceURL, validation.By(wellFormedURL)); err != nil {
		return &ValidationError{Field: "reference_url", Message: err.Error()}
	}
	return nil
}

// wellFormedURL accepts empty values; anything else needs a scheme and a host.
func wellFormedURL(value interface{}) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("must be a URL with scheme and host")
	}
	return nil
}
