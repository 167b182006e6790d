package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/1is1/dota-stat-calculator/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("hero_id", "is required")
	ve.AddFieldError("metric", "is unknown")

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "hero_id: is required")
	s.Assert().Contains(ve.Error(), "metric: is unknown")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("hero_id", "is required").
		Fieldf("level", "must be between %d and %d", 1, 30).
		RequiredField("metric").
		InvalidField("step", "must be positive")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["level"][0], "must be between 1 and 30")
	s.Assert().Contains(validationErrors["step"][0], "must be positive")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "axe", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  axe  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	testCases := []struct {
		name      string
		value     int
		shouldErr bool
	}{
		{"lower bound", 1, false},
		{"upper bound", 30, false},
		{"inside", 17, false},
		{"below", 0, true},
		{"above", 31, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("level", tc.value, 1, 30, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestComplexValidation() {
	type compareInput struct {
		HeroIDs []string
		Metric  string
		Level   int
	}

	input := compareInput{
		HeroIDs: nil,
		Metric:  "",
		Level:   42,
	}

	vb := errors.NewValidationBuilder()
	if len(input.HeroIDs) == 0 {
		vb.RequiredField("hero_ids")
	}
	errors.ValidateRequired("metric", input.Metric, vb)
	errors.ValidateRange("level", input.Level, 1, 30, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "hero_ids")
	s.Assert().Contains(validationErrors, "metric")
	s.Assert().Contains(validationErrors, "level")
}
