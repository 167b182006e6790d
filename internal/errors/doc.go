// Package errors provides structured error handling for dota-stat-calculator.
//
// Errors carry a code, a message, optional metadata, and an optional cause:
//
//	err := errors.NotFoundf("hero %q not found", heroID)
//	err := errors.InvalidArgument("level must be between 1 and 30").
//	    WithMeta("level", level)
//
// Wrapping preserves the original code and metadata:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get hero")
//	}
//
// Handlers translate codes to HTTP statuses via Code.HTTPStatus, so a
// repository NotFound surfaces as a 404 without any handler-side mapping.
//
// Multi-field input validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("hero_id", input.HeroID, vb)
//	errors.ValidateRange("level", input.Level, 1, 30, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
