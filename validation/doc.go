// Package validation checks configuration structs and call arguments.
//
// Struct tags are evaluated with go-playground/validator:
//
//	type Config struct {
//	    Host string `mapstructure:"host" validate:"required,hostname"`
//	}
//	err := validation.Validate(cfg)
//
// Arguments are checked programmatically:
//
//	err := validation.New().Required("bitlink", id).Err()
//
// Both forms return *errors.AppError.
package validation
