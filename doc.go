// Package validity is a small, composable validation toolkit for Go.
//
// The root package holds no code; functionality lives in focused packages under pkg/:
//
//   - pkg/validator: the Validator[T] interface, action and predicate leaves, fail-fast and
//     collecting composites, field attribution, error codes and ready-made rules.
//   - pkg/async: lazily started deferred work and futures, used to run a validation as an
//     asynchronous action.
//   - pkg/errcode: domain-classified error codes and the wrapper that attaches them to errors.
//   - pkg/messages: YAML/JSON message catalogs that render validation failures in the
//     caller's language.
//   - pkg/logger: slog factory, environment presets and attribute helpers.
//   - pkg/config: typed configuration from environment variables and .env files.
//
// Basic usage:
//
//	type Signup struct {
//		Email string
//		Age   int
//	}
//
//	var signupValidator = validator.Collect(
//		validator.FieldOf("email", func(s Signup) string { return s.Email },
//			validator.All(validator.Required(), validator.Email())),
//		validator.FieldOf("age", func(s Signup) int { return s.Age }, validator.Min(18)),
//	)
//
//	if err := signupValidator.Validate(input); err != nil {
//		lang := catalog.Match(r.Header.Get("Accept-Language"))
//		respond(w, http.StatusUnprocessableEntity, catalog.Localize(lang, err))
//	}
package validity
