// Package messages renders validation failures as localized text.
//
// A Catalog maps languages to nested message templates. Templates use %{name} placeholders
// that are filled from a Failure's Params, plus %{field} with the path of the field the
// failure was reported under:
//
//	en:
//	  string:
//	    min_len: "%{field} must be at least %{min} characters"
//
// Catalogs are built in memory with New or read from YAML and JSON files with LoadFile.
// LoadFromEnv reads VALIDATION_MESSAGES_PATH and VALIDATION_DEFAULT_LANG.
//
//	cat, err := messages.LoadFile(ctx, "messages.yaml", messages.WithDefaultLanguage("en"))
//	if err != nil {
//	    return err
//	}
//	lang := cat.Match(r.Header.Get("Accept-Language"))
//	problems := cat.Localize(lang, userValidator.Validate(u))
//
// Failures without a translation keep their own message, so a partial catalog is safe.
package messages
