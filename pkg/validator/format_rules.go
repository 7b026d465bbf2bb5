package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Email validates an address with the RFC 5322 parser, then rejects forms that are legal
// but unusable on the web: display names, missing local part, dot-less or malformed domains.
func Email() Validator[string] {
	return Rule(Failure{
		Message: "must be a valid email address",
		Key:     "validation.email",
	}, isEmail)
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL validates an absolute URL with a scheme and a host. If schemes are given, the URL's
// scheme must be one of them.
func URL(schemes ...string) Validator[string] {
	msg := "must be a valid URL"
	if len(schemes) > 0 {
		msg = fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", "))
	}
	allowed := slices.Clone(schemes)
	return Rule(Failure{
		Message: msg,
		Key:     "validation.url",
		Params:  map[string]any{"schemes": allowed},
	}, func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}
		u, err := url.ParseRequestURI(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return false
		}
		return len(allowed) == 0 || slices.Contains(allowed, u.Scheme)
	})
}

// LanguageTag validates a BCP 47 language tag such as "en", "pt-BR" or "zh-Hant-TW".
func LanguageTag() Validator[string] {
	return Rule(Failure{
		Message: "must be a valid language tag",
		Key:     "validation.language_tag",
	}, func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}
		_, err := language.Parse(value)
		return err == nil
	})
}
