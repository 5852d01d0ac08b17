package schemarules

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type matchRule struct {
	validation.MatchRule
	re *regexp.Regexp
}

// Match returns a validation rule that checks if a string matches the given
// regular expression. The expression is documented as the schema pattern.
func Match(re *regexp.Regexp) Rule {
	return &matchRule{
		validation.Match(re),
		re,
	}
}

func (r *matchRule) Pattern() string {
	return r.re.String()
}
