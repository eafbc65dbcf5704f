package catalog

import (
	"sort"

	"github.com/Drolfothesgnir/bbcode/bbcode"
)

// validators are the named checks a Record can refer to.
var validators = map[string]bbcode.Validator{
	"url":     bbcode.ValidateURL,
	"youtube": bbcode.ValidateYoutube,
	"size":    bbcode.ValidateSize,
	"color":   bbcode.ValidateColor,
}

// LookupValidator returns the validator registered under the name.
func LookupValidator(name string) (bbcode.Validator, bool) {
	v, ok := validators[name]
	return v, ok
}

// ValidatorNames returns the sorted names of all the registered validators.
func ValidatorNames() []string {
	names := make([]string, 0, len(validators))
	for name := range validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
