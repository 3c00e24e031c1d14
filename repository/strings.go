package repository

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case mappings take an optional BCP 47 language tag ("tr", "nl", …);
// the default is language-neutral.
var stringMethods = table{
	"length": func(s any, _ ...any) (any, error) {
		str, _ := text(s)
		return utf8.RuneCountInString(str), nil
	},
	"lower": func(s any, args ...any) (any, error) {
		return mapCase("lower", s, args, cases.Lower)
	},
	"upper": func(s any, args ...any) (any, error) {
		return mapCase("upper", s, args, cases.Upper)
	},
	"title": func(s any, args ...any) (any, error) {
		return mapCase("title", s, args, cases.Title)
	},
	"words": func(s any, _ ...any) (any, error) {
		str, _ := text(s)
		return strings.Fields(str), nil
	},
	"explode": func(s any, args ...any) (any, error) {
		sep, err := stringArg("explode", args, 0)
		if err != nil {
			return nil, err
		}
		limit, err := optInt("explode", args, 1, -1)
		if err != nil {
			return nil, err
		}
		str, _ := text(s)
		return strings.SplitN(str, sep, limit), nil
	},
}

func mapCase(method string, s any, args []any, caser func(language.Tag, ...cases.Option) cases.Caser) (any, error) {
	tag := language.Und
	name, err := optString(method, args, 0, "")
	if err != nil {
		return nil, err
	}
	if name != "" {
		if tag, err = language.Parse(name); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArgument, method, err)
		}
	}
	str, _ := text(s)
	return caser(tag).String(str), nil
}
