package validator

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// TagRule produces a rule for field against the current values.
type TagRule func(field string, values Values[any]) Rule

// TagFunc compiles the parameters of a tag into a TagRule.
// It is called once, when the tag spec is parsed.
type TagFunc func(params []string) (TagRule, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]TagFunc{
		"required":      requiredTag,
		"email":         formatTag(ValidEmail),
		"url":           formatTag(ValidURL),
		"phone":         formatTag(ValidPhone),
		"numeric":       numericTag,
		"min":           boundTag(Min[float64]),
		"max":           boundTag(Max[float64]),
		"minlen":        lengthTag(MinLen),
		"maxlen":        lengthTag(MaxLen),
		"len":           lengthTag(Len),
		"in":            listTag(InList[string]),
		"not_in":        listTag(NotInList[string]),
		"same":          siblingTag(SameAs),
		"different":     siblingTag(DifferentFrom),
		"required_with": siblingTag(RequiredWith),
	}
)

// RegisterTag adds or replaces a named rule usable in tag specs.
func RegisterTag(name string, fn TagFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ParseTags compiles a declarative rule spec into a Schema.
// Rules are separated by semicolons, parameters follow a colon and are
// comma separated:
//
//	"required;email"
//	"required;min:18"
//	"in:basic,pro,enterprise"
//	"not_in:admin,root"
//	"same:password"
//
// Every rule is evaluated on validation; failures are collected, not short-circuited.
func ParseTags[V any](spec string) (Schema[V], error) {
	var compiled []TagRule

	registryMu.RLock()
	defer registryMu.RUnlock()

	for raw := range strings.SplitSeq(spec, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		name, paramStr, _ := strings.Cut(raw, ":")
		name = strings.TrimSpace(name)

		var params []string
		if paramStr = strings.TrimSpace(paramStr); paramStr != "" {
			for p := range strings.SplitSeq(paramStr, ",") {
				params = append(params, strings.TrimSpace(p))
			}
		}

		fn, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}

		rule, err := fn(params)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRuleParams, name, err)
		}
		compiled = append(compiled, rule)
	}

	return RuleFunc[V](func(field string, values Values[V]) []Rule {
		boxed := values.Boxed()
		rules := make([]Rule, 0, len(compiled))
		for _, rule := range compiled {
			rules = append(rules, rule(field, boxed))
		}
		return rules
	}), nil
}

// Tags is like ParseTags but panics on an invalid spec.
// Schemas are declared at startup, so a bad spec is a programming error.
func Tags[V any](spec string) Schema[V] {
	s, err := ParseTags[V](spec)
	if err != nil {
		panic(err)
	}
	return s
}

// skipEmpty makes rule pass for blank input; presence is the job of "required".
func skipEmpty(rule Rule, value string) Rule {
	if strings.TrimSpace(value) == "" {
		rule.Check = func() bool { return true }
	}
	return rule
}

func noParams(name string, params []string) error {
	if len(params) != 0 {
		return fmt.Errorf("%s takes no parameters", name)
	}
	return nil
}

func requiredTag(params []string) (TagRule, error) {
	if err := noParams("required", params); err != nil {
		return nil, err
	}
	return func(field string, values Values[any]) Rule {
		if values.Any(field) == nil {
			return Required(field, "")
		}
		return Required(field, values.String(field))
	}, nil
}

func formatTag(build func(field, value string) Rule) TagFunc {
	return func(params []string) (TagRule, error) {
		if len(params) != 0 {
			return nil, fmt.Errorf("format rules take no parameters")
		}
		return func(field string, values Values[any]) Rule {
			value := values.String(field)
			return skipEmpty(build(field, value), value)
		}, nil
	}
}

func numericTag(params []string) (TagRule, error) {
	if err := noParams("numeric", params); err != nil {
		return nil, err
	}
	return func(field string, values Values[any]) Rule {
		_, ok := values.Number(field)
		return skipEmpty(NumericValue(field, ok), values.String(field))
	}, nil
}

func boundTag(build func(field string, value, bound float64) Rule) TagFunc {
	return func(params []string) (TagRule, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("expected exactly one numeric parameter")
		}
		bound, err := strconv.ParseFloat(params[0], 64)
		if err != nil {
			return nil, err
		}
		return func(field string, values Values[any]) Rule {
			raw := values.String(field)
			n, ok := values.Number(field)
			if !ok {
				return skipEmpty(NumericValue(field, false), raw)
			}
			return build(field, n, bound)
		}, nil
	}
}

func lengthTag(build func(field, value string, n int) Rule) TagFunc {
	return func(params []string) (TagRule, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("expected exactly one integer parameter")
		}
		n, err := strconv.Atoi(params[0])
		if err != nil {
			return nil, err
		}
		return func(field string, values Values[any]) Rule {
			value := values.String(field)
			return skipEmpty(build(field, value, n), value)
		}, nil
	}
}

func listTag(build func(field, value string, list []string) Rule) TagFunc {
	return func(params []string) (TagRule, error) {
		if len(params) == 0 {
			return nil, fmt.Errorf("expected at least one value")
		}
		return func(field string, values Values[any]) Rule {
			value := values.String(field)
			return skipEmpty(build(field, value, params), value)
		}, nil
	}
}

func siblingTag(build func(field, value, otherField, otherValue string) Rule) TagFunc {
	return func(params []string) (TagRule, error) {
		if len(params) != 1 || params[0] == "" {
			return nil, fmt.Errorf("expected the name of the other field")
		}
		other := params[0]
		return func(field string, values Values[any]) Rule {
			return build(field, values.String(field), other, values.String(other))
		}, nil
	}
}
