package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/deppfellow/filmorate/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Custom tags registered on every Validator.
const (
	tagNotBlank     = "notblank"
	tagNoWhitespace = "nowhitespace"
	tagCinema       = "cinema"
	tagNotFuture    = "notfuture"
)

// Clock returns the current time. Birthday rules read "today" from it.
type Clock func() time.Time

// Rule is one check applied to a candidate record.
//
// Value extracts the checked value from the candidate and Tag is the
// validator tag string applied to it. Kind, Field and Message describe
// the error reported when the check fails.
type Rule[T any] struct {
	Field   string
	Tag     string
	Kind    model.ErrorKind
	Message string
	Value   func(T) any
}

// RuleSet is an ordered list of rules for one resource.
type RuleSet[T any] struct {
	resource string
	engine   *validator.Validate
	rules    []Rule[T]
}

// Validate applies the rules in order and returns the first violation.
func (s RuleSet[T]) Validate(candidate T) error {
	for _, rule := range s.rules {
		err := s.engine.Var(rule.Value(candidate), rule.Tag)
		if err == nil {
			continue
		}
		if _, ok := err.(validator.ValidationErrors); ok {
			return model.NewError(s.resource, rule.Kind, rule.Field, rule.Message)
		}
		return fmt.Errorf("evaluating %s rule %q: %w", s.resource, rule.Tag, err)
	}
	return nil
}

// Validator holds the film and user rule sets.
type Validator struct {
	engine *validator.Validate
	now    Clock
	films  RuleSet[model.Film]
	users  RuleSet[model.User]
}

// New builds a Validator. A nil clock means time.Now.
func New(clock Clock) *Validator {
	if clock == nil {
		clock = time.Now
	}

	v := &Validator{
		engine: validator.New(validator.WithRequiredStructEnabled()),
		now:    clock,
	}

	// Registration only fails on an empty tag or nil func.
	mustRegister(v.engine, tagNotBlank, validators.NotBlank)
	mustRegister(v.engine, tagNoWhitespace, noWhitespace)
	mustRegister(v.engine, tagCinema, notBeforeCinema)
	mustRegister(v.engine, tagNotFuture, v.notFuture)

	v.films = RuleSet[model.Film]{resource: model.ResourceFilm, engine: v.engine, rules: filmRules()}
	v.users = RuleSet[model.User]{resource: model.ResourceUser, engine: v.engine, rules: userRules()}

	return v
}

// Film validates a candidate film.
func (v *Validator) Film(f model.Film) error {
	return v.films.Validate(f)
}

// User validates a candidate user. It does not apply name defaulting.
func (v *Validator) User(u model.User) error {
	return v.users.Validate(u)
}

func mustRegister(engine *validator.Validate, tag string, fn validator.Func) {
	if err := engine.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

func noWhitespace(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsSpace) < 0
}

func notBeforeCinema(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !model.DateOf(t).Before(model.CinemaBirthday())
}

func (v *Validator) notFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	today := model.DateOf(v.now().UTC())
	return !model.DateOf(t).After(today)
}
