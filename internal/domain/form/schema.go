package form

import (
	"reflect"
	"strings"

	"portal/internal/domain/entity"
	"portal/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// Schema validates raw, untyped input for one onboarding section and
// produces either a typed answer or a structured validation failure
// enumerating every offending field with a reason.
type Schema interface {
	// SectionID returns the section this schema applies to.
	SectionID() entity.SectionID

	// Defaults returns the answer value with declared defaults resolved and
	// all other fields zero. Handlers render this for sections that have no
	// stored answer yet.
	Defaults() any

	// Validate applies the schema to raw input. Exactly one of the returns
	// is set: a typed answer on success, or the full set of field errors.
	Validate(raw map[string]any) (any, FieldErrors)
}

// checker is the process-wide validator instance. Field rules are declared
// as struct tags on the answer types; names reported in errors follow the
// mapstructure tag so they match the wire field names.
var checker = newChecker()

func newChecker() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// schema is the generic Schema implementation shared by all sections.
// T is the section's typed answer struct.
type schema[T any] struct {
	id       entity.SectionID
	defaults T
}

func newSchema[T any](id entity.SectionID, defaults T) Schema {
	return schema[T]{id: id, defaults: defaults}
}

// SectionID returns the section this schema applies to.
func (s schema[T]) SectionID() entity.SectionID {
	return s.id
}

// Defaults returns a fresh copy of the section's default answer.
func (s schema[T]) Defaults() any {
	return s.defaults
}

// Validate decodes raw input over the section defaults and runs the field
// rules. Decoding is strict: booleans must be literal true/false and no
// weak type conversion is applied. Absent fields keep their defaults.
func (s schema[T]) Validate(raw map[string]any) (any, FieldErrors) {
	answer := s.defaults

	if ferrs := decodeRaw(raw, &answer); len(ferrs) > 0 {
		return nil, ferrs
	}
	if ferrs := checkAnswer(answer); len(ferrs) > 0 {
		return nil, ferrs
	}

	return answer, nil
}

// decodeRaw maps the untyped form body onto the answer struct without weak
// typing, so type mismatches surface as per-field wrong-type errors.
func decodeRaw(raw map[string]any, out any) FieldErrors {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		// Decoder construction only fails on programmer error (nil result).
		return FieldErrors{{Field: "", Reason: ReasonWrongType}}
	}

	decodeErr := decoder.Decode(raw)
	if decodeErr == nil {
		return nil
	}

	return decodeFieldErrors(decodeErr)
}

// decodeFieldErrors flattens the joined decode error into one wrong-type
// entry per offending field, named after the field path mapstructure reports.
func decodeFieldErrors(err error) FieldErrors {
	var ferrs FieldErrors
	for _, elem := range flattenJoined(err) {
		var decErr *mapstructure.DecodeError
		field := ""
		if errors.As(elem, &decErr) {
			field = decErr.Name()
		}
		ferrs = append(ferrs, FieldError{Field: field, Reason: ReasonWrongType})
	}

	if len(ferrs) == 0 {
		ferrs = FieldErrors{{Field: "", Reason: ReasonWrongType}}
	}

	return ferrs
}

// flattenJoined expands errors produced by errors.Join into their leaves.
func flattenJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var leaves []error
		for _, elem := range joined.Unwrap() {
			leaves = append(leaves, flattenJoined(elem)...)
		}

		return leaves
	}

	// The decoder wraps the joined field errors in a single-unwrap fmt
	// wrapper. Strip such layers only when a join sits beneath them, so
	// leaf errors keep the wrapper that carries their field name.
	for cur := err; ; {
		single, ok := cur.(interface{ Unwrap() error })
		if !ok {
			return []error{err}
		}
		cur = single.Unwrap()
		if cur == nil {
			return []error{err}
		}
		if _, ok := cur.(interface{ Unwrap() []error }); ok {
			return flattenJoined(cur)
		}
	}
}

// checkAnswer runs the declared validate tags and maps each violation to a
// field error with a stable reason code.
func checkAnswer(answer any) FieldErrors {
	err := checker.Struct(answer)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{{Field: "", Reason: ReasonInvalidFormat}}
	}

	ferrs := make(FieldErrors, 0, len(verrs))
	for _, verr := range verrs {
		ferrs = append(ferrs, FieldError{
			Field:  fieldFromNamespace(verr.Namespace()),
			Reason: reasonFromTag(verr.Tag()),
		})
	}

	return ferrs
}

func reasonFromTag(tag string) string {
	switch tag {
	case "required":
		return ReasonMissing
	case "email", "len", "min", "max", "numeric":
		return ReasonInvalidFormat
	case "oneof", "eq":
		return ReasonNotAllowed
	default:
		return ReasonInvalidFormat
	}
}

// fieldFromNamespace strips the root struct name from a validator namespace,
// e.g. "locationServicesAnswer.overrides[0].serviceType" -> "overrides[0].serviceType".
func fieldFromNamespace(ns string) string {
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}

	return ns
}
