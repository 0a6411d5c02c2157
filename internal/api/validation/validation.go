// Package validation checks route parameters, query strings and JSON bodies
// against per-route schemas before a handler runs.
//
// A Schema section is a factory returning a pointer to a tagged struct:
//
//	Params: func() any { return &IDParams{} }
//
// Fields are matched by their `param`, `query` or `json` tag and checked with
// go-playground/validator `validate` tags. Keys that the struct does not
// declare are rejected, at any depth of the body. A nil Schema or a nil
// section accepts nothing in that part of the request.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

const (
	MsgFailed = "Validation failed, check details for more information"

	sectionParams = "params"
	sectionQuery  = "query"
	sectionBody   = "body"

	ctxParams = "validated_params"
	ctxQuery  = "validated_query"
	ctxBody   = "validated_body"
)

type Schema struct {
	Params func() any
	Query  func() any
	Body   func() any
}

// Validator wraps a configured validator.Validate. It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("posint", validatePosInt)
	_ = v.RegisterValidation("id_or_me", validateIDOrMe)
	return &Validator{v: v}
}

// Middleware validates every request against s and stores the parsed
// sections on the context. Handlers read them with Params and Body.
func (v *Validator) Middleware(s *Schema) echo.MiddlewareFunc {
	if s == nil {
		s = &Schema{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			details := map[string]map[string]string{}

			params, err := v.validateParams(c, s.Params, details)
			if err != nil {
				return err
			}
			query, err := v.validateQuery(c, s.Query, details)
			if err != nil {
				return err
			}
			body, err := v.validateBody(c, s.Body, details)
			if err != nil {
				return err
			}

			if len(details) > 0 {
				out := make(map[string]any, len(details))
				for section, fields := range details {
					out[section] = fields
				}
				return domain.ValidationFailed(MsgFailed).WithDetails(out)
			}

			c.Set(ctxParams, params)
			c.Set(ctxQuery, query)
			c.Set(ctxBody, body)
			return next(c)
		}
	}
}

func (v *Validator) validateParams(c echo.Context, factory func() any, details map[string]map[string]string) (any, error) {
	raw := make(map[string]string, len(c.ParamNames()))
	for i, name := range c.ParamNames() {
		if name == "*" {
			continue
		}
		raw[name] = c.ParamValues()[i]
	}
	return v.validateStrings(raw, factory, "param", sectionParams, details)
}

func (v *Validator) validateQuery(c echo.Context, factory func() any, details map[string]map[string]string) (any, error) {
	raw := make(map[string]string)
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			raw[key] = values[0]
		}
	}
	return v.validateStrings(raw, factory, "query", sectionQuery, details)
}

// validateStrings fills the struct produced by factory from raw using the
// given tag. Only string fields are supported; the validate tags do the typing.
func (v *Validator) validateStrings(raw map[string]string, factory func() any, tag, section string, details map[string]map[string]string) (any, error) {
	if factory == nil {
		for key := range raw {
			addDetail(details, section, key, notAllowed(key))
		}
		return nil, nil
	}

	target := factory()
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("validation: %s schema must return a struct pointer, got %T", section, target)
	}
	elem := rv.Elem()
	fields := make(map[string]reflect.Value, elem.NumField())
	for i := 0; i < elem.NumField(); i++ {
		name := tagName(elem.Type().Field(i).Tag.Get(tag))
		if name != "" {
			fields[name] = elem.Field(i)
		}
	}

	for key, value := range raw {
		field, ok := fields[key]
		if !ok {
			addDetail(details, section, key, notAllowed(key))
			continue
		}
		if field.Kind() != reflect.String {
			return nil, fmt.Errorf("validation: %s field %q must be a string", section, key)
		}
		field.SetString(value)
	}

	v.collect(target, section, details)
	return target, nil
}

func (v *Validator) validateBody(c echo.Context, factory func() any, details map[string]map[string]string) (any, error) {
	req := c.Request()
	var data []byte
	if req.Body != nil {
		var err error
		data, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("validation: read body: %w", err)
		}
		req.Body = io.NopCloser(bytes.NewReader(data))
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		data = []byte("{}")
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		addDetail(details, sectionBody, "body", "body must be valid JSON")
		return nil, nil
	}
	obj, isObject := generic.(map[string]any)
	if !isObject {
		addDetail(details, sectionBody, "body", "body must be an object")
		return nil, nil
	}

	if factory == nil {
		for key := range obj {
			addDetail(details, sectionBody, key, notAllowed(key))
		}
		return nil, nil
	}

	target := factory()
	unknown := map[string]string{}
	unknownKeys(obj, reflect.TypeOf(target), "", unknown)
	for path, msg := range unknown {
		addDetail(details, sectionBody, path, msg)
	}
	if len(unknown) > 0 {
		return nil, nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			addDetail(details, sectionBody, typeErr.Field, typeMessage(typeErr.Field, typeErr.Type))
			return nil, nil
		}
		addDetail(details, sectionBody, "body", "body must be valid JSON")
		return nil, nil
	}

	v.collect(target, sectionBody, details)
	return target, nil
}

// collect runs the validate tags on target and records each failure.
func (v *Validator) collect(target any, section string, details map[string]map[string]string) {
	err := v.v.Struct(target)
	if err == nil {
		return
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		addDetail(details, section, section, err.Error())
		return
	}
	for _, fe := range ve {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		addDetail(details, section, path, fieldError(fe))
	}
}

// unknownKeys walks raw JSON alongside the Go type and records every object
// key the type does not declare.
func unknownKeys(raw any, t reflect.Type, path string, out map[string]string) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct:
		obj, ok := raw.(map[string]any)
		if !ok {
			return
		}
		known := make(map[string]reflect.Type, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if name := tagName(f.Tag.Get("json")); name != "" {
				known[name] = f.Type
			}
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			ft, ok := known[k]
			if !ok {
				out[join(path, k)] = notAllowed(k)
				continue
			}
			unknownKeys(obj[k], ft, join(path, k), out)
		}
	case reflect.Slice:
		items, ok := raw.([]any)
		if !ok {
			return
		}
		for i, item := range items {
			unknownKeys(item, t.Elem(), path+"["+strconv.Itoa(i)+"]", out)
		}
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func addDetail(details map[string]map[string]string, section, field, msg string) {
	if details[section] == nil {
		details[section] = map[string]string{}
	}
	if _, exists := details[section][field]; !exists {
		details[section][field] = msg
	}
}

func notAllowed(key string) string {
	return key + " is not allowed"
}

func typeMessage(field string, t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return field + " must be a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return field + " must be a positive integer"
	case reflect.Slice:
		return field + " must be an array"
	case reflect.Struct:
		return field + " must be an object"
	}
	return field + " has an invalid type"
}

// fieldName reports the request-facing name of a struct field.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "param", "query"} {
		if name := tagName(f.Tag.Get(tag)); name != "" {
			return name
		}
	}
	return f.Name
}

func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_without":
		return field + " is required"
	case "excluded_with":
		return fmt.Sprintf("%s is not allowed together with %s", field, fe.Param())
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "posint":
		return field + " must be a positive integer"
	case "id_or_me":
		return field + ` must be a positive integer or "me"`
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func validatePosInt(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.String:
		_, ok := parsePosInt(f.String())
		return ok
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return f.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return f.Uint() > 0
	}
	return false
}

func validateIDOrMe(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return false
	}
	if f.String() == "me" {
		return true
	}
	_, ok := parsePosInt(f.String())
	return ok
}

func parsePosInt(s string) (uint, bool) {
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
