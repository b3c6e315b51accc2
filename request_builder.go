package dub

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/oapi-codegen/runtime"

	"github.com/dubinc/dub-go/headers"
)

// RequestDescriptor is a fully formed request that has not been sent.
type RequestDescriptor struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// BuildRequest turns typed params into a request descriptor without doing
// any I/O.
//
// Fields tagged `dub:"path"` fill {placeholders} in pathTemplate, fields
// tagged `dub:"query"` become query parameters (arrays repeat the key:
// tagIds=a&tagIds=b), a field tagged `dub:"body"` is sent as the whole body,
// and all other fields form the JSON body object. Unset Optional fields are
// left out everywhere. Params implementing Validate() error are checked
// first.
func BuildRequest(baseURL, method, pathTemplate string, params any) (*RequestDescriptor, error) {
	path := pathTemplate
	query := url.Values{}
	var body []byte

	rv := reflect.ValueOf(params)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv = reflect.Value{}
			break
		}
		rv = rv.Elem()
	}
	if rv.IsValid() {
		if v, ok := params.(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return nil, err
			}
		}
		if rv.Kind() != reflect.Struct {
			return nil, fmt.Errorf("dub: request params must be a struct, got %s", rv.Type())
		}
		plan := planFor(rv.Type())
		hasBodyFields := false
		for _, f := range plan.fields {
			fv := rv.FieldByIndex(f.index)
			ptr := "/" + escapePointer(f.name)
			switch f.loc {
			case inPath:
				val, present, err := paramValue(ptr, fv)
				if err != nil {
					return nil, err
				}
				if !present {
					return nil, &ValidationError{Field: ptr, Message: "required path parameter missing"}
				}
				styled, err := runtime.StyleParamWithLocation("simple", false, f.name, runtime.ParamLocationPath, val)
				if err != nil {
					return nil, fmt.Errorf("dub: encode path parameter %s: %w", f.name, err)
				}
				path = strings.ReplaceAll(path, "{"+f.name+"}", styled)
			case inQuery:
				val, present, err := paramValue(ptr, fv)
				if err != nil {
					return nil, err
				}
				if !present {
					if f.required {
						return nil, &ValidationError{Field: ptr, Message: "required query parameter missing"}
					}
					continue
				}
				frag, err := runtime.StyleParamWithLocation("form", true, f.name, runtime.ParamLocationQuery, val)
				if err != nil {
					return nil, fmt.Errorf("dub: encode query parameter %s: %w", f.name, err)
				}
				parsed, err := url.ParseQuery(frag)
				if err != nil {
					return nil, fmt.Errorf("dub: encode query parameter %s: %w", f.name, err)
				}
				for k, vs := range parsed {
					for _, s := range vs {
						query.Add(k, s)
					}
				}
			case asBody:
				if f.required && !fieldPresent(fv) {
					return nil, &ValidationError{Field: "/", Message: "request body required"}
				}
				enc, err := encodeValue("", fv, allFields)
				if err != nil {
					return nil, err
				}
				if body, err = json.Marshal(enc); err != nil {
					return nil, err
				}
			default:
				hasBodyFields = true
			}
		}
		if body == nil && hasBodyFields {
			obj, err := encodeStruct("", rv, bodyFields)
			if err != nil {
				return nil, err
			}
			if body, err = json.Marshal(obj); err != nil {
				return nil, err
			}
		}
	}

	if i := strings.IndexByte(path, '{'); i >= 0 {
		return nil, fmt.Errorf("dub: unresolved path parameter in %q", pathTemplate)
	}
	target := strings.TrimSuffix(baseURL, "/") + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("dub: build url: %w", err)
	}
	desc := &RequestDescriptor{
		Method: method,
		URL:    u,
		Header: http.Header{},
		Body:   body,
	}
	desc.Header.Set(headers.Accept, "application/json")
	if body != nil {
		desc.Header.Set(headers.ContentType, "application/json")
	}
	return desc, nil
}

// paramValue encodes a path or query field. present is false for unset
// Optionals and empty plain values.
func paramValue(ptr string, fv reflect.Value) (any, bool, error) {
	if isOptionalType(fv.Type()) {
		switch fv.Interface().(optionalField).presence() {
		case presenceUnset:
			return nil, false, nil
		case presenceNull:
			return nil, false, &ValidationError{Field: ptr, Message: "parameter cannot be null"}
		}
	} else if isEmptyValue(fv) {
		return nil, false, nil
	}
	val, err := encodeValue(ptr, fv, allFields)
	if err != nil {
		return nil, false, err
	}
	if s, ok := val.([]any); ok && len(s) == 0 {
		return nil, false, nil
	}
	return val, true, nil
}

func fieldPresent(fv reflect.Value) bool {
	if isOptionalType(fv.Type()) {
		return fv.Interface().(optionalField).presence() == presenceSet
	}
	return !isEmptyValue(fv)
}
