package dub

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// A struct's field list is the single schema for both directions: Unmarshal
// (inbound) and Marshal (outbound) walk the same plan, so the two cannot
// drift. Tags:
//
//	json:"name"           wire key
//	dub:"required"        must be present (and non-empty for strings, slices, maps)
//	dub:"path"            request path parameter
//	dub:"query"           request query parameter
//	dub:"body"            the field is the entire request body
//
// Options combine with commas: `dub:"path,required"`.

type location uint8

const (
	inBody location = iota
	inPath
	inQuery
	asBody
)

type fieldPlan struct {
	index    []int
	name     string
	required bool
	loc      location
	typ      reflect.Type
}

type structPlan struct {
	fields []fieldPlan
}

// knownEnum is implemented by every closed string enumeration.
type knownEnum interface {
	IsKnown() bool
}

var (
	planCache     sync.Map // reflect.Type -> *structPlan
	knownEnumType = reflect.TypeOf((*knownEnum)(nil)).Elem()
	timeType      = reflect.TypeOf((*time.Time)(nil)).Elem()
)

func planFor(t reflect.Type) *structPlan {
	if cached, ok := planCache.Load(t); ok {
		return cached.(*structPlan)
	}
	plan := &structPlan{fields: collectFields(t, nil)}
	actual, _ := planCache.LoadOrStore(t, plan)
	return actual.(*structPlan)
}

// collectFields lists the wire fields of t. Untagged embedded structs are
// flattened into their parent, as encoding/json does.
func collectFields(t reflect.Type, parent []int) []fieldPlan {
	var fields []fieldPlan
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), parent...), i)
		tag, tagged := sf.Tag.Lookup("json")
		if sf.Anonymous && !tagged && sf.Type.Kind() == reflect.Struct {
			fields = append(fields, collectFields(sf.Type, index)...)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tagged {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fp := fieldPlan{index: index, name: name, typ: sf.Type}
		for _, opt := range strings.Split(sf.Tag.Get("dub"), ",") {
			switch strings.TrimSpace(opt) {
			case "required":
				fp.required = true
			case "path":
				fp.loc = inPath
				fp.required = true
			case "query":
				fp.loc = inQuery
			case "body":
				fp.loc = asBody
			}
		}
		fields = append(fields, fp)
	}
	return fields
}

// Marshal encodes v with its outbound schema. Unset Optional fields are
// omitted, Null fields are written as null, and enum values outside their
// closed set are rejected.
func Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return []byte("null"), nil
		}
		rv = rv.Elem()
	}
	wire, err := encodeValue("", rv, allFields)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// Unmarshal decodes data into v with its inbound schema. Unknown keys are
// ignored; type mismatches, missing required fields and unknown enum values
// fail with a *ValidationError naming the JSON pointer of the bad value.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("dub: unmarshal target must be a non-nil pointer, got %T", v)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return &ValidationError{Field: "/", Message: "malformed JSON: " + err.Error()}
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return &ValidationError{Field: "/", Message: "malformed JSON: unexpected data after top-level value"}
	}
	dst := rv.Elem()
	if raw == nil && !isOptionalType(dst.Type()) && dst.Kind() != reflect.Interface {
		return mismatch("", dst.Type(), nil)
	}
	return decodeValue("", raw, dst)
}

type fieldFilter func(location) bool

func allFields(location) bool { return true }

func bodyFields(loc location) bool { return loc == inBody }

func encodeValue(path string, v reflect.Value, filter fieldFilter) (any, error) {
	t := v.Type()
	switch {
	case t == timeType:
		return v.Interface().(time.Time).Format(time.RFC3339Nano), nil
	case isOptionalType(t):
		opt := v.Interface().(optionalField)
		if opt.presence() != presenceSet {
			return nil, nil
		}
		inner := opt.reflectValue()
		// a set collection is never null on the wire; null means "clear"
		switch {
		case inner.Kind() == reflect.Slice && inner.IsNil():
			return []any{}, nil
		case inner.Kind() == reflect.Map && inner.IsNil():
			return map[string]any{}, nil
		}
		return encodeValue(path, inner, filter)
	case t.Implements(knownEnumType):
		if !v.Interface().(knownEnum).IsKnown() {
			return nil, enumError(path, t, v.String())
		}
		return v.String(), nil
	}

	switch t.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &ValidationError{Field: pointerOrRoot(path), Expected: "finite number", Got: strconv.FormatFloat(f, 'g', -1, 64)}
		}
		return f, nil
	case reflect.Struct:
		return encodeStruct(path, v, filter)
	case reflect.Slice, reflect.Array:
		if t.Kind() == reflect.Slice && v.IsNil() {
			return nil, nil
		}
		out := make([]any, v.Len())
		for i := range out {
			elem, err := encodeValue(path+"/"+strconv.Itoa(i), v.Index(i), allFields)
			if err != nil {
				return nil, err
			}
			out[i] = elem
		}
		return out, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("dub: unsupported map key type %s at %s", t.Key(), pointerOrRoot(path))
		}
		if v.IsNil() {
			return nil, nil
		}
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			elem, err := encodeValue(path+"/"+escapePointer(key), iter.Value(), allFields)
			if err != nil {
				return nil, err
			}
			out[key] = elem
		}
		return out, nil
	case reflect.Interface:
		if v.IsNil() {
			return nil, nil
		}
		return encodeValue(path, v.Elem(), filter)
	default:
		return nil, fmt.Errorf("dub: unsupported type %s at %s", t, pointerOrRoot(path))
	}
}

func encodeStruct(path string, v reflect.Value, filter fieldFilter) (map[string]any, error) {
	plan := planFor(v.Type())
	out := make(map[string]any, len(plan.fields))
	for _, f := range plan.fields {
		if !filter(f.loc) {
			continue
		}
		p := path + "/" + escapePointer(f.name)
		fv := v.FieldByIndex(f.index)
		if isOptionalType(f.typ) {
			switch fv.Interface().(optionalField).presence() {
			case presenceUnset:
				if f.required {
					return nil, missingField(p)
				}
				continue
			case presenceNull:
				if f.required {
					return nil, &ValidationError{Field: p, Expected: expectation(f.typ), Got: "null"}
				}
			}
		} else if f.required && isEmptyValue(fv) {
			return nil, missingField(p)
		}
		enc, err := encodeValue(p, fv, allFields)
		if err != nil {
			return nil, err
		}
		out[f.name] = enc
	}
	return out, nil
}

func decodeValue(path string, raw any, dst reflect.Value) error {
	t := dst.Type()
	if raw == nil {
		if isOptionalType(t) {
			dst.Addr().Interface().(optionalSetter).assignNull()
			return nil
		}
		switch t.Kind() {
		case reflect.Slice, reflect.Map, reflect.Interface:
			dst.Set(reflect.Zero(t))
			return nil
		}
		return mismatch(path, t, nil)
	}

	switch {
	case isOptionalType(t):
		inner := reflect.New(dst.Interface().(optionalField).elemType()).Elem()
		if err := decodeValue(path, raw, inner); err != nil {
			return err
		}
		dst.Addr().Interface().(optionalSetter).assign(inner)
		return nil
	case t == timeType:
		s, ok := raw.(string)
		if !ok {
			return mismatch(path, t, raw)
		}
		ts, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return &ValidationError{Field: pointerOrRoot(path), Expected: expectation(t), Got: strconv.Quote(s)}
		}
		dst.Set(reflect.ValueOf(ts))
		return nil
	}

	switch t.Kind() {
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return mismatch(path, t, raw)
		}
		val := reflect.ValueOf(s).Convert(t)
		if t.Implements(knownEnumType) && !val.Interface().(knownEnum).IsKnown() {
			return enumError(path, t, s)
		}
		dst.Set(val)
	case reflect.Bool:
		b, ok := raw.(bool)
		if !ok {
			return mismatch(path, t, raw)
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := raw.(json.Number)
		if !ok {
			return mismatch(path, t, raw)
		}
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil || dst.OverflowInt(i) {
			return &ValidationError{Field: pointerOrRoot(path), Expected: expectation(t), Got: n.String()}
		}
		dst.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := raw.(json.Number)
		if !ok {
			return mismatch(path, t, raw)
		}
		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil || dst.OverflowUint(u) {
			return &ValidationError{Field: pointerOrRoot(path), Expected: expectation(t), Got: n.String()}
		}
		dst.SetUint(u)
	case reflect.Float32, reflect.Float64:
		n, ok := raw.(json.Number)
		if !ok {
			return mismatch(path, t, raw)
		}
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return &ValidationError{Field: pointerOrRoot(path), Expected: expectation(t), Got: n.String()}
		}
		dst.SetFloat(f)
	case reflect.Struct:
		m, ok := raw.(map[string]any)
		if !ok {
			return mismatch(path, t, raw)
		}
		return decodeStruct(path, m, dst)
	case reflect.Slice:
		arr, ok := raw.([]any)
		if !ok {
			return mismatch(path, t, raw)
		}
		out := reflect.MakeSlice(t, len(arr), len(arr))
		for i, elem := range arr {
			if err := decodeValue(path+"/"+strconv.Itoa(i), elem, out.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(out)
	case reflect.Map:
		m, ok := raw.(map[string]any)
		if !ok || t.Key().Kind() != reflect.String {
			return mismatch(path, t, raw)
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := reflect.MakeMapWithSize(t, len(m))
		for _, k := range keys {
			elem := reflect.New(t.Elem()).Elem()
			if err := decodeValue(path+"/"+escapePointer(k), m[k], elem); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), elem)
		}
		dst.Set(out)
	case reflect.Interface:
		dst.Set(reflect.ValueOf(raw))
	default:
		return fmt.Errorf("dub: unsupported type %s at %s", t, pointerOrRoot(path))
	}
	return nil
}

func decodeStruct(path string, m map[string]any, dst reflect.Value) error {
	plan := planFor(dst.Type())
	for _, f := range plan.fields {
		p := path + "/" + escapePointer(f.name)
		raw, ok := m[f.name]
		if !ok {
			if f.required {
				return missingField(p)
			}
			continue
		}
		if raw == nil && f.required && !isOptionalType(f.typ) {
			return &ValidationError{Field: p, Expected: expectation(f.typ), Got: "null"}
		}
		if err := decodeValue(p, raw, dst.FieldByIndex(f.index)); err != nil {
			return err
		}
	}
	return nil
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	case reflect.Struct:
		if v.Type() == timeType {
			return v.Interface().(time.Time).IsZero()
		}
	}
	return false
}

// expectation names the wire shape of t for error messages.
func expectation(t reflect.Type) string {
	switch {
	case isOptionalType(t):
		return expectation(reflect.New(t).Elem().Interface().(optionalField).elemType())
	case t == timeType:
		return "RFC 3339 timestamp"
	case t.Implements(knownEnumType):
		return t.Name()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.String()
	}
}

func describe(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", raw)
	}
}

func mismatch(path string, t reflect.Type, raw any) error {
	return &ValidationError{Field: pointerOrRoot(path), Expected: expectation(t), Got: describe(raw)}
}

func missingField(path string) error {
	return &ValidationError{Field: path, Message: "required field missing"}
}

func enumError(path string, t reflect.Type, got string) error {
	return &ValidationError{
		Field:    pointerOrRoot(path),
		Expected: t.Name(),
		Got:      strconv.Quote(got),
		Message:  fmt.Sprintf("%q is not a known %s", got, t.Name()),
	}
}

func pointerOrRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapePointer(s string) string { return pointerEscaper.Replace(s) }
