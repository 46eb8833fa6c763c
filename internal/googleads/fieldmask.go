package googleads

import (
	"reflect"
	"strings"
)

// FieldMask computes the update mask for a sparse update payload: the dotted
// JSON paths of every populated field, measured against an all-zero baseline
// the way protobuf field-mask helpers do. Message-typed fields recurse to
// leaf paths; repeated fields contribute a single path.
//
// A field explicitly set to its zero value is indistinguishable from an
// unset field. That ambiguity is inherited deliberately; callers that need
// to clear a remote field must model it with a pointer payload field.
func FieldMask(v any) []string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	var paths []string
	walkMask(rv, "", &paths)
	return paths
}

// FieldMaskString joins the mask into the comma-separated form the REST API
// expects in updateMask.
func FieldMaskString(v any) string {
	return strings.Join(FieldMask(v), ",")
}

func walkMask(rv reflect.Value, prefix string, paths *[]string) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := jsonName(field)
		if name == "" {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		fv := rv.Field(i)
		switch fv.Kind() {
		case reflect.Pointer:
			if fv.IsNil() {
				continue
			}
			if fv.Elem().Kind() == reflect.Struct {
				walkMask(fv.Elem(), path, paths)
				continue
			}
			*paths = append(*paths, path)
		case reflect.Struct:
			if fv.IsZero() {
				continue
			}
			walkMask(fv, path, paths)
		case reflect.Slice, reflect.Map:
			if fv.Len() == 0 {
				continue
			}
			*paths = append(*paths, path)
		default:
			if fv.IsZero() {
				continue
			}
			*paths = append(*paths, path)
		}
	}
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	if tag != "" {
		return tag
	}
	return field.Name
}
