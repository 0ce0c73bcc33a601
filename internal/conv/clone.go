package conv

import "reflect"

// Clone returns a deep copy of v.  JSON-like containers take a fast path;
// any other slice, map, pointer, array or struct is copied via reflection.
// Unexported struct fields are copied shallowly, channels and functions are
// shared.  Cyclic values are not supported.
func Clone(v interface{}) interface{} {
	switch actual := v.(type) {
	case nil, string, bool, int, int64, float64:
		return v
	case map[string]interface{}:
		if actual == nil {
			return actual
		}
		ret := make(map[string]interface{}, len(actual))
		for k, item := range actual {
			ret[k] = Clone(item)
		}
		return ret
	case []interface{}:
		if actual == nil {
			return actual
		}
		ret := make([]interface{}, len(actual))
		for i, item := range actual {
			ret[i] = Clone(item)
		}
		return ret
	case []byte:
		if actual == nil {
			return actual
		}
		return append([]byte(nil), actual...)
	}
	return cloneValue(reflect.ValueOf(v)).Interface()
}

func cloneValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		ret := reflect.New(v.Type()).Elem()
		ret.Set(cloneValue(v.Elem()))
		return ret
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		ret := reflect.New(v.Type().Elem())
		ret.Elem().Set(cloneValue(v.Elem()))
		return ret
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		ret := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			ret.Index(i).Set(cloneValue(v.Index(i)))
		}
		return ret
	case reflect.Array:
		ret := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			ret.Index(i).Set(cloneValue(v.Index(i)))
		}
		return ret
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		ret := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			ret.SetMapIndex(cloneValue(iter.Key()), cloneValue(iter.Value()))
		}
		return ret
	case reflect.Struct:
		ret := reflect.New(v.Type()).Elem()
		ret.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if field := ret.Field(i); field.CanSet() {
				field.Set(cloneValue(v.Field(i)))
			}
		}
		return ret
	}
	return v
}
