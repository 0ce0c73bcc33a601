package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Convert copies in into the value pointed to by outPtr.
//
// When in is assignable to the destination type it is set directly, otherwise
// the value takes a JSON marshal/unmarshal round trip.  A nil input leaves the
// destination untouched.
func Convert(in any, outPtr any) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Convert: outPtr cannot be nil")
	}
	v := reflect.ValueOf(outPtr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("conv.Convert: outPtr must be a non-nil pointer, got %T", outPtr)
	}
	if in == nil {
		return nil
	}
	inVal := reflect.ValueOf(in)
	if inVal.Type().AssignableTo(v.Elem().Type()) {
		v.Elem().Set(inVal)
		return nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("conv.Convert: marshal %T: %w", in, err)
	}
	if err = json.Unmarshal(data, outPtr); err != nil {
		return fmt.Errorf("conv.Convert: unmarshal into %T: %w", outPtr, err)
	}
	return nil
}

// ToMap converts in into a generic map, used for tool call arguments.
func ToMap(in any) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := Convert(in, &m); err != nil {
		return nil, err
	}
	return m, nil
}
