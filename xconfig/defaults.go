package xconfig

import (
	"fmt"
	"reflect"
)

func applyDefaults(elem reflect.Value) error {
	elemType := elem.Type()

	for i := 0; i < elem.NumField(); i++ {
		field := elem.Field(i)
		fieldType := elemType.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := applyDefaults(field); err != nil {
				return err
			}

			continue
		}

		value, ok := fieldType.Tag.Lookup("default")
		if !ok || !field.IsZero() {
			continue
		}

		if err := setValueFromString(field, value); err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}
