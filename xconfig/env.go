package xconfig

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"unicode"
)

func loadFromEnv(elem reflect.Value, prefix string) error {
	elemType := elem.Type()

	for i := 0; i < elem.NumField(); i++ {
		field := elem.Field(i)
		fieldType := elemType.Field(i)

		if !field.CanSet() {
			continue
		}

		key := strings.ToUpper(prefix + "_" + fieldTagName(fieldType))

		if field.Kind() == reflect.Struct {
			if err := loadFromEnv(field, key); err != nil {
				return err
			}

			continue
		}

		raw, ok := os.LookupEnv(key)
		if !ok {
			continue
		}

		if err := setValueFromString(field, raw); err != nil {
			return fmt.Errorf("variable %s: %w", key, err)
		}
	}

	return nil
}

func fieldTagName(field reflect.StructField) string {
	for _, tag := range []string{"yaml", "json"} {
		value, ok := field.Tag.Lookup(tag)
		if !ok {
			continue
		}

		if name, _, _ := strings.Cut(value, ","); name != "" && name != "-" {
			return name
		}
	}

	return camelToSnake(field.Name)
}

func camelToSnake(name string) string {
	var builder strings.Builder

	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if prevLower || nextLower {
				builder.WriteRune('_')
			}
		}

		builder.WriteRune(unicode.ToLower(r))
	}

	return builder.String()
}
