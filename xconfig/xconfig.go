package xconfig

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

type Options struct {
	files     []string
	envPrefix string
}

type Option func(*Options)

// WithFiles adds config files to load, in order. Later files override
// earlier ones; missing files are skipped.
func WithFiles(filenames ...string) Option {
	return func(o *Options) {
		o.files = append(o.files, filenames...)
	}
}

// WithEnv enables environment overrides with the given prefix. For example,
// WithEnv("app") reads APP_LOG_LEVEL into the nested field Log.Level.
func WithEnv(prefix string) Option {
	return func(o *Options) {
		o.envPrefix = prefix
	}
}

// Load fills config, which must be a non-nil pointer to a struct, in three
// layers: default struct tags, then files, then environment variables.
// Each layer overrides the previous one.
func Load(config any, options ...Option) error {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}

	elem, err := validateConfigPointer(config)
	if err != nil {
		return err
	}

	if err := applyDefaults(elem); err != nil {
		return fmt.Errorf("failed to apply default tags: %w", err)
	}

	if err := loadFromFiles(config, opts.files); err != nil {
		return fmt.Errorf("failed to load from files: %w", err)
	}

	if opts.envPrefix != "" {
		if err := loadFromEnv(elem, opts.envPrefix); err != nil {
			return fmt.Errorf("failed to load from environment: %w", err)
		}
	}

	return nil
}

func validateConfigPointer(config any) (reflect.Value, error) {
	v := reflect.ValueOf(config)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("config must be a non-nil pointer to a struct")
	}

	return v.Elem(), nil
}

func setValueFromString(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Bool:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(parsed)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			parsed, err := time.ParseDuration(raw)
			if err != nil {
				return err
			}
			field.SetInt(int64(parsed))

			return nil
		}

		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(parsed)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetUint(parsed)

	case reflect.Float32, reflect.Float64:
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		field.SetFloat(parsed)

	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}

	return nil
}
