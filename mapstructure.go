package netplan

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// FromMap decodes a generic map, such as one produced by a JSON decoder or a
// templating engine, into a Config. Boolean fields accept the same lenient
// spellings as the YAML decoder, and the types with a scalar shorthand
// (addresses entries, tunnel keys) accept plain strings.
func FromMap(m map[string]interface{}) (*Config, error) {
	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			BoolHookFunc(),
			AddressMappingHookFunc(),
			TunnelKeyHookFunc(),
		),
		ErrorUnused: true,
		Result:      &config,
	})
	if err != nil {
		return nil, errors.Wrap(err, "mapstructure decoder creation failed")
	}
	if err := decoder.Decode(m); err != nil {
		return nil, errors.Wrap(err, "mapstructure decode failed")
	}
	return &config, nil
}

// BoolHookFunc is a mapstructure decode hook that converts lenient boolean
// spellings into Bool values.
func BoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(Bool(false)) {
			return data, nil
		}

		// The hook runs again for the element of pointer targets; the
		// value may already be converted.
		if b, ok := data.(Bool); ok {
			return b, nil
		}

		b, err := ParseBool(data)
		if err != nil {
			return nil, err
		}
		return Bool(b), nil
	}
}

// AddressMappingHookFunc is a mapstructure decode hook that accepts the
// scalar form of an addresses entry. Mapping-form entries fall through to
// the regular struct decode.
func AddressMappingHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(AddressMapping{}) {
			return data, nil
		}
		if a, ok := data.(AddressMapping); ok {
			return a, nil
		}
		if s, ok := data.(string); ok {
			return AddressMapping{Simple: s}, nil
		}
		return data, nil
	}
}

// TunnelKeyHookFunc is a mapstructure decode hook that accepts the scalar
// form of a tunnel key. Mapping-form keys fall through to the regular
// struct decode.
func TunnelKeyHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(TunnelKey{}) {
			return data, nil
		}
		if k, ok := data.(TunnelKey); ok {
			return k, nil
		}
		if s, ok := data.(string); ok {
			return TunnelKey{Simple: s}, nil
		}
		return data, nil
	}
}
