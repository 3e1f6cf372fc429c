package definition

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/schrittweiter/extended-acf/pkg/conditional"
	"github.com/schrittweiter/extended-acf/pkg/location"
)

var (
	conditionalGroupType = reflect.TypeOf((*conditional.Group)(nil))
	locationGroupType    = reflect.TypeOf((*location.Group)(nil))
)

var initialisms = map[string]string{
	"id":      "ID",
	"ui":      "UI",
	"url":     "URL",
	"svg":     "SVG",
	"graphql": "GraphQL",
}

// SetterName maps an option key to the setter it calls: button_type becomes
// ButtonType and stylised_ui becomes StylisedUI.
func SetterName(key string) string {
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	var b strings.Builder
	for _, part := range parts {
		if mapped, ok := initialisms[strings.ToLower(part)]; ok {
			b.WriteString(mapped)
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}

// optionError names the option that failed to apply.
type optionError struct {
	option string
	err    error
}

func (e *optionError) Error() string { return e.err.Error() }

func (e *optionError) Unwrap() error { return e.err }

// applyOptions calls one setter per option key, in document order.
func applyOptions(target any, options *yaml.Node) error {
	if options == nil || options.Kind == 0 {
		return nil
	}
	if options.Kind == yaml.AliasNode {
		options = options.Alias
	}
	if options.Kind == yaml.ScalarNode && options.Tag == "!!null" {
		return nil
	}
	if options.Kind != yaml.MappingNode {
		return errors.New("options must be a mapping")
	}
	for i := 0; i+1 < len(options.Content); i += 2 {
		key := options.Content[i].Value
		if err := applyOption(target, key, options.Content[i+1]); err != nil {
			return &optionError{option: key, err: err}
		}
	}
	return nil
}

func applyOption(target any, key string, value *yaml.Node) error {
	name := SetterName(key)
	method := reflect.ValueOf(target).MethodByName(name)
	if !method.IsValid() || !isSetter(method.Type(), reflect.TypeOf(target)) {
		return fmt.Errorf("unknown option (no %s setter)", name)
	}

	args, call, err := arguments(method.Type(), value)
	if err != nil {
		return err
	}
	if call {
		method.Call(args)
	}
	return nil
}

// isSetter accepts methods that hand back the receiver for chaining.
func isSetter(mt, self reflect.Type) bool {
	return mt.NumOut() == 1 && mt.Out(0) == self
}

func arguments(mt reflect.Type, node *yaml.Node) ([]reflect.Value, bool, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch n := mt.NumIn(); {
	case n == 0:
		var raw any
		if err := node.Decode(&raw); err != nil {
			return nil, false, err
		}
		if raw == nil {
			return nil, true, nil
		}
		enabled, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, false, fmt.Errorf("flag expects true or false: %w", err)
		}
		return nil, enabled, nil
	case n == 1 && mt.IsVariadic():
		args, err := variadic(mt.In(0).Elem(), node)
		return args, err == nil, err
	case n == 1:
		arg, err := convert(node, mt.In(0))
		if err != nil {
			return nil, false, err
		}
		return []reflect.Value{arg}, true, nil
	default:
		if node.Kind != yaml.SequenceNode || len(node.Content) != n {
			return nil, false, fmt.Errorf("expects a list of %d arguments", n)
		}
		args := make([]reflect.Value, 0, n)
		for idx, item := range node.Content {
			arg, err := convert(item, mt.In(idx))
			if err != nil {
				return nil, false, fmt.Errorf("argument %d: %w", idx+1, err)
			}
			args = append(args, arg)
		}
		return args, true, nil
	}
}

func variadic(elem reflect.Type, node *yaml.Node) ([]reflect.Value, error) {
	switch elem {
	case conditionalGroupType:
		var raw any
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		groups, err := conditional.Parse(raw)
		if err != nil {
			return nil, err
		}
		args := make([]reflect.Value, 0, len(groups))
		for _, group := range groups {
			args = append(args, reflect.ValueOf(group))
		}
		return args, nil
	case locationGroupType:
		var raw any
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		groups, err := location.Parse(raw)
		if err != nil {
			return nil, err
		}
		args := make([]reflect.Value, 0, len(groups))
		for _, group := range groups {
			args = append(args, reflect.ValueOf(group))
		}
		return args, nil
	}

	items := []*yaml.Node{node}
	switch {
	case node.Kind == yaml.SequenceNode:
		items = node.Content
	case node.Kind == yaml.ScalarNode && node.Tag == "!!null":
		items = nil
	}
	args := make([]reflect.Value, 0, len(items))
	for idx, item := range items {
		arg, err := convert(item, elem)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", idx+1, err)
		}
		args = append(args, arg)
	}
	return args, nil
}

func convert(node *yaml.Node, typ reflect.Type) (reflect.Value, error) {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return reflect.Value{}, err
	}

	switch typ.Kind() {
	case reflect.String:
		if _, isMap := raw.(map[string]any); isMap {
			return reflect.Value{}, errors.New("expects a string")
		}
		s, err := cast.ToStringE(raw)
		return reflect.ValueOf(s).Convert(typ), err
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := cast.ToInt64E(raw)
		return reflect.ValueOf(i).Convert(typ), err
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(raw)
		return reflect.ValueOf(f).Convert(typ), err
	case reflect.Bool:
		b, err := cast.ToBoolE(raw)
		return reflect.ValueOf(b), err
	case reflect.Slice:
		if typ.Elem().Kind() != reflect.String {
			break
		}
		values, err := cast.ToStringSliceE(raw)
		return reflect.ValueOf(values), err
	case reflect.Map:
		if typ.Key().Kind() != reflect.String || typ.Elem().Kind() != reflect.String {
			break
		}
		values, err := cast.ToStringMapStringE(raw)
		return reflect.ValueOf(values), err
	case reflect.Struct:
		out := reflect.New(typ)
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           out.Interface(),
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		})
		if err != nil {
			return reflect.Value{}, err
		}
		if err := decoder.Decode(raw); err != nil {
			return reflect.Value{}, err
		}
		return out.Elem(), nil
	case reflect.Interface:
		if raw == nil {
			return reflect.Zero(typ), nil
		}
		value := reflect.ValueOf(raw)
		if !value.Type().AssignableTo(typ) {
			break
		}
		return value, nil
	}
	return reflect.Value{}, fmt.Errorf("unsupported argument type %s", typ)
}
