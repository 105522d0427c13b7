// Package marshal converts between model fields and raw DynamoDB items
package marshal

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/chadxz/waterline-fakes/pkg/errors"
)

// MarshalProps converts a model's fields into a DynamoDB item
func MarshalProps(props map[string]any) (map[string]types.AttributeValue, error) {
	item := make(map[string]types.AttributeValue, len(props))
	for name, value := range props {
		av, err := marshalValue(reflect.ValueOf(value))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		item[name] = av
	}
	return item, nil
}

// marshalValue marshals a single reflect.Value
func marshalValue(v reflect.Value) (types.AttributeValue, error) {
	if !v.IsValid() {
		return &types.AttributeValueMemberNULL{Value: true}, nil
	}

	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return &types.AttributeValueMemberNULL{Value: true}, nil
		}
		return marshalValue(v.Elem())
	}

	switch v.Kind() {
	case reflect.String:
		return &types.AttributeValueMemberS{Value: v.String()}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(v.Int(), 10)}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &types.AttributeValueMemberN{Value: strconv.FormatUint(v.Uint(), 10)}, nil

	case reflect.Float32:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(v.Float(), 'f', -1, 32)}, nil

	case reflect.Float64:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(v.Float(), 'f', -1, 64)}, nil

	case reflect.Bool:
		return &types.AttributeValueMemberBOOL{Value: v.Bool()}, nil

	case reflect.Struct:
		if t, ok := v.Interface().(time.Time); ok {
			return &types.AttributeValueMemberS{Value: t.Format(time.RFC3339Nano)}, nil
		}
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedType, v.Type())

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return &types.AttributeValueMemberNULL{Value: true}, nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(b), v)
			return &types.AttributeValueMemberB{Value: b}, nil
		}
		return marshalList(v)

	case reflect.Map:
		if v.IsNil() {
			return &types.AttributeValueMemberNULL{Value: true}, nil
		}
		return marshalMap(v)

	default:
		return nil, fmt.Errorf("%w: %v", errors.ErrUnsupportedType, v.Kind())
	}
}

func marshalList(v reflect.Value) (types.AttributeValue, error) {
	list := make([]types.AttributeValue, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem, err := marshalValue(v.Index(i))
		if err != nil {
			return nil, fmt.Errorf("list index %d: %w", i, err)
		}
		list[i] = elem
	}
	return &types.AttributeValueMemberL{Value: list}, nil
}

func marshalMap(v reflect.Value) (types.AttributeValue, error) {
	if v.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: map key %s", errors.ErrUnsupportedType, v.Type().Key())
	}

	m := make(map[string]types.AttributeValue, v.Len())
	for _, key := range v.MapKeys() {
		elem, err := marshalValue(v.MapIndex(key))
		if err != nil {
			return nil, fmt.Errorf("map key %s: %w", key.String(), err)
		}
		m[key.String()] = elem
	}
	return &types.AttributeValueMemberM{Value: m}, nil
}
