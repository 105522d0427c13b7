package marshal

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/chadxz/waterline-fakes/pkg/errors"
)

// UnmarshalItem converts a raw DynamoDB item into plain model fields.
//
// Numbers become int64 when they are integral and float64 otherwise. Lists and
// maps become []any and map[string]any, string sets []string, number sets
// []any of numbers, and binary sets [][]byte.
func UnmarshalItem(item map[string]types.AttributeValue) (map[string]any, error) {
	props := make(map[string]any, len(item))
	for name, av := range item {
		v, err := unmarshalValue(av)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		props[name] = v
	}
	return props, nil
}

func unmarshalValue(av types.AttributeValue) (any, error) {
	switch v := av.(type) {
	case nil:
		return nil, nil
	case *types.AttributeValueMemberS:
		return v.Value, nil
	case *types.AttributeValueMemberN:
		return parseNumber(v.Value)
	case *types.AttributeValueMemberB:
		return v.Value, nil
	case *types.AttributeValueMemberBOOL:
		return v.Value, nil
	case *types.AttributeValueMemberNULL:
		return nil, nil
	case *types.AttributeValueMemberL:
		list := make([]any, len(v.Value))
		for i, elem := range v.Value {
			x, err := unmarshalValue(elem)
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			list[i] = x
		}
		return list, nil
	case *types.AttributeValueMemberM:
		return UnmarshalItem(v.Value)
	case *types.AttributeValueMemberSS:
		return append([]string(nil), v.Value...), nil
	case *types.AttributeValueMemberNS:
		set := make([]any, len(v.Value))
		for i, s := range v.Value {
			n, err := parseNumber(s)
			if err != nil {
				return nil, fmt.Errorf("number set index %d: %w", i, err)
			}
			set[i] = n
		}
		return set, nil
	case *types.AttributeValueMemberBS:
		return append([][]byte(nil), v.Value...), nil
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnsupportedType, av)
	}
}

func parseNumber(s string) (any, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return f, nil
}
