package asyncapi

import "github.com/pb33f/libopenapi/orderedmap"

// Object is a raw mapping from the source document. Keys keep the order in
// which they were inserted, which the loader sets to source order.
type Object = orderedmap.Map[string, any]

// NewObject creates an empty Object.
func NewObject() *Object {
	return orderedmap.New[string, any]()
}

// Kind classifies a raw value.
type Kind int

const (
	KindUnknown Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// KindOf reports which variant of raw value v holds.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case *Object:
		return KindObject
	default:
		return KindUnknown
	}
}

func lookup(raw *Object, key string) (any, bool) {
	if raw == nil {
		return nil, false
	}
	return raw.Get(key)
}
