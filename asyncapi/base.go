package asyncapi

import (
	"fmt"
	"strings"

	"github.com/pb33f/libopenapi/orderedmap"
)

// ExtensionPrefix marks vendor extension keys.
const ExtensionPrefix = "x-"

// Model is implemented by every view over a raw document section.
type Model interface {
	JSON() *Object
	Extensions() *Object
}

var (
	_ Model = (*Document)(nil)
	_ Model = (*Info)(nil)
	_ Model = (*Contact)(nil)
	_ Model = (*License)(nil)
	_ Model = (*Server)(nil)
	_ Model = (*ServerVariable)(nil)
	_ Model = (*Channel)(nil)
	_ Model = (*Tag)(nil)
	_ Model = (*ExternalDocs)(nil)
)

// base holds the raw section a model views and implements the accessors
// shared by all models.
type base struct {
	raw *Object
}

// JSON returns the raw section this model wraps. The pointer is the one the
// model was built from, not a copy.
func (b base) JSON() *Object {
	return b.raw
}

// Ext returns the value of extension key name, or nil when name is not an
// extension key or is absent.
func (b base) Ext(name string) any {
	if !IsExtensionKey(name) {
		return nil
	}
	v, _ := lookup(b.raw, name)
	return v
}

// Extension is an alias of Ext.
func (b base) Extension(name string) any {
	return b.Ext(name)
}

func (b base) HasExtension(name string) bool {
	if !IsExtensionKey(name) {
		return false
	}
	return b.has(name)
}

// Extensions returns the extension keys of this section in source order.
// The result is never nil.
func (b base) Extensions() *Object {
	out := NewObject()
	if b.raw == nil {
		return out
	}
	for k, v := range b.raw.FromOldest() {
		if IsExtensionKey(k) {
			out.Set(k, v)
		}
	}
	return out
}

// IsExtensionKey reports whether key names a vendor extension.
func IsExtensionKey(key string) bool {
	return strings.HasPrefix(key, ExtensionPrefix)
}

func (b base) has(key string) bool {
	_, ok := lookup(b.raw, key)
	return ok
}

func (b base) str(key string) string {
	v, _ := lookup(b.raw, key)
	s, _ := v.(string)
	return s
}

// scalar formats the scalar at key as text, so an unquoted 1883 reads as
// "1883". Absent, null and structured values yield "".
func (b base) scalar(key string) string {
	v, _ := lookup(b.raw, key)
	return scalarText(v)
}

func scalarText(v any) string {
	switch v := v.(type) {
	case nil, *Object, []any:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (b base) object(key string) *Object {
	v, _ := lookup(b.raw, key)
	o, _ := v.(*Object)
	return o
}

func (b base) stringList(key string) []string {
	v, _ := lookup(b.raw, key)
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch item.(type) {
		case nil, *Object, []any:
			continue
		}
		out = append(out, scalarText(item))
	}
	return out
}

// wrapOne wraps the mapping at key, or returns nil when it is absent.
func wrapOne[T any](b base, key string, wrap func(*Object) *T) *T {
	o := b.object(key)
	if o == nil {
		return nil
	}
	return wrap(o)
}

// wrapAll wraps every mapping entry of the section at key, keeping key order.
// Entries that are not mappings are skipped.
func wrapAll[T any](b base, key string, wrap func(*Object) *T) *orderedmap.Map[string, *T] {
	out := orderedmap.New[string, *T]()
	parent := b.object(key)
	if parent == nil {
		return out
	}
	for name, v := range parent.FromOldest() {
		if o, ok := v.(*Object); ok {
			out.Set(name, wrap(o))
		}
	}
	return out
}

// wrapNamed wraps the entry name of the section at key. An empty name, an
// absent section or an absent entry all yield nil.
func wrapNamed[T any](b base, key, name string, wrap func(*Object) *T) *T {
	if name == "" {
		return nil
	}
	parent := b.object(key)
	if parent == nil {
		return nil
	}
	v, ok := parent.Get(name)
	if !ok {
		return nil
	}
	o, ok := v.(*Object)
	if !ok {
		return nil
	}
	return wrap(o)
}

// wrapList wraps each mapping in the sequence at key. Non-mapping items are
// skipped.
func wrapList[T any](b base, key string, wrap func(*Object) *T) []*T {
	v, _ := lookup(b.raw, key)
	items, _ := v.([]any)
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if o, ok := item.(*Object); ok {
			out = append(out, wrap(o))
		}
	}
	return out
}

// keysOf lists the keys of the section at key in source order. Like
// wrapAll, it leaves out entries that are not mappings.
func keysOf(b base, key string) []string {
	parent := b.object(key)
	if parent == nil {
		return []string{}
	}
	out := make([]string, 0, parent.Len())
	for name, v := range parent.FromOldest() {
		if _, ok := v.(*Object); ok {
			out = append(out, name)
		}
	}
	return out
}
