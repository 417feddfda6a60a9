package loader

import (
	"fmt"

	"github.com/kolah/asyncmodel/asyncapi"
	"go.yaml.in/yaml/v4"
)

const (
	mergeTag     = "!!merge"
	timestampTag = "!!timestamp"
)

// converter turns YAML nodes into raw model values: mappings become ordered
// *asyncapi.Object values, sequences []any and scalars their decoded Go value.
// Anchored nodes are converted once and every alias shares the result, so
// alias fan-out costs nothing and cycles are reported instead of followed.
type converter struct {
	anchors map[*yaml.Node]any
	active  map[*yaml.Node]bool
}

func newConverter() *converter {
	return &converter{
		anchors: make(map[*yaml.Node]any),
		active:  make(map[*yaml.Node]bool),
	}
}

func (c *converter) convert(node *yaml.Node) (any, error) {
	if node.Kind == yaml.AliasNode {
		if node.Alias == nil {
			return nil, fmt.Errorf("line %d: dangling alias *%s", node.Line, node.Value)
		}
		return c.convert(node.Alias)
	}

	if node.Anchor == "" {
		return c.convertNode(node)
	}
	if c.active[node] {
		return nil, fmt.Errorf("line %d: alias cycle through &%s", node.Line, node.Anchor)
	}
	if v, ok := c.anchors[node]; ok {
		return v, nil
	}

	c.active[node] = true
	v, err := c.convertNode(node)
	delete(c.active, node)
	if err != nil {
		return nil, err
	}
	c.anchors[node] = v
	return v, nil
}

func (c *converter) convertNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return c.convert(node.Content[0])
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := c.convert(child)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.MappingNode:
		obj := asyncapi.NewObject()
		if err := c.fillMapping(obj, node); err != nil {
			return nil, err
		}
		return obj, nil
	case yaml.ScalarNode:
		if node.ShortTag() == timestampTag {
			return node.Value, nil
		}
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: decoding %q: %w", node.Line, node.Value, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", node.Line, node.Kind)
	}
}

func (c *converter) fillMapping(obj *asyncapi.Object, node *yaml.Node) error {
	for i := 0; i < len(node.Content)-1; i += 2 {
		key := node.Content[i]
		value := node.Content[i+1]

		if key.Kind == yaml.ScalarNode && key.ShortTag() == mergeTag {
			if err := c.merge(obj, value); err != nil {
				return err
			}
			continue
		}

		v, err := c.convert(value)
		if err != nil {
			return err
		}
		obj.Set(key.Value, v)
	}
	return nil
}

// merge copies the entries of a "<<" source into obj. Keys already set
// explicitly win, as YAML merge semantics require.
func (c *converter) merge(obj *asyncapi.Object, source *yaml.Node) error {
	if source.Kind == yaml.AliasNode && source.Alias != nil && source.Alias.Kind == yaml.SequenceNode {
		source = source.Alias
	}

	var sources []*yaml.Node
	if source.Kind == yaml.SequenceNode {
		sources = source.Content
	} else {
		sources = []*yaml.Node{source}
	}

	for _, s := range sources {
		v, err := c.convert(s)
		if err != nil {
			return err
		}
		merged, ok := v.(*asyncapi.Object)
		if !ok {
			return fmt.Errorf("line %d: merge source is not a mapping", s.Line)
		}
		for k, item := range merged.FromOldest() {
			if _, exists := obj.Get(k); !exists {
				obj.Set(k, item)
			}
		}
	}
	return nil
}
