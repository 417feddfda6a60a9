package loader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kolah/asyncmodel/asyncapi"
	"go.yaml.in/yaml/v4"
)

var (
	ErrEmptyDocument = errors.New("document is empty")
	ErrNotMapping    = errors.New("document root is not a mapping")
)

type Result struct {
	Document *asyncapi.Document
	Version  string
	Warnings []string
	RawData  []byte
}

func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	return Load(data)
}

// Load decodes a YAML or JSON AsyncAPI document. Key order of every mapping
// is kept. The document is not validated and $ref pointers are left as is.
func Load(data []byte) (*Result, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parsing AsyncAPI document: %w", err)
	}

	root := &node
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return nil, ErrEmptyDocument
	}

	value, err := newConverter().convert(root)
	if err != nil {
		return nil, fmt.Errorf("converting AsyncAPI document: %w", err)
	}
	raw, ok := value.(*asyncapi.Object)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, asyncapi.KindOf(value))
	}

	doc := asyncapi.NewDocument(raw)
	result := &Result{
		Document: doc,
		Version:  doc.Version(),
		RawData:  data,
	}

	switch {
	case result.Version == "":
		result.Warnings = append(result.Warnings, "asyncapi version field missing; document may not be an AsyncAPI spec")
	case !strings.HasPrefix(result.Version, "2."):
		result.Warnings = append(result.Warnings, fmt.Sprintf("AsyncAPI %s detected; accessors follow the 2.x layout", result.Version))
	}

	return result, nil
}
