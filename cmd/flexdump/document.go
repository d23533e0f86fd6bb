package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-flex"
)

// document is one YAML file: a root node plus an optional precision.
type document struct {
	Precision float64 `yaml:"precision"`
	nodeSpec  `yaml:",inline"`
}

// nodeSpec declares one node. Style values are passed to SetProperty as
// decoded: numbers, "auto", percent strings, enum labels or null.
type nodeSpec struct {
	Name     string         `yaml:"name"`
	Order    int            `yaml:"order"`
	Style    map[string]any `yaml:"style"`
	Children []nodeSpec     `yaml:"children"`
}

// tree is a built node tree with the names used for reporting.
type tree struct {
	root  *flex.Node
	names map[*flex.Node]string
}

func loadDocument(path string, defaultPrecision float64) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return parseDocument(data, defaultPrecision)
}

func parseDocument(data []byte, defaultPrecision float64) (*document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc.Precision == 0 {
		doc.Precision = defaultPrecision
	}
	if doc.Name == "" {
		doc.Name = "root"
	}
	return &doc, nil
}

// build creates the flex nodes for doc. On error every node created so far
// is destroyed.
func (doc *document) build() (*tree, error) {
	t := &tree{names: make(map[*flex.Node]string)}
	root, err := t.buildNode(doc.nodeSpec, doc.Precision, doc.Name)
	if err != nil {
		t.destroy()
		return nil, err
	}
	t.root = root
	return t, nil
}

func (t *tree) buildNode(spec nodeSpec, precision float64, path string) (*flex.Node, error) {
	n, err := flex.New(precision,
		flex.WithOrderIndex(spec.Order),
		flex.WithProperties(spec.Style),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.names[n] = spec.Name

	for i, childSpec := range spec.Children {
		name := childSpec.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			childSpec.Name = name
		}
		child, err := t.buildNode(childSpec, precision, path+"/"+name)
		if err != nil {
			return nil, err
		}
		if err := n.InsertChild(child); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return n, nil
}

func (t *tree) destroy() {
	for n := range t.names {
		n.Destroy()
	}
}
