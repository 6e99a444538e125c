package menu

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec is wrapped by spec parsing errors.
var ErrInvalidSpec = errors.New("invalid menu spec")

// Entry is one labeled item of a Spec.
type Entry struct {
	Label string
	Item  Item
}

// Spec is an ordered mapping from label to item. The order of insertion is
// the visual order. Labels are unique within a level.
type Spec struct {
	entries []Entry
	index   map[string]int
}

// NewSpec returns an empty spec.
func NewSpec() *Spec {
	return &Spec{index: map[string]int{}}
}

// Add appends an item. Adding an existing label replaces that item in place.
func (s *Spec) Add(label string, item Item) *Spec {
	if s.index == nil {
		s.index = map[string]int{}
	}
	if i, ok := s.index[label]; ok {
		s.entries[i].Item = item
		return s
	}
	s.index[label] = len(s.entries)
	s.entries = append(s.entries, Entry{Label: label, Item: item})
	return s
}

// Get returns the item with the given label.
func (s *Spec) Get(label string) (Item, bool) {
	if s == nil {
		return Item{}, false
	}
	i, ok := s.index[label]
	if !ok {
		return Item{}, false
	}
	return s.entries[i].Item, true
}

// Entries returns the items in order.
func (s *Spec) Entries() []Entry {
	if s == nil {
		return nil
	}
	return s.entries
}

// Len returns the number of items.
func (s *Spec) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Labels returns the labels in order.
func (s *Spec) Labels() []string {
	out := make([]string, 0, s.Len())
	for _, e := range s.Entries() {
		out = append(out, e.Label)
	}
	return out
}

// Walk calls fn for every item, parents before children. path holds the
// labels leading to the item, the item's own label last.
func (s *Spec) Walk(fn func(path []string, item Item)) {
	s.walk(nil, fn)
}

func (s *Spec) walk(prefix []string, fn func([]string, Item)) {
	for _, e := range s.Entries() {
		path := append(append([]string(nil), prefix...), e.Label)
		fn(path, e.Item)
		if e.Item.Kind == KindCategory && e.Item.Children != nil {
			e.Item.Children.walk(path, fn)
		}
	}
}

// Actions returns the distinct action names referenced by the spec, in order
// of first use.
func (s *Spec) Actions() []string {
	var out []string
	seen := map[string]bool{}
	s.Walk(func(_ []string, item Item) {
		if item.Action != "" && !seen[item.Action] {
			seen[item.Action] = true
			out = append(out, item.Action)
		}
	})
	return out
}

// UnmarshalYAML decodes a mapping node keeping key order.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: menu must be a mapping of label to item", ErrInvalidSpec, node.Line)
	}
	*s = Spec{index: map[string]int{}}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		var item Item
		if err := value.Decode(&item); err != nil {
			return fmt.Errorf("%w: item %q: %w", ErrInvalidSpec, key.Value, err)
		}
		s.Add(key.Value, item)
	}
	return nil
}

// ParseSpec decodes a menu description. YAML and JSON are both accepted.
func ParseSpec(data []byte) (*Spec, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidSpec)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidSpec)
	}
	s := NewSpec()
	if err := s.UnmarshalYAML(root.Content[0]); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadSpec reads and parses the menu file at path.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu %s: %w", path, err)
	}
	return ParseSpec(data)
}
