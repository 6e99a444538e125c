package menu

import "gopkg.in/yaml.v3"

// Kind is the type of a menu item.
type Kind int

const (
	// KindUnknown marks an item without a recognized type. The builder drops
	// such items.
	KindUnknown Kind = iota
	// KindFunction runs a callback when activated.
	KindFunction
	// KindCategory opens a submenu on hover.
	KindCategory
	// KindSeparator draws a divider.
	KindSeparator
)

// String returns the name used in menu files and as CSS class.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindCategory:
		return "category"
	case KindSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// ParseKind maps a type name to a Kind. Unrecognized names give KindUnknown.
func ParseKind(s string) Kind {
	switch s {
	case "function":
		return KindFunction
	case "category":
		return KindCategory
	case "separator":
		return KindSeparator
	default:
		return KindUnknown
	}
}

// Item describes one entry of a menu level.
type Item struct {
	Kind Kind

	// Icon is the glyph name shown before the label.
	Icon string
	// IconClass overrides the configured icon library for this item.
	IconClass string
	// Condition, when set to false, shows the item disabled. Nil means true.
	Condition *bool

	// Run is called when a function item is activated.
	Run func()
	// Action names a callback bound at open time with WithActions. It is used
	// when Run is nil.
	Action string
	// Toggle, when set, shows a checkbox glyph reflecting the value.
	Toggle *bool

	// Children is the submenu of a category item.
	Children *Spec
}

// Enabled reports whether the item's condition holds.
func (i Item) Enabled() bool {
	return i.Condition == nil || *i.Condition
}

// ItemOption configures an Item.
type ItemOption func(*Item)

// WithIcon sets the item glyph.
func WithIcon(name string) ItemOption {
	return func(i *Item) { i.Icon = name }
}

// WithIconClass sets the icon library of the item.
func WithIconClass(class string) ItemOption {
	return func(i *Item) { i.IconClass = class }
}

// WithCondition enables or disables the item.
func WithCondition(ok bool) ItemOption {
	return func(i *Item) { i.Condition = &ok }
}

// WithToggle shows a checkbox glyph.
func WithToggle(on bool) ItemOption {
	return func(i *Item) { i.Toggle = &on }
}

// Function returns an item running run when activated.
func Function(run func(), opts ...ItemOption) Item {
	return newItem(Item{Kind: KindFunction, Run: run}, opts)
}

// Action returns a function item bound by name at open time.
func Action(name string, opts ...ItemOption) Item {
	return newItem(Item{Kind: KindFunction, Action: name}, opts)
}

// Category returns an item opening children as a submenu.
func Category(children *Spec, opts ...ItemOption) Item {
	return newItem(Item{Kind: KindCategory, Children: children}, opts)
}

// Separator returns a divider.
func Separator() Item {
	return Item{Kind: KindSeparator}
}

func newItem(i Item, opts []ItemOption) Item {
	for _, opt := range opts {
		opt(&i)
	}
	return i
}

// itemFile is the on-disk shape of an item.
type itemFile struct {
	Type      string `yaml:"type"`
	Icon      string `yaml:"icon"`
	IconClass string `yaml:"iconClass"`
	Condition *bool  `yaml:"condition"`
	Action    string `yaml:"action"`
	Toggle    *bool  `yaml:"toggle"`
	Children  *Spec  `yaml:"children"`
}

// UnmarshalYAML decodes an item from a mapping node.
func (i *Item) UnmarshalYAML(node *yaml.Node) error {
	var f itemFile
	if err := node.Decode(&f); err != nil {
		return err
	}
	*i = Item{
		Kind:      ParseKind(f.Type),
		Icon:      f.Icon,
		IconClass: f.IconClass,
		Condition: f.Condition,
		Action:    f.Action,
		Toggle:    f.Toggle,
		Children:  f.Children,
	}
	return nil
}
