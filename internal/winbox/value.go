package winbox

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/1broseidon/winbox/internal/geom"
)

var (
	// ErrUnknownProperty is returned for property names not in Properties.
	ErrUnknownProperty = errors.New("winbox: unknown property")
	// ErrValueKind is returned when a value does not match the property kind.
	ErrValueKind = errors.New("winbox: value kind does not match property")
)

// Kind is the shape of a property value.
type Kind int

const (
	KindInt Kind = iota
	KindPoint
	KindSize
	KindBox
	KindRect
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindPoint:
		return "point"
	case KindSize:
		return "size"
	case KindBox:
		return "box"
	case KindRect:
		return "rect"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// arity is the number of integers in the textual form of a kind.
func (k Kind) arity() int {
	switch k {
	case KindPoint, KindSize:
		return 2
	case KindBox, KindRect:
		return 4
	}
	return 1
}

// Value holds a property value of any kind. Only the field matching Kind is
// meaningful.
type Value struct {
	Kind  Kind
	Int   int
	Point geom.Point
	Size  geom.Size
	Box   geom.Box
	Rect  geom.Rect
}

func IntValue(v int) Value          { return Value{Kind: KindInt, Int: v} }
func PointValue(p geom.Point) Value { return Value{Kind: KindPoint, Point: p} }
func SizeValue(s geom.Size) Value   { return Value{Kind: KindSize, Size: s} }
func BoxValue(b geom.Box) Value     { return Value{Kind: KindBox, Box: b} }
func RectValue(r geom.Rect) Value   { return Value{Kind: KindRect, Rect: r} }

// Any returns the kind-specific payload, suitable for JSON encoding.
func (v Value) Any() any {
	switch v.Kind {
	case KindPoint:
		return v.Point
	case KindSize:
		return v.Size
	case KindBox:
		return v.Box
	case KindRect:
		return v.Rect
	}
	return v.Int
}

func (v Value) String() string {
	if v.Kind == KindInt {
		return strconv.Itoa(v.Int)
	}
	return fmt.Sprint(v.Any())
}

// ParseValue parses the comma separated form of a value: "n", "x,y",
// "w,h" or "l,t,w,h" / "l,t,r,b". Parentheses and spaces are ignored.
func ParseValue(kind Kind, s string) (Value, error) {
	s = strings.Trim(strings.TrimSpace(s), "()")
	fields := strings.Split(s, ",")
	if len(fields) != kind.arity() {
		return Value{}, fmt.Errorf("%w: %s needs %d comma separated integers, got %q", ErrValueKind, kind, kind.arity(), s)
	}
	n := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not an integer", ErrValueKind, f)
		}
		n[i] = v
	}

	switch kind {
	case KindPoint:
		return PointValue(geom.Point{X: n[0], Y: n[1]}), nil
	case KindSize:
		return SizeValue(geom.Size{Width: n[0], Height: n[1]}), nil
	case KindBox:
		return BoxValue(geom.Box{Left: n[0], Top: n[1], Width: n[2], Height: n[3]}), nil
	case KindRect:
		return RectValue(geom.Rect{Left: n[0], Top: n[1], Right: n[2], Bottom: n[3]}), nil
	}
	return IntValue(n[0]), nil
}

// PropertyInfo describes one named property.
type PropertyInfo struct {
	Name string `json:"name"`
	Kind Kind   `json:"-"`
}

type property struct {
	PropertyInfo
	get func(*Controller) Value
	set func(*Controller, Value)
}

func intProp(name string, get func(*Controller) int, set func(*Controller, int)) property {
	return property{
		PropertyInfo: PropertyInfo{Name: name, Kind: KindInt},
		get:          func(c *Controller) Value { return IntValue(get(c)) },
		set:          func(c *Controller, v Value) { set(c, v.Int) },
	}
}

func pointProp(name string, get func(*Controller) geom.Point, set func(*Controller, geom.Point)) property {
	return property{
		PropertyInfo: PropertyInfo{Name: name, Kind: KindPoint},
		get:          func(c *Controller) Value { return PointValue(get(c)) },
		set:          func(c *Controller, v Value) { set(c, v.Point) },
	}
}

var properties = []property{
	intProp("left", (*Controller).Left, (*Controller).SetLeft),
	intProp("right", (*Controller).Right, (*Controller).SetRight),
	intProp("top", (*Controller).Top, (*Controller).SetTop),
	intProp("bottom", (*Controller).Bottom, (*Controller).SetBottom),
	intProp("width", (*Controller).Width, (*Controller).SetWidth),
	intProp("height", (*Controller).Height, (*Controller).SetHeight),
	pointProp("position", (*Controller).Position, (*Controller).SetPosition),
	{
		PropertyInfo: PropertyInfo{Name: "size", Kind: KindSize},
		get:          func(c *Controller) Value { return SizeValue(c.Size()) },
		set:          func(c *Controller, v Value) { c.SetSize(v.Size) },
	},
	{
		PropertyInfo: PropertyInfo{Name: "box", Kind: KindBox},
		get:          func(c *Controller) Value { return BoxValue(c.Box()) },
		set:          func(c *Controller, v Value) { c.SetBox(v.Box) },
	},
	{
		PropertyInfo: PropertyInfo{Name: "rect", Kind: KindRect},
		get:          func(c *Controller) Value { return RectValue(c.Rect()) },
		set:          func(c *Controller, v Value) { c.SetRect(v.Rect) },
	},
	pointProp("topleft", (*Controller).TopLeft, (*Controller).SetTopLeft),
	pointProp("bottomleft", (*Controller).BottomLeft, (*Controller).SetBottomLeft),
	pointProp("topright", (*Controller).TopRight, (*Controller).SetTopRight),
	pointProp("bottomright", (*Controller).BottomRight, (*Controller).SetBottomRight),
	pointProp("midtop", (*Controller).MidTop, (*Controller).SetMidTop),
	pointProp("midbottom", (*Controller).MidBottom, (*Controller).SetMidBottom),
	pointProp("midleft", (*Controller).MidLeft, (*Controller).SetMidLeft),
	pointProp("midright", (*Controller).MidRight, (*Controller).SetMidRight),
	pointProp("center", (*Controller).Center, (*Controller).SetCenter),
	intProp("centerx", (*Controller).CenterX, (*Controller).SetCenterX),
	intProp("centery", (*Controller).CenterY, (*Controller).SetCenterY),
}

// Properties lists every named property in a stable order.
func Properties() []PropertyInfo {
	out := make([]PropertyInfo, len(properties))
	for i, p := range properties {
		out[i] = p.PropertyInfo
	}
	return out
}

func lookup(name string) (property, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "", "-", "").Replace(key)
	for _, p := range properties {
		if p.Name == key {
			return p, nil
		}
	}
	return property{}, fmt.Errorf("%w %q", ErrUnknownProperty, name)
}

// PropertyKind returns the value kind of a named property.
func PropertyKind(name string) (Kind, error) {
	p, err := lookup(name)
	if err != nil {
		return 0, err
	}
	return p.Kind, nil
}

// Get reads a property by name. Names are case-insensitive and ignore
// underscores and dashes ("center_x" is "centerx").
func (c *Controller) Get(name string) (Value, error) {
	p, err := lookup(name)
	if err != nil {
		return Value{}, err
	}
	return p.get(c), nil
}

// Set writes a property by name.
func (c *Controller) Set(name string, v Value) error {
	p, err := lookup(name)
	if err != nil {
		return err
	}
	if v.Kind != p.Kind {
		return fmt.Errorf("%w: %s is %s, got %s", ErrValueKind, p.Name, p.Kind, v.Kind)
	}
	p.set(c, v)
	return nil
}
