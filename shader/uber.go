// Package shader assembles item shaders into a single uber shader for
// GPU path rendering. Each registered item shader claims a range of
// shader IDs and is spliced into an embedded WGSL skeleton behind a
// dispatch on the active ID, so one pipeline can draw every item kind
// a renderer batches together.
package shader

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gogpu/naga"
)

// Embedded WGSL sources.

//go:embed shaders/uber_skeleton.wgsl
var skeletonSource string

//go:embed shaders/fill_item.wgsl
var fillItemSource string

//go:embed shaders/stroke_item.wgsl
var strokeItemSource string

// Markers the assembler replaces in the skeleton.
const (
	itemShadersMarker  = "//ITEM_SHADERS"
	itemDispatchMarker = "//ITEM_DISPATCH"
)

var (
	// ErrNoEntry reports an item source that defines no item_main
	// function.
	ErrNoEntry = errors.New("shader: item source defines no item_main")

	// ErrBadSkeleton reports a skeleton without the splice markers.
	ErrBadSkeleton = errors.New("shader: skeleton lacks splice markers")

	// ErrNoItems reports assembly without registered items.
	ErrNoItems = errors.New("shader: no item shaders registered")
)

// ID selects an item shader and sub-shader in the assembled uber
// shader. ID 0 is reserved and never dispatches.
type ID uint32

// ItemShader is one shader to assemble into the uber shader.
type ItemShader struct {
	// Name labels the shader in the assembled source.
	Name string

	// Source is WGSL defining
	//
	//	fn item_main(sub_shader: u32, frag: ItemFrag) -> vec4<f32>
	//
	// where ItemFrag is declared by the skeleton. The assembler
	// renames item_main into the item's ID slot.
	Source string

	// SubShaderCount is the number of consecutive shader IDs the item
	// occupies. The dispatch passes the index within the range to
	// item_main. Zero counts as one.
	SubShaderCount uint32

	// Locals lists identifiers private to Source. The assembler
	// prefixes them so item shaders cannot collide inside the uber
	// namespace.
	Locals []string
}

// FillShader returns the built-in item shader for filled paths: the
// vertex payload is the premultiplied fill color.
func FillShader() ItemShader {
	return ItemShader{
		Name:           "fill",
		Source:         fillItemSource,
		SubShaderCount: 1,
	}
}

// StrokeShader returns the built-in item shader for stroked paths:
// payload xyz is the stroke color, payload w the signed cross-stroke
// coordinate that the shader feathers to edge coverage.
func StrokeShader() ItemShader {
	return ItemShader{
		Name:           "stroke",
		Source:         strokeItemSource,
		SubShaderCount: 1,
		Locals:         []string{"stroke_coverage"},
	}
}

// Option configures an Assembler.
type Option func(*options)

type options struct {
	useSwitch bool
	skeleton  string
}

func defaultOptions() options {
	return options{skeleton: skeletonSource}
}

// WithSwitchDispatch makes the assembler emit the dispatch as a switch
// over every shader ID instead of an if chain over ID ranges.
func WithSwitchDispatch() Option {
	return func(o *options) { o.useSwitch = true }
}

// WithSkeleton replaces the embedded uber skeleton. The replacement
// must carry the same splice markers.
func WithSkeleton(src string) Option {
	return func(o *options) { o.skeleton = src }
}

// Assembler collects item shaders and assembles them into one uber
// shader. IDs are handed out in registration order starting at 1.
type Assembler struct {
	opts  options
	items []registeredItem
	next  ID
}

type registeredItem struct {
	item  ItemShader
	first ID
	count uint32
}

// NewAssembler returns an empty assembler.
func NewAssembler(opts ...Option) *Assembler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Assembler{opts: o, next: 1}
}

var entryPattern = regexp.MustCompile(`\bitem_main\b`)

// Register adds an item shader and returns the first shader ID of its
// range. Sub-shader i of the item dispatches under the returned ID
// plus i.
func (a *Assembler) Register(item ItemShader) (ID, error) {
	if !entryPattern.MatchString(item.Source) {
		return 0, fmt.Errorf("%w: %q", ErrNoEntry, item.Name)
	}
	count := item.SubShaderCount
	if count == 0 {
		count = 1
	}
	first := a.next
	a.next += ID(count)
	a.items = append(a.items, registeredItem{item: item, first: first, count: count})
	return first, nil
}

// Assemble splices the registered items and their dispatch into the
// skeleton and returns the uber WGSL source.
func (a *Assembler) Assemble() (string, error) {
	if len(a.items) == 0 {
		return "", ErrNoItems
	}
	if !strings.Contains(a.opts.skeleton, itemShadersMarker) ||
		!strings.Contains(a.opts.skeleton, itemDispatchMarker) {
		return "", ErrBadSkeleton
	}

	var body strings.Builder
	for _, it := range a.items {
		body.WriteString(renameItem(it))
		body.WriteString("\n")
	}

	out := strings.Replace(a.opts.skeleton, itemShadersMarker, body.String(), 1)
	out = strings.Replace(out, itemDispatchMarker, a.dispatchSource(), 1)
	return out, nil
}

// CompileSPIRV assembles the uber shader and compiles it to SPIR-V
// words.
func (a *Assembler) CompileSPIRV() ([]uint32, error) {
	src, err := a.Assemble()
	if err != nil {
		return nil, err
	}
	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("shader: compile uber shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// renameItem rewrites an item source for its ID slot: item_main gets
// the first ID of the range appended and every listed local gets an
// item prefix.
func renameItem(it registeredItem) string {
	src := entryPattern.ReplaceAllString(it.item.Source, entryFor(it.first))
	for _, local := range it.item.Locals {
		p := regexp.MustCompile(`\b` + regexp.QuoteMeta(local) + `\b`)
		src = p.ReplaceAllString(src, fmt.Sprintf("item%d_%s", it.first, local))
	}
	header := fmt.Sprintf("// item %q, shader ID %d\n", it.item.Name, it.first)
	if it.count > 1 {
		header = fmt.Sprintf("// item %q, shader IDs %d..%d\n",
			it.item.Name, it.first, uint32(it.first)+it.count-1)
	}
	return header + src
}

func entryFor(id ID) string {
	return fmt.Sprintf("item_main_%d", id)
}

func (a *Assembler) dispatchSource() string {
	var b strings.Builder
	b.WriteString("fn item_dispatch(shader: u32, frag: ItemFrag) -> vec4<f32> {\n")
	if a.opts.useSwitch {
		b.WriteString("    switch shader {\n")
		for _, it := range a.items {
			for i := uint32(0); i < it.count; i++ {
				fmt.Fprintf(&b, "        case %du: { return %s(%du, frag); }\n",
					uint32(it.first)+i, entryFor(it.first), i)
			}
		}
		b.WriteString("        default: { return vec4<f32>(0.0, 0.0, 0.0, 0.0); }\n")
		b.WriteString("    }\n")
	} else {
		for _, it := range a.items {
			fmt.Fprintf(&b, "    if (shader >= %du && shader < %du) {\n",
				uint32(it.first), uint32(it.first)+it.count)
			fmt.Fprintf(&b, "        return %s(shader - %du, frag);\n",
				entryFor(it.first), uint32(it.first))
			b.WriteString("    }\n")
		}
		b.WriteString("    return vec4<f32>(0.0, 0.0, 0.0, 0.0);\n")
	}
	b.WriteString("}\n")
	return b.String()
}
