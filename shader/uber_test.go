package shader

import (
	"errors"
	"strings"
	"testing"
)

const testItemSource = `fn item_main(sub_shader: u32, frag: ItemFrag) -> vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}`

func TestRegisterAllocatesIDRanges(t *testing.T) {
	a := NewAssembler()

	tests := []struct {
		item ItemShader
		want ID
	}{
		{ItemShader{Name: "a", Source: testItemSource, SubShaderCount: 1}, 1},
		{ItemShader{Name: "b", Source: testItemSource, SubShaderCount: 3}, 2},
		{ItemShader{Name: "c", Source: testItemSource}, 5}, // zero count takes one slot
		{ItemShader{Name: "d", Source: testItemSource, SubShaderCount: 1}, 6},
	}

	for _, tt := range tests {
		got, err := a.Register(tt.item)
		if err != nil {
			t.Fatalf("Register(%q) error: %v", tt.item.Name, err)
		}
		if got != tt.want {
			t.Errorf("Register(%q) = %d, want %d", tt.item.Name, got, tt.want)
		}
	}
}

func TestRegisterRequiresEntryPoint(t *testing.T) {
	a := NewAssembler()
	_, err := a.Register(ItemShader{
		Name:   "broken",
		Source: "fn something_else() {}",
	})
	if !errors.Is(err, ErrNoEntry) {
		t.Errorf("Register error = %v, want ErrNoEntry", err)
	}
}

func TestAssembleWithoutItems(t *testing.T) {
	if _, err := NewAssembler().Assemble(); !errors.Is(err, ErrNoItems) {
		t.Errorf("Assemble error = %v, want ErrNoItems", err)
	}
}

func TestAssembleRejectsBadSkeleton(t *testing.T) {
	a := NewAssembler(WithSkeleton("struct ItemFrag {};"))
	if _, err := a.Register(ItemShader{Name: "a", Source: testItemSource}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := a.Assemble(); !errors.Is(err, ErrBadSkeleton) {
		t.Errorf("Assemble error = %v, want ErrBadSkeleton", err)
	}
}

func TestAssembleRenamesEntries(t *testing.T) {
	a := NewAssembler()
	for _, name := range []string{"first", "second"} {
		if _, err := a.Register(ItemShader{Name: name, Source: testItemSource}); err != nil {
			t.Fatalf("Register(%q) error: %v", name, err)
		}
	}

	out, err := a.Assemble()
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if !strings.Contains(out, "fn item_main_1(") {
		t.Error("assembled source lacks item_main_1")
	}
	if !strings.Contains(out, "fn item_main_2(") {
		t.Error("assembled source lacks item_main_2")
	}
	if strings.Contains(out, "fn item_main(") {
		t.Error("assembled source still has an unrenamed item_main")
	}
	if strings.Contains(out, itemShadersMarker) || strings.Contains(out, itemDispatchMarker) {
		t.Error("assembled source still has splice markers")
	}
}

func TestAssemblePrefixesLocals(t *testing.T) {
	src := `fn blend_weight(x: f32) -> f32 { return x; }
fn item_main(sub_shader: u32, frag: ItemFrag) -> vec4<f32> {
    return vec4<f32>(blend_weight(1.0), 0.0, 0.0, 1.0);
}`
	a := NewAssembler()
	if _, err := a.Register(ItemShader{Name: "a", Source: src, Locals: []string{"blend_weight"}}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	out, err := a.Assemble()
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if !strings.Contains(out, "fn item1_blend_weight(") {
		t.Error("local definition not prefixed")
	}
	if !strings.Contains(out, "item1_blend_weight(1.0)") {
		t.Error("local call site not prefixed")
	}
}

func TestAssembleIfChainDispatch(t *testing.T) {
	a := NewAssembler()
	if _, err := a.Register(ItemShader{Name: "a", Source: testItemSource, SubShaderCount: 2}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := a.Register(ItemShader{Name: "b", Source: testItemSource}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	out, err := a.Assemble()
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if !strings.Contains(out, "if (shader >= 1u && shader < 3u)") {
		t.Error("dispatch lacks the first item's range test")
	}
	if !strings.Contains(out, "return item_main_1(shader - 1u, frag);") {
		t.Error("dispatch lacks the first item's call")
	}
	if !strings.Contains(out, "if (shader >= 3u && shader < 4u)") {
		t.Error("dispatch lacks the second item's range test")
	}
	if got := strings.Count(out, "fn item_dispatch("); got != 1 {
		t.Errorf("item_dispatch defined %d times, want 1", got)
	}
}

func TestAssembleSwitchDispatch(t *testing.T) {
	a := NewAssembler(WithSwitchDispatch())
	if _, err := a.Register(ItemShader{Name: "a", Source: testItemSource, SubShaderCount: 2}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	out, err := a.Assemble()
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if !strings.Contains(out, "switch shader {") {
		t.Error("dispatch is not a switch")
	}
	if !strings.Contains(out, "case 1u: { return item_main_1(0u, frag); }") {
		t.Error("switch lacks the first sub-shader case")
	}
	if !strings.Contains(out, "case 2u: { return item_main_1(1u, frag); }") {
		t.Error("switch lacks the second sub-shader case")
	}
	if !strings.Contains(out, "default:") {
		t.Error("switch lacks a default case")
	}
}

func TestBuiltinItemShaders(t *testing.T) {
	a := NewAssembler()
	fillID, err := a.Register(FillShader())
	if err != nil {
		t.Fatalf("Register(FillShader()) error: %v", err)
	}
	strokeID, err := a.Register(StrokeShader())
	if err != nil {
		t.Fatalf("Register(StrokeShader()) error: %v", err)
	}
	if fillID != 1 || strokeID != 2 {
		t.Fatalf("IDs = %d, %d, want 1, 2", fillID, strokeID)
	}

	out, err := a.Assemble()
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if !strings.Contains(out, "fn item_main_1(") || !strings.Contains(out, "fn item_main_2(") {
		t.Error("built-in item entries missing from assembled source")
	}
	if !strings.Contains(out, "item2_stroke_coverage") {
		t.Error("stroke local not prefixed into the uber namespace")
	}
	if !strings.Contains(out, "fn vs_main(") || !strings.Contains(out, "fn fs_main(") {
		t.Error("skeleton entry points missing from assembled source")
	}
}
