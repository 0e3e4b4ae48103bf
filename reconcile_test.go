package tui

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeAWidget struct {
	BaseWidget
	value string
}

func (w *fakeAWidget) NodeType() reflect.Type { return reflect.TypeOf((*fakeANode)(nil)) }
func (w *fakeAWidget) Reconcile(existing Node) Node {
	n, _ := existing.(*fakeANode)
	if n == nil {
		n = &fakeANode{}
	}
	n.value = w.value
	return n
}

type fakeANode struct {
	NodeBase
	value string
}

func (n *fakeANode) Children() []Node                         { return nil }
func (n *fakeANode) Measure(c Constraints) Size                { return Size{} }
func (n *fakeANode) Arrange(r Rect)                             { n.SetBounds(r) }
func (n *fakeANode) Render(surf *Surface, ctx *RenderContext) {}

type fakeBWidget struct{ BaseWidget }

func (w *fakeBWidget) NodeType() reflect.Type          { return reflect.TypeOf((*fakeBNode)(nil)) }
func (w *fakeBWidget) Reconcile(existing Node) Node    { return &fakeBNode{} }

type fakeBNode struct{ NodeBase }

func (n *fakeBNode) Children() []Node                         { return nil }
func (n *fakeBNode) Measure(c Constraints) Size                { return Size{} }
func (n *fakeBNode) Arrange(r Rect)                             { n.SetBounds(r) }
func (n *fakeBNode) Render(surf *Surface, ctx *RenderContext) {}

type keyedWidget struct {
	BaseWidget
	key   string
	value string
}

func (w *keyedWidget) NodeType() reflect.Type { return reflect.TypeOf((*fakeANode)(nil)) }
func (w *keyedWidget) Reconcile(existing Node) Node {
	n, _ := existing.(*fakeANode)
	if n == nil {
		n = &fakeANode{}
	}
	n.value = w.value
	return n
}
func (w *keyedWidget) Key() string { return w.key }

func TestReconcile_NilWidgetReturnsEmptyNode(t *testing.T) {
	n := Reconcile(nil, nil)

	assert.IsType(t, &emptyNode{}, n)
}

func TestReconcile_BuildsNewNodeWhenExistingNil(t *testing.T) {
	n := Reconcile(&fakeAWidget{value: "x"}, nil)

	assert.Equal(t, "x", n.(*fakeANode).value)
}

func TestReconcile_ReusesExistingNodeOfMatchingType(t *testing.T) {
	first := Reconcile(&fakeAWidget{value: "x"}, nil)
	second := Reconcile(&fakeAWidget{value: "y"}, first)

	assert.Same(t, first, second)
	assert.Equal(t, "y", second.(*fakeANode).value)
}

func TestReconcile_TypeMismatchSilentlyReplacesNode(t *testing.T) {
	a := Reconcile(&fakeAWidget{value: "x"}, nil)
	b := Reconcile(&fakeBWidget{}, a)

	assert.NotSame(t, a, b)
	assert.IsType(t, &fakeBNode{}, b)
}

func TestReconcile_AppliesSizeHints(t *testing.T) {
	w := &fakeAWidget{BaseWidget: BaseWidget{Hints: SizeHints{Width: Cells(5)}}}

	n := Reconcile(w, nil)

	assert.Equal(t, Cells(5), n.Base().Hints.Width)
}

func TestReconcile_ClearsBindingsWhenWidgetHasNoConfigurator(t *testing.T) {
	w1 := &fakeAWidget{BaseWidget: BaseWidget{Bindings: func(b *BindingSet) { b.OnRune("x", 'x', 0, func() {}) }}}
	n := Reconcile(w1, nil)
	assert.NotNil(t, n.Base().Bindings)

	w2 := &fakeAWidget{}
	n2 := Reconcile(w2, n)

	assert.Nil(t, n2.Base().Bindings)
}

func TestReconcileChildren_PositionalMatchingReusesNodes(t *testing.T) {
	prev := []Node{Reconcile(&fakeAWidget{value: "a"}, nil)}

	out := ReconcileChildren([]Widget{&fakeAWidget{value: "b"}}, prev)

	assert.Same(t, prev[0], out[0])
	assert.Equal(t, "b", out[0].(*fakeANode).value)
}

func TestReconcileChildren_KeyedMatchingSurvivesReorder(t *testing.T) {
	first := Reconcile(&keyedWidget{key: "one", value: "1"}, nil)
	second := Reconcile(&keyedWidget{key: "two", value: "2"}, nil)
	prev := []Node{first, second}
	first.Base().SetKey("one")
	second.Base().SetKey("two")

	out := ReconcileChildren([]Widget{
		&keyedWidget{key: "two", value: "2b"},
		&keyedWidget{key: "one", value: "1b"},
	}, prev)

	assert.Same(t, second, out[0])
	assert.Same(t, first, out[1])
}

func TestReconcileChildren_ExtraNewChildGetsFreshNode(t *testing.T) {
	prev := []Node{Reconcile(&fakeAWidget{value: "only"}, nil)}

	out := ReconcileChildren([]Widget{&fakeAWidget{value: "a"}, &fakeAWidget{value: "b"}}, prev)

	assert.Len(t, out, 2)
	assert.Same(t, prev[0], out[0])
	assert.NotSame(t, prev[0], out[1])
}

func TestReconcileChildren_NilWidgetYieldsEmptyNode(t *testing.T) {
	out := ReconcileChildren([]Widget{nil}, nil)

	assert.IsType(t, &emptyNode{}, out[0])
}
