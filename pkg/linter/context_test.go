package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, 0, ctx.Len())

	ctx.Set("seen-document-start", true)
	v, ok := ctx.Get("seen-document-start")
	assert.True(t, ok)
	assert.Equal(t, true, v)

	ctx.Delete("seen-document-start")
	_, ok = ctx.Get("seen-document-start")
	assert.False(t, ok)
}

func TestContext_Namespace(t *testing.T) {
	ctx := NewContext()
	a := ctx.Namespace("rule-a")
	b := ctx.Namespace("rule-b")

	a.Set("depth", 1)
	b.Set("depth", 2)

	depth, ok := Load[int](a, "depth")
	assert.True(t, ok)
	assert.Equal(t, 1, depth)

	depth, ok = Load[int](b, "depth")
	assert.True(t, ok)
	assert.Equal(t, 2, depth)

	// namespaced keys live in the shared map
	raw, ok := ctx.Get("rule-a/depth")
	assert.True(t, ok)
	assert.Equal(t, 1, raw)
	assert.Equal(t, 2, ctx.Len())

	a.Delete("depth")
	_, ok = a.Get("depth")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	ctx := NewContext()
	ctx.Set("stack", []string{"map"})

	stack, ok := Load[[]string](ctx, "stack")
	assert.True(t, ok)
	assert.Equal(t, []string{"map"}, stack)

	_, ok = Load[int](ctx, "stack")
	assert.False(t, ok, "wrong type")

	n, ok := Load[int](ctx, "missing")
	assert.False(t, ok)
	assert.Zero(t, n)
}
