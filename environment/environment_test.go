/*
File    : lumen/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lumen/object"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("a", object.Number{Value: 1})

	value, ok := env.Get("a")
	assert.True(t, ok)
	assert.Equal(t, object.Number{Value: 1}, value)
}

func TestGet_FallsThroughToParent(t *testing.T) {
	parent := New(nil)
	parent.Define("a", object.Number{Value: 1})
	child := New(parent)

	value, ok := child.Get("a")
	assert.True(t, ok)
	assert.Equal(t, object.Number{Value: 1}, value)
}

func TestGet_UndeclaredNameFails(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestAssign_UpdatesDefiningScopeNotCaller(t *testing.T) {
	parent := New(nil)
	parent.Define("a", object.Number{Value: 1})
	child := New(parent)

	ok := child.Assign("a", object.Number{Value: 2})
	assert.True(t, ok)

	_, declaredInChild := child.Variables["a"]
	assert.False(t, declaredInChild)

	value, _ := parent.Get("a")
	assert.Equal(t, object.Number{Value: 2}, value)
}

func TestAssign_UndeclaredNameFails(t *testing.T) {
	env := New(nil)
	ok := env.Assign("missing", object.Number{Value: 1})
	assert.False(t, ok)
}

func TestGetAtAndAssignAt_UseDistanceNotSearch(t *testing.T) {
	global := New(nil)
	global.Define("a", object.Number{Value: 0})
	middle := New(global)
	inner := New(middle)
	inner.Define("a", object.Number{Value: 99})

	// distance 0 finds inner's own shadowing binding.
	value, ok := inner.GetAt(0, "a")
	assert.True(t, ok)
	assert.Equal(t, object.Number{Value: 99}, value)

	// distance 2 skips past the shadow to the global binding.
	value, ok = inner.GetAt(2, "a")
	assert.True(t, ok)
	assert.Equal(t, object.Number{Value: 0}, value)

	inner.AssignAt(2, "a", object.Number{Value: 7})
	value, _ = global.Get("a")
	assert.Equal(t, object.Number{Value: 7}, value)
}
