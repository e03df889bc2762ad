package option_test

import (
	"testing"

	"github.com/STBoyden/gobag/option"
	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	o := option.Some(42)

	assert.True(t, o.IsSome())
	assert.False(t, o.IsNone())
	assert.Equal(t, 42, o.Get())
	assert.Equal(t, 42, o.OrElse(7))

	v, ok := o.Value()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestSomeZeroValue(t *testing.T) {
	o := option.Some("")

	assert.True(t, o.IsSome())
	assert.Equal(t, "", o.Get())
}

func TestNone(t *testing.T) {
	o := option.None[string]()

	assert.True(t, o.IsNone())
	assert.False(t, o.IsSome())
	assert.Equal(t, "fallback", o.OrElse("fallback"))
	assert.Panics(t, func() { o.Get() })

	v, ok := o.Value()
	assert.False(t, ok)
	assert.Equal(t, "", v)

	var zero option.Option[int]
	assert.True(t, zero.IsNone())
}
