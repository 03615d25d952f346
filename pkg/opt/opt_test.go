package opt_test

import (
	"errors"
	"testing"

	// Packages
	opt "github.com/mutablelogic/go-wearbot/pkg/opt"
	assert "github.com/stretchr/testify/assert"
)

func TestApplyEmpty(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply()
	assert.NoError(err)
	assert.NotNil(opts)
	assert.False(opts.Has("missing"))
}

func TestApplyNil(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(nil, opt.NoOp())
	assert.NoError(err)
	assert.NotNil(opts)
}

func TestStringOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetString("key", " value "))
	assert.NoError(err)
	assert.True(opts.Has("key"))
	assert.Equal("value", opts.GetString("key"))
	assert.Empty(opts.GetString("missing"))

	opts, err = opt.Apply(opt.SetString("key", "a"), opt.SetString("key", "b"))
	assert.NoError(err)
	assert.Equal([]string{"b"}, opts.Values["key"])
}

func TestUintOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetUint("limit", 10))
	assert.NoError(err)
	assert.Equal(uint(10), opts.GetUint("limit"))
	assert.Equal(uint(0), opts.GetUint("missing"))
}

func TestFloatOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetFloat64("score", 1.5))
	assert.NoError(err)
	assert.InDelta(1.5, opts.GetFloat64("score"), 1e-9)
	assert.Equal("1.5", opts.GetString("score"))
}

func TestAnyOptions(t *testing.T) {
	assert := assert.New(t)
	v := struct{ Name string }{"toolkit"}
	opts, err := opt.Apply(opt.SetAny(opt.ToolkitKey, v))
	assert.NoError(err)
	assert.True(opts.Has(opt.ToolkitKey))
	assert.Equal(v, opts.Get(opt.ToolkitKey))
	assert.Empty(opts.GetString(opt.ToolkitKey))

	opts, err = opt.Apply(opt.SetAny(opt.ToolkitKey, v), opt.SetAny(opt.ToolkitKey, nil))
	assert.NoError(err)
	assert.False(opts.Has(opt.ToolkitKey))
}

func TestErrorOption(t *testing.T) {
	assert := assert.New(t)
	want := errors.New("boom")
	opts, err := opt.Apply(opt.SetString("a", "b"), opt.Error(want))
	assert.ErrorIs(err, want)
	assert.Nil(opts)
}
