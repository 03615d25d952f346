package tool

import (
	// Packages
	opt "github.com/mutablelogic/go-wearbot/pkg/opt"
)

// WithToolkit sets a toolkit for generation options.
// The toolkit is stored under opt.ToolkitKey and can be retrieved
// with opts.Get(opt.ToolkitKey) and type-asserted to *Toolkit.
func WithToolkit(toolkit *Toolkit) opt.Opt {
	if toolkit == nil {
		return opt.NoOp()
	}
	return opt.SetAny(opt.ToolkitKey, toolkit)
}

// ToolkitFrom returns the toolkit from applied options, or nil
func ToolkitFrom(o *opt.Options) *Toolkit {
	if o == nil {
		return nil
	}
	tk, _ := o.Get(opt.ToolkitKey).(*Toolkit)
	return tk
}
