package shaderreg

import "github.com/gogpu/shaderreg/shader"

// Option configures a Context during creation.
//
// Example:
//
//	// Two contexts drawing from one ID space:
//	ids := shader.NewAllocator()
//	a := shaderreg.NewContext(shaderreg.WithAllocator(ids))
//	b := shaderreg.NewContext(shaderreg.WithAllocator(ids))
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	ids   *shader.Allocator
	group uint32
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{
		ids:   nil, // Will be created if nil
		group: shader.DefaultBindGroup,
	}
}

// WithAllocator makes the Context allocate IDs from ids instead of its own
// Allocator. Contexts sharing an Allocator never hand out the same ID.
func WithAllocator(ids *shader.Allocator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// WithBindGroup sets the bind group index used for generated uniform
// declarations. The default is shader.DefaultBindGroup (3).
func WithBindGroup(group uint32) Option {
	return func(o *options) {
		o.group = group
	}
}
