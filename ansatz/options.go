// SPDX-License-Identifier: MIT

package ansatz

import "go.uber.org/zap"

// Option customizes a Build call.
type Option func(*buildOptions)

// buildOptions is resolved per call and never shared.
type buildOptions struct {
	logger *zap.Logger
}

func newBuildOptions(opts ...Option) buildOptions {
	o := buildOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger routes build diagnostics to l at Debug level.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("ansatz: WithLogger(nil)")
	}
	return func(o *buildOptions) {
		o.logger = l
	}
}
