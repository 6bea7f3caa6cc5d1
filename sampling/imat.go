package sampling

import (
	"context"

	"github.com/Braden-Griebel/hippotools/imat"
	"github.com/Braden-Griebel/hippotools/model"
)

// SampleIMAT samples the context-specific flux space implied by an iMAT
// solution. The integer program is solved once, the indicator states are
// folded back into reaction bounds, and the resulting continuous
// polytope is sampled with the requested method.
func SampleIMAT(ctx context.Context, m *model.Model, weights map[string]float64, n int, method Method, imatOpts []imat.Option, opts ...Option) (*Samples, error) {
	res, err := imat.Optimize(ctx, m, weights, imatOpts...)
	if err != nil {
		return nil, err
	}
	ctxModel, err := imat.ApplyResult(m, res, imat.EnforceBoth, imatOpts...)
	if err != nil {
		return nil, err
	}

	return Sample(ctx, ctxModel, n, method, opts...)
}
