package googleads

import (
	"context"
	"fmt"

	"adpilot/internal/logging"
)

// Correlation pairs a local entity with the remote resource it produced.
type Correlation struct {
	LocalID      int64
	ResourceName string
	RemoteID     string
}

// BatchResult holds one correlation per submitted operation, same order.
type BatchResult []Correlation

// Correlator submits a batch of uniform operations and zips local identifiers
// against remote resource names by strict position. It holds no mutable
// state and is safe to share.
type Correlator struct {
	svc MutateService
}

// NewCorrelator wraps a mutate transport.
func NewCorrelator(svc MutateService) *Correlator {
	return &Correlator{svc: svc}
}

// Execute runs one atomic mutate call. localIDs must be positionally aligned
// with ops; len(result) == len(ops) on success. An empty batch is a no-op
// that never reaches the network. The returned error, when remote, is an
// *APIError describing the whole batch; there is no partial success.
func (c *Correlator) Execute(ctx context.Context, customerID string, ops []Operation, localIDs []int64) (BatchResult, error) {
	if len(ops) == 0 {
		return BatchResult{}, nil
	}
	if len(localIDs) != len(ops) {
		return nil, fmt.Errorf("googleads: %d local ids for %d operations", len(localIDs), len(ops))
	}
	kind := ops[0].Kind()
	for i, op := range ops {
		if op.Kind() != kind {
			return nil, fmt.Errorf("googleads: mixed-kind batch: operation %d is %s, expected %s", i, op.Kind(), kind)
		}
	}

	resp, err := c.svc.Mutate(ctx, customerID, kind, ops)
	if err != nil {
		return nil, err
	}

	// The mutate contract is one result per operation, same order. Anything
	// else means the platform changed its semantics underneath us.
	if len(resp.Results) != len(ops) {
		panic(fmt.Sprintf("googleads: mutate %s returned %d results for %d operations", kind, len(resp.Results), len(ops)))
	}

	result := make(BatchResult, len(ops))
	for i, r := range resp.Results {
		result[i] = Correlation{
			LocalID:      localIDs[i],
			ResourceName: r.ResourceName,
			RemoteID:     ExtractID(kind, r.ResourceName),
		}
	}
	logging.Batch("correlated %d %s operations for customer %s", len(result), kind, customerID)
	return result, nil
}
