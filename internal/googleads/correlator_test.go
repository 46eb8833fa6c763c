package googleads

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMutateService records calls and plays back a canned response.
type mockMutateService struct {
	calls     int
	gotKind   ResourceKind
	gotOps    []Operation
	gotCustID string

	resp *MutateResponse
	err  error
}

func (m *mockMutateService) Mutate(ctx context.Context, customerID string, kind ResourceKind, ops []Operation) (*MutateResponse, error) {
	m.calls++
	m.gotCustID = customerID
	m.gotKind = kind
	m.gotOps = ops
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

// adGroupResponse fabricates n ad group results with sequential IDs.
func adGroupResponse(n int) *MutateResponse {
	resp := &MutateResponse{}
	for i := 0; i < n; i++ {
		resp.Results = append(resp.Results, MutateResult{
			ResourceName: fmt.Sprintf("customers/1/adGroups/%d", 100+i),
		})
	}
	return resp
}

func TestCorrelatorExecute(t *testing.T) {
	t.Run("zips local ids positionally", func(t *testing.T) {
		svc := &mockMutateService{resp: adGroupResponse(3)}
		c := NewCorrelator(svc)

		ops := []Operation{
			NewCreate(KindAdGroup, AdGroup{Name: "a"}),
			NewCreate(KindAdGroup, AdGroup{Name: "b"}),
			NewCreate(KindAdGroup, AdGroup{Name: "c"}),
		}
		result, err := c.Execute(context.Background(), "1", ops, []int64{11, 22, 33})
		require.NoError(t, err)
		require.Len(t, result, 3)

		assert.Equal(t, int64(11), result[0].LocalID)
		assert.Equal(t, "100", result[0].RemoteID)
		assert.Equal(t, int64(22), result[1].LocalID)
		assert.Equal(t, "101", result[1].RemoteID)
		assert.Equal(t, int64(33), result[2].LocalID)
		assert.Equal(t, "102", result[2].RemoteID)
		assert.Equal(t, "customers/1/adGroups/102", result[2].ResourceName)
	})

	t.Run("empty batch never reaches the network", func(t *testing.T) {
		svc := &mockMutateService{}
		c := NewCorrelator(svc)

		result, err := c.Execute(context.Background(), "1", nil, nil)
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("rejects misaligned local ids", func(t *testing.T) {
		svc := &mockMutateService{resp: adGroupResponse(2)}
		c := NewCorrelator(svc)

		ops := []Operation{
			NewCreate(KindAdGroup, AdGroup{Name: "a"}),
			NewCreate(KindAdGroup, AdGroup{Name: "b"}),
		}
		_, err := c.Execute(context.Background(), "1", ops, []int64{1})
		require.Error(t, err)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("rejects mixed-kind batch before the network", func(t *testing.T) {
		svc := &mockMutateService{resp: adGroupResponse(2)}
		c := NewCorrelator(svc)

		ops := []Operation{
			NewCreate(KindAdGroup, AdGroup{Name: "a"}),
			NewCreate(KindAd, Ad{}),
		}
		_, err := c.Execute(context.Background(), "1", ops, []int64{1, 2})
		require.Error(t, err)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("remote error passes through untouched", func(t *testing.T) {
		apiErr := &APIError{StatusCode: 400, Status: "INVALID_ARGUMENT"}
		svc := &mockMutateService{err: apiErr}
		c := NewCorrelator(svc)

		ops := []Operation{NewCreate(KindAdGroup, AdGroup{Name: "a"})}
		result, err := c.Execute(context.Background(), "1", ops, []int64{1})
		assert.Nil(t, result)
		assert.Same(t, apiErr, err)
	})

	t.Run("result count mismatch panics", func(t *testing.T) {
		svc := &mockMutateService{resp: adGroupResponse(1)}
		c := NewCorrelator(svc)

		ops := []Operation{
			NewCreate(KindAdGroup, AdGroup{Name: "a"}),
			NewCreate(KindAdGroup, AdGroup{Name: "b"}),
		}
		assert.Panics(t, func() {
			_, _ = c.Execute(context.Background(), "1", ops, []int64{1, 2})
		})
	})
}
