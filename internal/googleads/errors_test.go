package googleads

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int64) *int64 { return &i }

func TestNormalize(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		details, _ := json.Marshal(map[string]any{
			"policyViolationDetails": map[string]any{
				"externalPolicyName": "Trademarks in ad text",
			},
			"reason": "TRADEMARK",
		})
		apiErr := &APIError{
			StatusCode: 400,
			Status:     "INVALID_ARGUMENT",
			Message:    "The request contains errors.",
			Failure: &Failure{
				RequestID: "req-123",
				Errors: []ErrorItem{{
					ErrorCode: map[string]string{"policyFindingError": "POLICY_FINDING"},
					Message:   "Policy finding.",
					Trigger:   &ErrorValue{StringValue: "BrandName"},
					Location: &ErrorLocation{FieldPathElements: []FieldPathElement{
						{FieldName: "operations", Index: intPtr(0)},
						{FieldName: "create"},
						{FieldName: "ad"},
					}},
					Details: details,
				}},
			},
		}

		n := Normalize(apiErr, "Ad", "camp-1", "ad-7")

		assert.Equal(t, "req-123", n.RequestID)
		assert.Equal(t, "INVALID_ARGUMENT", n.Code)
		// policy display name wins over the generic top-level message
		assert.Equal(t, "Trademarks in ad text", n.Message)
		assert.Equal(t, []string{"operations", "create", "ad"}, n.Fields)
		assert.Equal(t, "Ad", n.ClassName)
		assert.Equal(t, "camp-1", n.EntityID)
		assert.Equal(t, "ad-7", n.RelatedID)
		require.NotNil(t, n.Trigger)
		assert.Equal(t, "BrandName", *n.Trigger)
		require.Len(t, n.Location, 3)

		// details keys come out sorted
		want := []ErrorDetail{
			{Type: "policyViolationDetails", Value: "map[externalPolicyName:Trademarks in ad text]"},
			{Type: "reason", Value: "TRADEMARK"},
		}
		if diff := cmp.Diff(want, n.Details); diff != "" {
			t.Errorf("details mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no failure payload falls back to top-level message", func(t *testing.T) {
		apiErr := &APIError{
			StatusCode: 500,
			Status:     "INTERNAL",
			Message:    "backend unavailable",
			RequestID:  "hdr-req",
		}
		n := Normalize(apiErr, "Keyword", "camp-1", "")

		assert.Equal(t, "hdr-req", n.RequestID)
		assert.Equal(t, "backend unavailable", n.Message)
		assert.Equal(t, []string{}, n.Fields)
		assert.Equal(t, []ErrorDetail{}, n.Details)
		assert.Nil(t, n.Trigger)
		assert.Nil(t, n.Location)
	})

	t.Run("missing location yields empty fields", func(t *testing.T) {
		apiErr := &APIError{
			Status: "INVALID_ARGUMENT",
			Failure: &Failure{Errors: []ErrorItem{{
				Message: "something broke",
			}}},
		}
		n := Normalize(apiErr, "Ad", "c", "r")
		assert.Equal(t, []string{}, n.Fields)
		// no top-level message: first error's own message is the fallback
		assert.Equal(t, "something broke", n.Message)
	})

	t.Run("malformed details never block other tiers", func(t *testing.T) {
		apiErr := &APIError{
			Status:  "INVALID_ARGUMENT",
			Message: "top-level",
			Failure: &Failure{Errors: []ErrorItem{{
				Message: "item message",
				Details: json.RawMessage(`["not", "a", "map"]`),
				Location: &ErrorLocation{FieldPathElements: []FieldPathElement{
					{FieldName: "operations"},
				}},
			}}},
		}
		n := Normalize(apiErr, "Ad", "c", "r")
		assert.Equal(t, "top-level", n.Message)
		assert.Equal(t, []string{"operations"}, n.Fields)
		assert.Equal(t, []ErrorDetail{}, n.Details)
	})

	t.Run("fields flatten across all errors, details read only the first", func(t *testing.T) {
		d0, _ := json.Marshal(map[string]any{"reason": "FIRST"})
		d1, _ := json.Marshal(map[string]any{"reason": "SECOND"})
		apiErr := &APIError{
			Status:  "INVALID_ARGUMENT",
			Message: "multi",
			Failure: &Failure{Errors: []ErrorItem{
				{
					Details: d0,
					Location: &ErrorLocation{FieldPathElements: []FieldPathElement{
						{FieldName: "operations"}, {FieldName: "create"},
					}},
				},
				{
					Details: d1,
					Location: &ErrorLocation{FieldPathElements: []FieldPathElement{
						{FieldName: "update"},
					}},
				},
			}},
		}
		n := Normalize(apiErr, "Ad", "c", "r")
		assert.Equal(t, []string{"operations", "create", "update"}, n.Fields)
		require.Len(t, n.Details, 1)
		assert.Equal(t, "FIRST", n.Details[0].Value)
	})

	t.Run("request id prefers the failure payload", func(t *testing.T) {
		apiErr := &APIError{
			RequestID: "header-id",
			Failure:   &Failure{RequestID: "payload-id"},
		}
		n := Normalize(apiErr, "Ad", "c", "r")
		assert.Equal(t, "payload-id", n.RequestID)
	})
}

func TestAPIErrorMessage(t *testing.T) {
	withFailure := &APIError{
		Status:  "INVALID_ARGUMENT",
		Failure: &Failure{Errors: []ErrorItem{{Message: "bad keyword"}}},
	}
	assert.Contains(t, withFailure.Error(), "bad keyword")

	bare := &APIError{Status: "INTERNAL", Message: "oops"}
	assert.Contains(t, bare.Error(), "oops")
}
