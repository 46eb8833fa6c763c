package googleads

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ErrMissingCampaign is returned when an ad group is created without a parent
// campaign configured.
var ErrMissingCampaign = fmt.Errorf("googleads: campaign id is required for creating an ad group")

// ---------------------------------------------------------------------------
// Failure wire shapes
//
// The API's failure payload varies by error category; every sub-structure
// below is optional and partial absence is normal. Extraction must therefore
// nil-check each tier independently.
// ---------------------------------------------------------------------------

// Failure is the GoogleAdsFailure detail attached to a failed mutate call.
type Failure struct {
	Errors    []ErrorItem `json:"errors,omitempty"`
	RequestID string      `json:"requestId,omitempty"`
}

// ErrorItem is one reported problem inside a Failure.
type ErrorItem struct {
	ErrorCode map[string]string `json:"errorCode,omitempty"`
	Message   string            `json:"message,omitempty"`
	Trigger   *ErrorValue       `json:"trigger,omitempty"`
	Location  *ErrorLocation    `json:"location,omitempty"`
	Details   json.RawMessage   `json:"details,omitempty"`
}

// ErrorValue is the polymorphic trigger value; only the string form is read.
type ErrorValue struct {
	StringValue string `json:"stringValue,omitempty"`
}

// ErrorLocation names the request field path an error refers to.
type ErrorLocation struct {
	FieldPathElements []FieldPathElement `json:"fieldPathElements,omitempty"`
}

// FieldPathElement is one segment of an error location path.
type FieldPathElement struct {
	FieldName string `json:"fieldName"`
	Index     *int64 `json:"index,omitempty"`
}

// policyDetails is the slice of an error's details we read for tier-one
// message extraction.
type policyDetails struct {
	PolicyViolationDetails *struct {
		ExternalPolicyName string `json:"externalPolicyName,omitempty"`
	} `json:"policyViolationDetails,omitempty"`
}

// APIError is the single failure raised by one mutate call. The call is
// atomic: either every operation succeeded or this error describes the
// one-or-more per-item problems.
type APIError struct {
	StatusCode int
	Status     string // canonical code, e.g. INVALID_ARGUMENT
	Message    string
	RequestID  string
	Failure    *Failure // nil when the body carried no GoogleAdsFailure
}

func (e *APIError) Error() string {
	if e.Failure != nil && len(e.Failure.Errors) > 0 {
		return fmt.Sprintf("googleads: mutate failed (%s): %s", e.Status, e.Failure.Errors[0].Message)
	}
	return fmt.Sprintf("googleads: mutate failed (%s): %s", e.Status, e.Message)
}

// ---------------------------------------------------------------------------
// Normalization
// ---------------------------------------------------------------------------

// ErrorDetail is one key/value pair from the first reported error's details.
type ErrorDetail struct {
	Type  string
	Value string
}

// NormalizedError is the uniform record every remote mutate failure is
// converted into, regardless of which shapes the payload happened to carry.
// Immutable after construction.
type NormalizedError struct {
	RequestID string
	Code      string
	Message   string
	Fields    []string
	ClassName string
	EntityID  string
	RelatedID string
	Details   []ErrorDetail
	Trigger   *string
	Location  []FieldPathElement
}

// Normalize builds a NormalizedError from a mutate failure. Each tier of
// extraction is guarded on its own so a missing attribute in one never
// prevents extracting the others.
func Normalize(err *APIError, className, entityID, relatedID string) NormalizedError {
	return NormalizedError{
		RequestID: requestID(err),
		Code:      err.Status,
		Message:   extractMessage(err),
		Fields:    extractFields(err.Failure),
		ClassName: className,
		EntityID:  entityID,
		RelatedID: relatedID,
		Details:   extractDetails(err.Failure),
		Trigger:   extractTrigger(err.Failure),
		Location:  extractLocation(err.Failure),
	}
}

func requestID(err *APIError) string {
	if err.Failure != nil && err.Failure.RequestID != "" {
		return err.Failure.RequestID
	}
	return err.RequestID
}

// extractMessage prefers a policy-violation display name, then the generic
// top-level message, then the first error's own message.
func extractMessage(err *APIError) string {
	if f := err.Failure; f != nil && len(f.Errors) > 0 && len(f.Errors[0].Details) > 0 {
		var pd policyDetails
		if json.Unmarshal(f.Errors[0].Details, &pd) == nil &&
			pd.PolicyViolationDetails != nil && pd.PolicyViolationDetails.ExternalPolicyName != "" {
			return pd.PolicyViolationDetails.ExternalPolicyName
		}
	}
	if err.Message != "" {
		return err.Message
	}
	if f := err.Failure; f != nil && len(f.Errors) > 0 {
		return f.Errors[0].Message
	}
	return ""
}

// extractFields flattens every error's location into field-name elements.
// An error without a location contributes nothing.
func extractFields(f *Failure) []string {
	if f == nil {
		return []string{}
	}
	fields := []string{}
	for _, e := range f.Errors {
		if e.Location == nil {
			continue
		}
		for _, el := range e.Location.FieldPathElements {
			fields = append(fields, el.FieldName)
		}
	}
	return fields
}

// extractDetails reads only the first error's details map. A payload that
// does not convert yields an empty list, never a failure.
func extractDetails(f *Failure) []ErrorDetail {
	details := []ErrorDetail{}
	if f == nil || len(f.Errors) == 0 || len(f.Errors[0].Details) == 0 {
		return details
	}
	var m map[string]any
	if err := json.Unmarshal(f.Errors[0].Details, &m); err != nil {
		return details
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		details = append(details, ErrorDetail{Type: k, Value: fmt.Sprintf("%v", m[k])})
	}
	return details
}

func extractTrigger(f *Failure) *string {
	if f == nil || len(f.Errors) == 0 || f.Errors[0].Trigger == nil {
		return nil
	}
	s := f.Errors[0].Trigger.StringValue
	return &s
}

func extractLocation(f *Failure) []FieldPathElement {
	if f == nil || len(f.Errors) == 0 || f.Errors[0].Location == nil {
		return nil
	}
	return f.Errors[0].Location.FieldPathElements
}
