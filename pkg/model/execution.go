package model

import "encoding/json"

// ExecutionResult is one page of computed cross-tabulated data. Data is a
// nested array whose depth matches the requested dimensions, so it stays raw.
type ExecutionResult struct {
	Data             json.RawMessage             `json:"data"`
	DimensionHeaders []DimensionHeader           `json:"dimensionHeaders"`
	GrandTotals      []ExecutionResultGrandTotal `json:"grandTotals"`
	Paging           ExecutionResultPaging       `json:"paging"`

	Extra ExtraProperties `json:"-"`
}

func (r ExecutionResult) MarshalJSON() ([]byte, error) {
	type plain ExecutionResult
	return marshalWithExtras(plain(r), r.Extra)
}

func (r *ExecutionResult) UnmarshalJSON(data []byte) error {
	type plain ExecutionResult
	var p plain
	extras, err := unmarshalWithExtras(data, &p)
	if err != nil {
		return err
	}
	*r = ExecutionResult(p)
	r.Extra = extras
	return nil
}

// ExecutionResultGrandTotal carries totals computed across whole dimensions.
// TotalDimensions names the dimensions the totals were rolled up over.
type ExecutionResultGrandTotal struct {
	Data            json.RawMessage `json:"data"`
	TotalDimensions []string        `json:"totalDimensions"`

	Extra ExtraProperties `json:"-"`
}

func (t ExecutionResultGrandTotal) MarshalJSON() ([]byte, error) {
	type plain ExecutionResultGrandTotal
	return marshalWithExtras(plain(t), t.Extra)
}

func (t *ExecutionResultGrandTotal) UnmarshalJSON(data []byte) error {
	type plain ExecutionResultGrandTotal
	var p plain
	extras, err := unmarshalWithExtras(data, &p)
	if err != nil {
		return err
	}
	*t = ExecutionResultGrandTotal(p)
	t.Extra = extras
	return nil
}

// ExecutionResultPaging describes the window of the full result this page
// covers, one entry per dimension.
type ExecutionResultPaging struct {
	Count  []int `json:"count"`
	Offset []int `json:"offset"`
	Total  []int `json:"total"`
}

// DimensionHeader describes one dimension of the result
type DimensionHeader struct {
	HeaderGroups []HeaderGroup `json:"headerGroups"`
}

// HeaderGroup is one level of headers within a dimension
type HeaderGroup struct {
	Headers []ExecutionResultHeader `json:"headers"`
}

// ExecutionResultHeader is a single header cell; exactly one variant is set.
type ExecutionResultHeader struct {
	AttributeHeader *AttributeResultHeader `json:"attributeHeader,omitempty"`
	MeasureHeader   *MeasureResultHeader   `json:"measureHeader,omitempty"`
	TotalHeader     *TotalResultHeader     `json:"totalHeader,omitempty"`
}

// AttributeResultHeader labels a row/column with an attribute value
type AttributeResultHeader struct {
	LabelValue        string `json:"labelValue"`
	PrimaryLabelValue string `json:"primaryLabelValue,omitempty"`
}

// MeasureResultHeader labels a row/column with a measure by its index
type MeasureResultHeader struct {
	MeasureIndex int `json:"measureIndex"`
}

// TotalResultHeader labels a row/column holding a computed total
type TotalResultHeader struct {
	Function string `json:"function"`
}
