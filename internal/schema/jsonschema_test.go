package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quanb-duy/gooddata-go-sdk/internal/schema"
)

func TestEmbeddedSchemasCompile(t *testing.T) {
	for name := range schema.EmbeddedSchemas {
		t.Run(name, func(t *testing.T) {
			compiled, err := schema.Compile(name)
			require.NoError(t, err)
			assert.NotNil(t, compiled)
		})
	}
}

func TestCompileUnknownModel(t *testing.T) {
	_, err := schema.Compile("NoSuchModel")
	assert.Error(t, err)
}

func TestValidateDocumentAgainstEmbeddedSchema(t *testing.T) {
	testCases := []struct {
		name    string
		model   string
		doc     string
		wantErr bool
	}{
		{
			name:    "valid chat request",
			model:   "ChatRequest",
			doc:     `{"question": "top products by margin"}`,
			wantErr: false,
		},
		{
			name:    "chat request without question",
			model:   "ChatRequest",
			doc:     `{"limitSearch": 3}`,
			wantErr: true,
		},
		{
			name:    "chat request with wrong threshold type",
			model:   "ChatRequest",
			doc:     `{"question": "q", "searchScoreThreshold": "high"}`,
			wantErr: true,
		},
		{
			name:    "valid grand total",
			model:   "ExecutionResultGrandTotal",
			doc:     `{"data": [], "totalDimensions": ["dim_0"]}`,
			wantErr: false,
		},
		{
			name:    "grand total with non-string dimension",
			model:   "ExecutionResultGrandTotal",
			doc:     `{"data": [], "totalDimensions": [7]}`,
			wantErr: true,
		},
		{
			name:    "invalid JSON payload",
			model:   "ChatRequest",
			doc:     `{"question": `,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := schema.ValidateDocument(tc.model, []byte(tc.doc))
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
