package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest_Defaults(t *testing.T) {
	req := ParseRequest(DefaultServiceURL, DefaultModelPath, -1)

	target, err := req.target()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:1234/parse_model", target)
	require.Len(t, req.Files, 1)
	assert.Equal(t, FilePart{Field: "model", Path: "../examples/latex_test/test_models/l2s.onnx"}, req.Files[0])
}

func TestRequest_Target(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "trailing slash on base url",
			req:  ParseRequest("http://localhost:8080/", "m.onnx", -1),
			want: "http://localhost:8080/parse_model",
		},
		{
			name: "depth zero is sent",
			req:  ParseRequest("http://localhost:8080", "m.onnx", 0),
			want: "http://localhost:8080/parse_model?depth=0",
		},
		{
			name: "backward query",
			req: BackwardRequest("http://localhost:8080", BackwardParams{
				ModelPath: "m", SymbolPath: "s", LayerNode: 2,
				LayerIdxs: []int{1}, WeightIdxs: []int{3, 4}, Depth: 5,
			}),
			want: "http://localhost:8080/backward?depth=5&layer_idxs=1&layer_node=2&weight_idxs=3&weight_idxs=4",
		},
		{
			name: "existing query is kept",
			req: Request{
				URL:   "http://localhost:8080/parse_model?trace=1",
				Query: map[string][]string{"depth": {"2"}},
				Files: []FilePart{{Field: ModelField, Path: "m"}},
			},
			want: "http://localhost:8080/parse_model?depth=2&trace=1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.target()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
