package upload

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Service defaults used when nothing else is configured.
const (
	DefaultServiceURL = "http://127.0.0.1:1234"
	DefaultModelPath  = "../examples/latex_test/test_models/l2s.onnx"

	ParseEndpoint    = "/parse_model"
	BackwardEndpoint = "/backward"

	ModelField  = "model"
	SymbolField = "symbol"
)

// FilePart is one file attached to the form under Field.
type FilePart struct {
	Field string
	Path  string
}

// Request describes a single multipart upload.
type Request struct {
	URL   string
	Query url.Values
	Files []FilePart
}

// BackwardParams are the query and file inputs of a /backward call.
type BackwardParams struct {
	ModelPath  string
	SymbolPath string
	LayerNode  int
	LayerIdxs  []int
	WeightIdxs []int
	// Depth < 0 leaves the depth parameter off.
	Depth int
}

// ParseRequest builds a /parse_model upload of a single model part.
// A negative depth leaves the depth parameter off.
func ParseRequest(baseURL, modelPath string, depth int) Request {
	q := url.Values{}
	if depth >= 0 {
		q.Set("depth", strconv.Itoa(depth))
	}
	return Request{
		URL:   endpoint(baseURL, ParseEndpoint),
		Query: q,
		Files: []FilePart{{Field: ModelField, Path: modelPath}},
	}
}

// BackwardRequest builds a /backward upload carrying the model and its
// symbol map. Index lists are sent as repeated query keys.
func BackwardRequest(baseURL string, p BackwardParams) Request {
	q := url.Values{}
	q.Set("layer_node", strconv.Itoa(p.LayerNode))
	for _, i := range p.LayerIdxs {
		q.Add("layer_idxs", strconv.Itoa(i))
	}
	for _, i := range p.WeightIdxs {
		q.Add("weight_idxs", strconv.Itoa(i))
	}
	if p.Depth >= 0 {
		q.Set("depth", strconv.Itoa(p.Depth))
	}
	return Request{
		URL:   endpoint(baseURL, BackwardEndpoint),
		Query: q,
		Files: []FilePart{
			{Field: ModelField, Path: p.ModelPath},
			{Field: SymbolField, Path: p.SymbolPath},
		},
	}
}

// target returns the request URL with the query applied.
func (r Request) target() (string, error) {
	if r.URL == "" {
		return "", fmt.Errorf("%w: empty url", ErrInvalidRequest)
	}
	if len(r.Files) == 0 {
		return "", fmt.Errorf("%w: no file parts", ErrInvalidRequest)
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return "", fmt.Errorf("%w: parse url: %w", ErrInvalidRequest, err)
	}
	if len(r.Query) > 0 {
		q := u.Query()
		for k, vs := range r.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func endpoint(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}
