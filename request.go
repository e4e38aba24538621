package esb

import (
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"

	"github.com/searchforge/esb/pkg/core"
	esberrors "github.com/searchforge/esb/pkg/errors"
	"github.com/searchforge/esb/pkg/marshal"
)

// BuildRequest assembles the document and decodes it into a typed
// request for the go-elasticsearch typed API. The typed API speaks the
// modern dialect only; legacy documents built with Version1 target
// query shapes the modern DSL no longer defines and are not supported
// here.
func (b *Builder) BuildRequest(version ...core.Version) (*search.Request, error) {
	raw, err := marshal.JSON(b.Build(version...))
	if err != nil {
		return nil, err
	}

	req := search.NewRequest()
	if err := json.Unmarshal(raw, req); err != nil {
		return nil, esberrors.NewError("build_request", fmt.Errorf("%w: %v", esberrors.ErrRequestDecode, err))
	}
	return req, nil
}
