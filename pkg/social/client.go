package social

import (
	"context"
	"encoding/json"
)

// Record is one opaque provider item. No field is interpreted here; records are
// serialized wholesale into the analysis prompt.
type Record = json.RawMessage

type Collector interface {
	Collect(ctx context.Context) ([]Record, error)
	Name() string
}
