package cache

import (
	"encoding/json"
	"fmt"

	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// assignJSON copies src into dst by round-tripping through JSON. Cached
// values are pointers captured from an earlier call's out parameter; this
// avoids aliasing that pointer across concurrent callers of Read.
func assignJSON(src, dst any) error {
	buf, err := json.Marshal(src)
	if err != nil {
		return taigaerr.Wrap(taigaerr.Internal, err, fmt.Sprintf("marshal cached value of type %T", src))
	}
	if err := json.Unmarshal(buf, dst); err != nil {
		return taigaerr.Wrap(taigaerr.Internal, err, "unmarshal cached value into caller's out parameter")
	}
	return nil
}
