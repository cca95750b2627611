package cache

import (
	"fmt"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// Key joins parts with ':' into a cache key.
func Key(parts ...any) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i, part := range parts {
		if i > 0 {
			_ = buf.WriteByte(':')
		}
		switch v := part.(type) {
		case string:
			_, _ = buf.WriteString(v)
		case int:
			buf.B = strconv.AppendInt(buf.B, int64(v), 10)
		case int64:
			buf.B = strconv.AppendInt(buf.B, v, 10)
		default:
			_, _ = fmt.Fprint(buf, v)
		}
	}
	return buf.String()
}
