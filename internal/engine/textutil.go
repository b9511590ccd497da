package engine

import (
	"github.com/anatolykoptev/go-kit/strutil"
)

// maxTitleRunes caps titles in rendered tool responses. Upstream titles can
// carry whole tracklists.
const maxTitleRunes = 120

// TruncateTitle caps a candidate title for display, appending an ellipsis
// when truncated. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateTitle(s string) string {
	return strutil.TruncateWith(s, maxTitleRunes, "…")
}
