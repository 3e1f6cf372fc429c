package export

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mohae/deepcopy"
)

// MarkupKeys are the settings whose values the host prints as HTML.
var MarkupKeys = []string{
	"button_before",
	"button_after",
	"instructions",
	"acfe_flexible_empty_message",
}

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		markupPolicy = bluemonday.UGCPolicy()
	})
	return markupPolicy
}

// Sanitize returns a copy of groups with every MarkupKeys value, at any
// depth, passed through an HTML policy that strips scripts, event handlers
// and unsafe URLs. The input is not modified.
func Sanitize(groups []map[string]any) []map[string]any {
	if groups == nil {
		return nil
	}
	copied := deepcopy.Copy(groups).([]map[string]any)
	keys := make(map[string]struct{}, len(MarkupKeys))
	for _, key := range MarkupKeys {
		keys[key] = struct{}{}
	}
	for _, group := range copied {
		sanitizeValue(group, keys)
	}
	return copied
}

func sanitizeValue(value any, keys map[string]struct{}) {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			if _, ok := keys[key]; ok {
				if text, ok := item.(string); ok {
					v[key] = sanitizeMarkup(text)
					continue
				}
			}
			sanitizeValue(item, keys)
		}
	case []map[string]any:
		for _, item := range v {
			sanitizeValue(item, keys)
		}
	case []any:
		for _, item := range v {
			sanitizeValue(item, keys)
		}
	}
}

func sanitizeMarkup(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}
	return markupSanitizer().Sanitize(raw)
}
