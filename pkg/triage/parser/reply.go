package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"ai-tickettriage-be/pkg/llm"
)

// MessageLike is implemented by response envelopes that expose their text
// through an accessor, for client libraries whose return type is opaque.
type MessageLike interface {
	MessageContent() string
}

// pythonDictText matches a 'text' entry inside a Python-style dict string,
// e.g. "{'type': 'text', 'text': 'hello'}".
var pythonDictText = regexp.MustCompile(`'text'\s*:\s*'((?:[^'\\]|\\.)*)'`)

// ParseReply normalizes whatever shape the generator binding hands back into
// a plain trimmed string. Generative-model client libraries are inconsistent
// about their return envelope across versions and providers; this function
// absorbs that variability so the rest of the pipeline treats a reply as a
// string, always. It never fails: unrecognized shapes fall back to their
// stringification.
//
// Accepted shapes, one branch each:
//   - plain string (possibly a stringified mapping with a "text" key)
//   - *llm.Completion / llm.Completion
//   - MessageLike envelope
//   - list of string-like parts, joined with spaces
//   - mapping with a "text" key
func ParseReply(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return normalizeReplyText(v)
	case *llm.Completion:
		if v == nil {
			return ""
		}
		return normalizeReplyText(v.Text)
	case llm.Completion:
		return normalizeReplyText(v.Text)
	case MessageLike:
		return normalizeReplyText(v.MessageContent())
	case []string:
		return normalizeReplyText(strings.Join(v, " "))
	case []interface{}:
		parts := make([]string, len(v))
		for i, part := range v {
			parts[i] = strings.TrimSpace(fmt.Sprint(part))
		}
		return normalizeReplyText(strings.Join(parts, " "))
	case map[string]interface{}:
		if inner, ok := v["text"]; ok {
			return ParseReply(inner)
		}
		return strings.TrimSpace(fmt.Sprint(v))
	default:
		return strings.TrimSpace(fmt.Sprint(raw))
	}
}

// normalizeReplyText trims the text and unwraps stringified mappings that
// carry the actual reply under a "text" key. Some bindings stringify their
// message object instead of returning its content, which would otherwise
// leak "{'type': 'text', 'text': ...}" to the customer.
func normalizeReplyText(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "{") {
		return text
	}

	// JSON-shaped mapping with a "text" key
	if strings.Contains(text, `"text"`) {
		var fields map[string]interface{}
		if err := json.Unmarshal([]byte(text), &fields); err == nil {
			if inner, ok := fields["text"].(string); ok {
				return strings.TrimSpace(inner)
			}
		}
	}

	// Python-style dict string with a 'text' key
	if strings.Contains(text, "'text':") {
		if m := pythonDictText.FindStringSubmatch(text); m != nil {
			unescaped := strings.ReplaceAll(m[1], `\'`, `'`)
			return strings.TrimSpace(unescaped)
		}
	}

	return text
}
