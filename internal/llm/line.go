package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// MaxLineRunes bounds a line; a child reads it in one glance.
const MaxLineRunes = 60

// lineSchemaJSON is the reply every backend is asked for.
const lineSchemaJSON = `{
  "type": "object",
  "properties": {
    "line": {"type": "string", "minLength": 2, "maxLength": 60}
  },
  "required": ["line"],
  "additionalProperties": false
}`

// replyFormat is appended to every system prompt.
const replyFormat = `Reply with JSON only, exactly {"line": "<text>"}, in at most 60 characters.`

var lineSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(lineSchemaJSON))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("line.json", doc); err != nil {
		return nil, err
	}
	return c.Compile("line.json")
})

// system joins the caller's instructions with the reply format.
func system(p Prompt) string {
	if p.System == "" {
		return replyFormat
	}
	return p.System + "\n" + replyFormat
}

// decodeLine checks raw against the line schema and returns the trimmed
// line. Models sometimes wrap JSON in a code fence; that is stripped.
func decodeLine(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(text))
	if err != nil {
		return "", &Error{Kind: KindMalformed, Raw: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}
	schema, err := lineSchema()
	if err != nil {
		return "", fmt.Errorf("compile line schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return "", &Error{Kind: KindMalformed, Raw: raw, Err: err}
	}

	var out struct {
		Line string `json:"line"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return "", &Error{Kind: KindMalformed, Raw: raw, Err: err}
	}
	line := strings.TrimSpace(out.Line)
	if line == "" {
		return "", &Error{Kind: KindMalformed, Raw: raw, Err: fmt.Errorf("blank line")}
	}
	return line, nil
}
