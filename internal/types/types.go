package types

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Field holds a server-provided value that may arrive as a JSON string or
// number. The UI only ever displays it, so the textual form is kept.
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = Field(n.String())
	return nil
}

// MarshalJSON writes numeric-looking values as JSON numbers.
func (f Field) MarshalJSON() ([]byte, error) {
	if f == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(string(f), 64); err == nil && json.Valid([]byte(f)) {
		return []byte(f), nil
	}
	return json.Marshal(string(f))
}

func (f Field) String() string {
	return string(f)
}

type Expression struct {
	ID       Field  `json:"id"`
	Original string `json:"expression,omitempty"`
	Status   string `json:"status"`
	Result   Field  `json:"result"`
}

type CalculateRequest struct {
	Expression string `json:"expression"`
}

type CalculateResponse struct {
	ID Field `json:"id"`
}

type ExpressionResponse struct {
	Expressions []Expression `json:"expressions"`
}

type SingleExpressionResponse struct {
	Expression *Expression `json:"expression"`
}

// StatusUpdate is accepted by the stub API to move an expression along by hand.
type StatusUpdate struct {
	Status string `json:"status"`
	Result Field  `json:"result"`
}
