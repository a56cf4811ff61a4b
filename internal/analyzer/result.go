package analyzer

import "encoding/json"

// Status is the tri-state outcome of a single check. There is no partial or
// unknown state: a check that cannot determine anything picks the most
// conservative of the three.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusWarning Status = "warning"
	StatusFailed  Status = "failed"
)

// CheckResult is the uniform contract every check returns. The base fields
// are always present; checks may attach additional named fields through
// Extra (heading order, alt-text buckets, ...), which are flattened into the
// same JSON object so the report stays an open record.
//
// A CheckResult is constructed once by a check invocation and never mutated.
type CheckResult struct {
	Status      Status
	Description string
	CodeSnippet []string
	HowToFix    string
	Extra       map[string]any
}

// MarshalJSON flattens Extra next to the base fields. CodeSnippet and
// HowToFix serialize as null when absent so consumers see a stable shape.
func (r *CheckResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 4+len(r.Extra))
	out["status"] = r.Status
	out["description"] = r.Description
	if len(r.CodeSnippet) > 0 {
		out["code_snippet"] = r.CodeSnippet
	} else {
		out["code_snippet"] = nil
	}
	if r.HowToFix != "" {
		out["how_to_fix"] = r.HowToFix
	} else {
		out["how_to_fix"] = nil
	}
	for k, v := range r.Extra {
		out[k] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores base fields and routes everything else into Extra.
func (r *CheckResult) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["status"]; ok {
		if err := json.Unmarshal(v, &r.Status); err != nil {
			return err
		}
	}
	if v, ok := raw["description"]; ok {
		if err := json.Unmarshal(v, &r.Description); err != nil {
			return err
		}
	}
	if v, ok := raw["code_snippet"]; ok && string(v) != "null" {
		if err := json.Unmarshal(v, &r.CodeSnippet); err != nil {
			return err
		}
	}
	if v, ok := raw["how_to_fix"]; ok && string(v) != "null" {
		if err := json.Unmarshal(v, &r.HowToFix); err != nil {
			return err
		}
	}
	for k, v := range raw {
		switch k {
		case "status", "description", "code_snippet", "how_to_fix":
			continue
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return err
		}
		if r.Extra == nil {
			r.Extra = make(map[string]any)
		}
		r.Extra[k] = val
	}
	return nil
}

func passed(description string, snippet []string, howToFix string) *CheckResult {
	return &CheckResult{Status: StatusPassed, Description: description, CodeSnippet: snippet, HowToFix: howToFix}
}

func warning(description string, snippet []string, howToFix string) *CheckResult {
	return &CheckResult{Status: StatusWarning, Description: description, CodeSnippet: snippet, HowToFix: howToFix}
}

func failed(description string, snippet []string, howToFix string) *CheckResult {
	return &CheckResult{Status: StatusFailed, Description: description, CodeSnippet: snippet, HowToFix: howToFix}
}
