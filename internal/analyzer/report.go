package analyzer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/seolens/seolens/internal/document"
	"github.com/seolens/seolens/internal/logging"
)

// Report maps the fixed check names to their results. Marshaling preserves
// the catalog order so API responses stay byte-stable across runs.
type Report struct {
	order   []string
	results map[string]*CheckResult
}

// Get returns the result for a check name, or nil when absent.
func (r *Report) Get(name string) *CheckResult { return r.results[name] }

// Names returns the check names in catalog order.
func (r *Report) Names() []string { return r.order }

// Results returns the underlying name-to-result map.
func (r *Report) Results() map[string]*CheckResult { return r.results }

func (r *Report) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, name := range r.order {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.results[name])
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	return append(buf, '}'), nil
}

func (r *Report) UnmarshalJSON(data []byte) error {
	var raw map[string]*CheckResult
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.results = raw
	r.order = r.order[:0]
	// Canonical catalog order first, then anything extra.
	for _, c := range (&Analyzer{}).Checks() {
		if _, ok := raw[c.Name]; ok {
			r.order = append(r.order, c.Name)
		}
	}
	seen := make(map[string]bool, len(r.order))
	for _, n := range r.order {
		seen[n] = true
	}
	for n := range raw {
		if !seen[n] {
			r.order = append(r.order, n)
		}
	}
	return nil
}

// ProgressFunc receives the check name and its result as each check finishes.
type ProgressFunc func(name string, result *CheckResult)

// Analyze runs the full catalog against doc and collects the results into a
// Report. Checks are independent: a panic in one is recovered and recorded as
// a failed result so the rest of the report survives. The optional progress
// callback fires after every check, in catalog order.
func (a *Analyzer) Analyze(ctx context.Context, doc *document.Context, progress ProgressFunc) *Report {
	checks := a.Checks()
	report := &Report{
		order:   make([]string, 0, len(checks)),
		results: make(map[string]*CheckResult, len(checks)),
	}

	for _, check := range checks {
		result := a.runChecked(ctx, check, doc)
		report.order = append(report.order, check.Name)
		report.results[check.Name] = result
		if progress != nil {
			progress(check.Name, result)
		}
	}
	return report
}

// runChecked executes one check, converting a panic into a failed result.
func (a *Analyzer) runChecked(ctx context.Context, check Check, doc *document.Context) (result *CheckResult) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("check panicked",
				logging.Field{Key: "check", Value: check.Name},
				logging.Field{Key: "panic", Value: fmt.Sprint(r)})
			result = failed(
				fmt.Sprintf("The %s check could not be completed due to an internal error.", check.Name),
				[]string{fmt.Sprint(r)},
				"Retry the analysis. If the problem persists, the page markup may be triggering a bug in this check.",
			)
		}
	}()
	return check.Run(ctx, doc)
}
