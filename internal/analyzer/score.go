package analyzer

import "math"

// Summary condenses a report into counts and a 0-100 score. Warnings count
// half a pass; failures count nothing.
type Summary struct {
	TotalTests  int `json:"total_tests"`
	Score       int `json:"score"`
	PassedTests int `json:"passed_tests"`
	Warnings    int `json:"warnings"`
	FailedTests int `json:"failed_tests"`
}

// Summarize tallies the report's statuses and computes the weighted score.
// An empty report scores zero.
func Summarize(report *Report) *Summary {
	s := &Summary{}
	for _, name := range report.Names() {
		s.TotalTests++
		switch report.Get(name).Status {
		case StatusPassed:
			s.PassedTests++
		case StatusWarning:
			s.Warnings++
		case StatusFailed:
			s.FailedTests++
		}
	}
	if s.TotalTests > 0 {
		weighted := float64(s.PassedTests) + 0.5*float64(s.Warnings)
		s.Score = int(math.Round(weighted * 100 / float64(s.TotalTests)))
	}
	return s
}
