// Package sentiment classifies social-media comments at the sentence level
// with a lexicon-based polarity model: token scores summed with a negation
// flip window. The lexicon trades recall for precision, so anything without a
// clear polarity signal stays neutral.
package sentiment

import (
	"regexp"
	"strings"
	"sync"

	"github.com/seolens/seolens/internal/logging"
)

// Label is the tri-state sentence classification.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// SentenceResult pairs one sentence with its classification.
type SentenceResult struct {
	Sentence  string `json:"sentence"`
	Sentiment Label  `json:"sentiment"`
}

// CommentResult carries a comment and the per-sentence breakdown.
type CommentResult struct {
	Comment   string           `json:"comment"`
	Sentences []SentenceResult `json:"sentences"`
}

// Summary counts sentence classifications across a batch of comments.
type Summary struct {
	PositiveCount int `json:"positive_count"`
	NegativeCount int `json:"negative_count"`
	NeutralCount  int `json:"neutral_count"`
}

// negationWindow is how many tokens after a negator have their polarity
// flipped.
const negationWindow = 3

var (
	sentenceBoundary = regexp.MustCompile(`(?:[.!?]+)\s+`)
	tokenPattern     = regexp.MustCompile(`[a-zA-Z']+`)
)

// Analyzer classifies sentences. Construct with New; the zero value is not
// usable.
type Analyzer struct {
	once   sync.Once
	tokens map[string]float64
	logger logging.Logger
}

func New(logger logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Analyzer{
		logger: logger.With(logging.Field{Key: "component", Value: "sentiment"}),
	}
}

// init lazily snapshots the lexicon on first use.
func (a *Analyzer) init() {
	a.once.Do(func() {
		a.tokens = make(map[string]float64, len(lexicon))
		for w, s := range lexicon {
			a.tokens[w] = s
		}
		a.logger.Debug("sentiment lexicon loaded",
			logging.Field{Key: "entries", Value: len(a.tokens)})
	})
}

// SplitSentences breaks text on terminal punctuation followed by whitespace.
// A trailing fragment without terminal punctuation still counts as a
// sentence. Empty or whitespace-only text yields no sentences.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var sentences []string
	last := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		if s := strings.TrimSpace(text[last:loc[1]]); s != "" {
			sentences = append(sentences, s)
		}
		last = loc[1]
	}
	if s := strings.TrimSpace(text[last:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// Classify scores one sentence. Tokens within the negation window after a
// negator contribute inverted polarity. A zero net score is neutral.
func (a *Analyzer) Classify(sentence string) Label {
	a.init()

	tokens := tokenPattern.FindAllString(strings.ToLower(sentence), -1)
	score := 0.0
	negated := 0
	for _, tok := range tokens {
		if negators[tok] {
			negated = negationWindow
			continue
		}
		if polarity, ok := a.tokens[tok]; ok {
			if negated > 0 {
				polarity = -polarity
			}
			score += polarity
		}
		if negated > 0 {
			negated--
		}
	}

	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}

// ProcessComment splits a comment into sentences and classifies each.
func (a *Analyzer) ProcessComment(comment string) CommentResult {
	sentences := SplitSentences(comment)
	results := make([]SentenceResult, 0, len(sentences))
	for _, s := range sentences {
		results = append(results, SentenceResult{Sentence: s, Sentiment: a.Classify(s)})
	}
	return CommentResult{Comment: comment, Sentences: results}
}

// ProcessComments classifies a batch of comments.
func (a *Analyzer) ProcessComments(comments []string) []CommentResult {
	results := make([]CommentResult, 0, len(comments))
	for _, c := range comments {
		results = append(results, a.ProcessComment(c))
	}
	return results
}

// Summarize tallies sentence classifications across a batch.
func Summarize(results []CommentResult) Summary {
	var s Summary
	for _, r := range results {
		for _, sent := range r.Sentences {
			switch sent.Sentiment {
			case Positive:
				s.PositiveCount++
			case Negative:
				s.NegativeCount++
			case Neutral:
				s.NeutralCount++
			}
		}
	}
	return s
}
