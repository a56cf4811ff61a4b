package sentiment

// Token polarity lexicon. A compact VADER-derived subset: only words with
// unambiguous polarity are listed, so sentences without any listed token
// classify as neutral rather than guessing.
var lexicon = map[string]float64{
	// positive
	"amazing": 2.8, "awesome": 3.1, "beautiful": 2.9, "best": 3.2,
	"better": 1.9, "brilliant": 2.8, "cool": 1.3, "delicious": 2.3,
	"enjoy": 2.0, "enjoyed": 2.0, "excellent": 2.7, "excited": 2.2,
	"exciting": 2.2, "fantastic": 2.6, "favorite": 2.0, "fun": 2.3,
	"glad": 2.0, "good": 1.9, "great": 3.1, "happy": 2.7,
	"helpful": 1.8, "impressive": 2.3, "incredible": 2.5, "inspiring": 2.4,
	"interesting": 1.7, "like": 1.5, "liked": 1.5, "love": 3.2,
	"loved": 2.9, "lovely": 2.8, "nice": 1.8, "perfect": 2.7,
	"thank": 1.6, "thanks": 1.9, "useful": 1.9, "well": 1.1,
	"wonderful": 2.7, "wow": 2.8,

	// negative
	"angry": -2.3, "annoying": -1.9, "awful": -2.9, "bad": -2.5,
	"boring": -1.3, "broken": -1.8, "disappointed": -2.2, "disappointing": -2.2,
	"disgusting": -2.9, "dislike": -1.6, "fail": -2.3, "failed": -2.3,
	"fake": -1.8, "garbage": -2.5, "hate": -2.7, "hated": -2.6,
	"horrible": -2.5, "misleading": -1.9, "pathetic": -2.5, "poor": -2.1,
	"sad": -2.1, "scam": -2.7, "stupid": -2.4, "terrible": -2.1,
	"trash": -2.3, "ugly": -2.3, "useless": -1.8, "waste": -2.2,
	"worst": -3.1, "wrong": -2.1,
}

// Negators flip the polarity of the tokens that follow them within the
// negation window.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true,
	"nobody": true, "nothing": true, "dont": true, "don't": true,
	"didnt": true, "didn't": true, "isnt": true, "isn't": true,
	"wasnt": true, "wasn't": true, "wont": true, "won't": true,
	"cant": true, "can't": true, "couldnt": true, "couldn't": true,
	"wouldnt": true, "wouldn't": true, "shouldnt": true, "shouldn't": true,
}
