package analyzer

// Config holds the per-check thresholds. Every threshold mirrors the
// published recommendation the check encodes; change with care since the
// report wording states the limits.
type Config struct {
	// Title length window in characters.
	TitleMinLen int
	TitleMaxLen int

	// Meta description length window in characters.
	MetaMinLen int
	MetaMaxLen int

	// Internal link ratio below which the link profile is flagged.
	MinInternalLinkRatio float64

	// Iframe count above which usage is failed rather than warned.
	IframeThreshold int

	// HTML document size bounds in KB.
	HTMLWarnKB float64
	HTMLFailKB float64

	// Minified asset ratio at or above which the result is a warning
	// rather than a failure.
	MinifyWarnRatio float64

	// URL path depth beyond which the structure check flags the URL.
	MaxPathDepth int

	// Page-speed heuristics.
	MaxInlineStyleBlocks     int
	MaxRenderBlocking        int
	MaxExternalScripts       int
	DeferAsyncMinScriptCount int
}

func DefaultConfig() *Config {
	return &Config{
		TitleMinLen:              30,
		TitleMaxLen:              60,
		MetaMinLen:               50,
		MetaMaxLen:               160,
		MinInternalLinkRatio:     0.4,
		IframeThreshold:          3,
		HTMLWarnKB:               100,
		HTMLFailKB:               300,
		MinifyWarnRatio:          0.5,
		MaxPathDepth:             3,
		MaxInlineStyleBlocks:     3,
		MaxRenderBlocking:        3,
		MaxExternalScripts:       15,
		DeferAsyncMinScriptCount: 5,
	}
}
