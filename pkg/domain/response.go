package domain

// Tier is the precedence level that produced a response.
type Tier int

const (
	// TierShowcase is an exact match against an authored trigger phrase.
	TierShowcase Tier = 1
	// TierCategory is a keyword-scored category match.
	TierCategory Tier = 2
	// TierFallback is the generic shape-based fallback.
	TierFallback Tier = 3
)

// FallbackShape is the structural template used by a tier 3 response.
type FallbackShape string

const (
	ShapeTable      FallbackShape = "table"
	ShapeChart      FallbackShape = "chart"
	ShapeActionList FallbackShape = "action-list"
	ShapeRisk       FallbackShape = "risk"
	ShapeSummary    FallbackShape = "summary"
)

// Response is the resolved answer for one query. Produced fresh per call;
// the engine keeps no transcript, callers decide what to retain.
type Response struct {
	Content   string        `json:"content"`
	Tier      Tier          `json:"tier"`
	Shape     FallbackShape `json:"shape,omitempty"`
	ToolChips []string      `json:"tool_chips,omitempty"`
	FollowUps []string      `json:"follow_ups,omitempty"`
}
