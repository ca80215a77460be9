package respond

import (
	"strings"
	"unicode"

	"github.com/nexuslabs/showrunner/pkg/domain"
)

// Tier 3 shape selection. The rules run in a fixed order so a query that
// matches several lands on the same shape every time:
//
//  1. comparison vocabulary  -> chart
//  2. any numeric token      -> table
//  3. risk vocabulary        -> risk
//  4. planning vocabulary    -> action-list
//  5. otherwise              -> summary
var (
	comparisonWords = []string{" vs ", " vs.", "versus", "compare", "compared", "difference between", "against"}
	riskWords       = []string{"risk", "danger", "fail", "wrong", "problem", "issue"}
	planningWords   = []string{"plan", "next step", "should we", "how do we", "prepare", "organize", "prioritize"}
)

func chooseShape(q string) domain.FallbackShape {
	for _, w := range comparisonWords {
		if strings.Contains(q, w) {
			return domain.ShapeChart
		}
	}
	for _, r := range q {
		if unicode.IsDigit(r) {
			return domain.ShapeTable
		}
	}
	for _, w := range riskWords {
		if strings.Contains(q, w) {
			return domain.ShapeRisk
		}
	}
	for _, w := range planningWords {
		if strings.Contains(q, w) {
			return domain.ShapeActionList
		}
	}
	return domain.ShapeSummary
}

// fallbackTemplate returns the structural template for a shape. The copy
// stays generic on purpose; tier 3 is the safety net, not the show.
func fallbackTemplate(shape domain.FallbackShape) string {
	switch shape {
	case domain.ShapeChart:
		return "Here's the comparison for {{company}}:\n\n" +
			"```\nthis period  ████████████  {{revenue}}\nlast period  █████████     baseline\n```\n\n" +
			"Net: {{revenue_note}}. {{first_insight}}"
	case domain.ShapeTable:
		return "Here's what the numbers look like at {{company}}:\n\n" +
			"| Metric | Value |\n|---|---|\n" +
			"| Revenue | {{revenue}} |\n" +
			"| Utilization | {{utilization}} |\n" +
			"| Headcount | {{headcount}} |\n" +
			"| Open roles | {{open_roles}} |\n" +
			"| NPS | {{nps}} |"
	case domain.ShapeRisk:
		return "Looking at that through a risk lens for {{company}}:\n\n" +
			"- **Watch**: {{first_insight}}\n" +
			"- **Open exposure**: {{first_action}}\n\n" +
			"Neither is urgent today, but both compound if ignored."
	case domain.ShapeActionList:
		return "A reasonable way to move on that at {{company}}:\n\n" +
			"1. Start from the open item: {{first_action}}.\n" +
			"2. Sanity-check it against {{next_meeting}} ({{next_meeting_when}}).\n" +
			"3. Loop in {{top_person}} before committing."
	case domain.ShapeSummary:
		fallthrough
	default:
		return "Here's the short version for {{company}}:\n\n" +
			"{{first_insight}} Revenue sits at {{revenue}}, {{revenue_note}}. " +
			"If you want depth, ask about meetings, people, metrics, or decisions."
	}
}
