package respond

import (
	"strconv"
	"strings"

	"github.com/nexuslabs/showrunner/pkg/domain"
)

// interpolate substitutes dataset placeholders into a template. With no
// active dataset the placeholders degrade to neutral wording instead of
// leaking braces into the transcript.
func interpolate(template string, ctx ResolveContext) string {
	ds := ctx.Dataset
	if ds == nil {
		ds = &domain.Dataset{
			Company: domain.Company{Name: "your company", Tagline: "your team"},
			Metrics: domain.Metrics{
				Revenue:     "revenue",
				RevenueNote: "holding steady",
				Utilization: "utilization",
			},
		}
	}

	pairs := []string{
		"{{company}}", ds.Company.Name,
		"{{tagline}}", ds.Company.Tagline,
		"{{revenue}}", ds.Metrics.Revenue,
		"{{revenue_note}}", ds.Metrics.RevenueNote,
		"{{utilization}}", ds.Metrics.Utilization,
		"{{headcount}}", strconv.Itoa(ds.Metrics.Headcount),
		"{{open_roles}}", strconv.Itoa(ds.Metrics.OpenRoles),
		"{{nps}}", strconv.Itoa(ds.Metrics.NPS),
		"{{top_person}}", topPerson(ds),
		"{{next_meeting}}", nextMeeting(ds),
		"{{next_meeting_when}}", nextMeetingWhen(ds),
		"{{first_insight}}", firstInsight(ds),
		"{{first_action}}", firstAction(ds),
		"{{last_decision}}", lastDecision(ds),
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func topPerson(ds *domain.Dataset) string {
	if len(ds.People) == 0 {
		return "the team lead"
	}
	return ds.People[0].Name
}

func nextMeeting(ds *domain.Dataset) string {
	if len(ds.Meetings) == 0 {
		return "your next meeting"
	}
	return ds.Meetings[0].Title
}

func nextMeetingWhen(ds *domain.Dataset) string {
	if len(ds.Meetings) == 0 {
		return "soon"
	}
	return ds.Meetings[0].When
}

func firstInsight(ds *domain.Dataset) string {
	if len(ds.Insights) == 0 {
		return "No insights recorded yet."
	}
	return ds.Insights[0]
}

func firstAction(ds *domain.Dataset) string {
	if len(ds.Actions) == 0 {
		return "no open actions"
	}
	a := ds.Actions[0]
	return a.Title + " (" + a.Owner + ", due " + a.Due + ")"
}

func lastDecision(ds *domain.Dataset) string {
	if len(ds.Decisions) == 0 {
		return "no recent decisions"
	}
	d := ds.Decisions[0]
	return d.Title + ": " + d.Outcome
}
