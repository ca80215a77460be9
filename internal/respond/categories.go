package respond

import "strings"

// category owns a keyword set and a pattern template. Registration order
// matters: tier 2 ties break toward the earliest entry.
type category struct {
	id        string
	keywords  []string
	template  string
	toolChips []string
	followUps []string
}

// score counts how many of the category's keywords appear as substrings of
// the normalized query.
func (c *category) score(q string) int {
	n := 0
	for _, kw := range c.keywords {
		if strings.Contains(q, kw) {
			n++
		}
	}
	return n
}

// categoryRegistry returns the tier 2 categories in registration order.
func categoryRegistry() []category {
	return []category{
		{
			id:       "meetings",
			keywords: []string{"meeting", "calendar", "agenda", "schedule", "invite", "attendee"},
			template: "Your next meeting is **{{next_meeting}}** ({{next_meeting_when}}). " +
				"Want a prep sheet? I can pull the agenda, attendees, and the open items that touch it.",
			toolChips: []string{"Calendar", "Meetings"},
			followUps: []string{"Prep me for this meeting"},
		},
		{
			id:       "revenue",
			keywords: []string{"revenue", "sales", "arr", "bookings", "pipeline", "quota", "forecast"},
			template: "Revenue at {{company}} is **{{revenue}}**, {{revenue_note}}. " +
				"The trend line is steady; the interesting movement is underneath it: {{first_insight}}",
			toolChips: []string{"Metrics", "Reports"},
			followUps: []string{"How is revenue trending"},
		},
		{
			id:       "people",
			keywords: []string{"people", "team", "who", "staff", "org", "member"},
			template: "{{company}} runs with {{headcount}} people. {{top_person}} is the person " +
				"most queries route through. Ask me about anyone by name or role.",
			toolChips: []string{"People"},
			followUps: []string{"Who owns what"},
		},
		{
			id:       "hiring",
			keywords: []string{"hiring", "recruit", "candidate", "role", "headcount", "offer", "interview"},
			template: "There are **{{open_roles}} open roles** at {{company}} right now. " +
				"Headcount stands at {{headcount}}.",
			toolChips: []string{"Hiring", "People"},
			followUps: []string{"Show me the hiring picture"},
		},
		{
			id:       "actions",
			keywords: []string{"action", "task", "todo", "to-do", "overdue", "deadline", "due"},
			template: "Top of the action list: {{first_action}}. " +
				"I can sort the rest by owner or by due date.",
			toolChips: []string{"Actions"},
			followUps: []string{"What's blocking the team"},
		},
		{
			id:       "decisions",
			keywords: []string{"decision", "decide", "approved", "ratified", "sign-off", "signoff"},
			template: "Most recent decision on record: {{last_decision}}. " +
				"The full log is filterable by quarter and by owner.",
			toolChips: []string{"Decisions"},
			followUps: []string{"What decisions are pending"},
		},
		{
			id:       "risks",
			keywords: []string{"risk", "blocker", "concern", "exposure", "worried", "threat"},
			template: "The signal I'd flag first: {{first_insight}} " +
				"The nearest operational blocker is {{first_action}}.",
			toolChips: []string{"Insights", "Actions"},
			followUps: []string{"What's blocking the team"},
		},
		{
			id:       "customers",
			keywords: []string{"customer", "client", "account", "churn", "renewal", "nps"},
			template: "Customer health at {{company}}: NPS is at **{{nps}}**. " +
				"{{first_insight}}",
			toolChips: []string{"Accounts", "Metrics"},
			followUps: []string{"Which accounts renew soonest?"},
		},
		{
			id:       "product",
			keywords: []string{"product", "feature", "roadmap", "launch", "release", "ship"},
			template: "Roadmap-wise, the freshest call is: {{last_decision}}. " +
				"I can line the roadmap up against the open actions if you want the gap view.",
			toolChips: []string{"Roadmap", "Decisions"},
			followUps: []string{"What shipped recently?"},
		},
		{
			id:       "engineering",
			keywords: []string{"engineering", "deploy", "incident", "outage", "bug", "on-call", "oncall"},
			template: "Engineering picture at {{company}}: {{first_insight}} " +
				"Utilization-wise the team is at {{utilization}}.",
			toolChips: []string{"Insights", "Metrics"},
			followUps: []string{"Any open incidents?"},
		},
		{
			id:       "finance",
			keywords: []string{"cost", "budget", "spend", "expense", "margin", "burn"},
			template: "Against a revenue base of {{revenue}}, spend is tracking to plan. " +
				"The line worth a second look is staffing: {{open_roles}} unfilled roles carry budget.",
			toolChips: []string{"Metrics", "Reports"},
			followUps: []string{"How is revenue trending"},
		},
		{
			id:       "strategy",
			keywords: []string{"strategy", "goal", "okr", "objective", "vision", "priorit"},
			template: "The strategic throughline for {{company}} ({{tagline}}): {{first_insight}} " +
				"Latest structural call: {{last_decision}}.",
			toolChips: []string{"Insights", "Decisions"},
			followUps: []string{"Draft an update for the board"},
		},
		{
			id:       "performance",
			keywords: []string{"performance", "metric", "kpi", "utilization", "productivity", "trend"},
			template: "Headline numbers for {{company}}: revenue {{revenue}} ({{revenue_note}}), " +
				"utilization {{utilization}}, NPS {{nps}}.",
			toolChips: []string{"Metrics"},
			followUps: []string{"How is revenue trending"},
		},
		{
			id:       "communication",
			keywords: []string{"email", "message", "slack", "inbox", "notify", "announce"},
			template: "I can draft that for you. For anything company-wide at {{company}}, " +
				"{{top_person}} usually gets a preview first.",
			toolChips: []string{"Drafts"},
			followUps: []string{"Draft an update for the board"},
		},
		{
			id:       "onboarding",
			keywords: []string{"onboard", "new hire", "first week", "orientation", "ramp"},
			template: "For a first week at {{company}}: meet {{top_person}}, sit in on " +
				"**{{next_meeting}}**, and read the latest decision log entry ({{last_decision}}).",
			toolChips: []string{"People", "Calendar"},
			followUps: []string{"Who owns what"},
		},
		{
			id:       "reporting",
			keywords: []string{"report", "summary", "digest", "recap", "update"},
			template: "Quick recap for {{company}}: {{first_insight}} " +
				"Revenue is {{revenue}}, {{revenue_note}}.",
			toolChips: []string{"Reports", "Insights"},
			followUps: []string{"Summarize last week"},
		},
		{
			id:       "history",
			keywords: []string{"yesterday", "last week", "last month", "previous", "recently", "history"},
			template: "Looking back at {{company}}: {{last_decision}}. " +
				"And the carry-over item: {{first_action}}.",
			toolChips: []string{"Decisions", "Actions"},
			followUps: []string{"Summarize last week"},
		},
		{
			id:       "search",
			keywords: []string{"find", "search", "look up", "where is", "locate"},
			template: "I can search people, meetings, actions, and decisions at {{company}}. " +
				"Try a name, a meeting title, or a deadline.",
			toolChips: []string{"Search"},
			followUps: []string{"Who owns what"},
		},
		{
			id:       "help",
			keywords: []string{"help", "what can you do", "how do i", "explain"},
			template: "Ask me anything about {{company}}: meetings, people, metrics, decisions, " +
				"open actions. Showcase phrases like \"prep me for this meeting\" get the full treatment.",
			toolChips: []string{"Help"},
			followUps: []string{"Catch me up", "What should I focus on today"},
		},
		{
			id:       "smalltalk",
			keywords: []string{"hello", "hi there", "hey", "thanks", "thank you", "good morning"},
			template: "Morning! {{company}} is in decent shape today: {{first_insight}} " +
				"What do you want to dig into?",
			toolChips: []string{},
			followUps: []string{"Catch me up"},
		},
	}
}
