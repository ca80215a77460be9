package respond

// showcaseEntry is a fully authored answer bound to one exact trigger
// phrase. Triggers are stored normalized (lower-case, trimmed).
type showcaseEntry struct {
	trigger   string
	template  string
	toolChips []string
	followUps []string
}

// showcaseRegistry returns the authored tier 1 entries. Order is cosmetic
// here since triggers are exact and disjoint.
func showcaseRegistry() []showcaseEntry {
	return []showcaseEntry{
		{
			trigger: "prep me for this meeting",
			template: "Here's your prep for **{{next_meeting}}** ({{next_meeting_when}}):\n\n" +
				"- **Context**: {{first_insight}}\n" +
				"- **Open thread**: {{first_action}}\n" +
				"- **Recent call**: {{last_decision}}\n\n" +
				"I'd lead with the open thread; {{top_person}} will ask about it.",
			toolChips: []string{"Calendar", "Meetings", "Decisions"},
			followUps: []string{"Draft talking points", "Who else is attending?", "Pull last meeting's notes"},
		},
		{
			trigger: "what should i focus on today",
			template: "Three things worth your attention at {{company}} today:\n\n" +
				"1. **{{next_meeting}}** at {{next_meeting_when}}.\n" +
				"2. {{first_action}}.\n" +
				"3. {{first_insight}}\n\n" +
				"Everything else can wait until tomorrow's standup.",
			toolChips: []string{"Calendar", "Actions", "Insights"},
			followUps: []string{"Prep me for this meeting", "What's overdue?"},
		},
		{
			trigger: "catch me up",
			template: "Since you last checked in at {{company}}:\n\n" +
				"- Revenue is at **{{revenue}}**, {{revenue_note}}.\n" +
				"- {{first_insight}}\n" +
				"- Latest decision: {{last_decision}}.\n\n" +
				"Nothing on fire. The next thing on your calendar is {{next_meeting}}.",
			toolChips: []string{"Insights", "Decisions", "Metrics"},
			followUps: []string{"What should I focus on today", "How is revenue trending"},
		},
		{
			trigger: "how is revenue trending",
			template: "Revenue at {{company}} is **{{revenue}}**, {{revenue_note}}.\n\n" +
				"Utilization sits at {{utilization}} across {{headcount}} people. " +
				"The number to watch: {{first_insight}}",
			toolChips: []string{"Metrics", "Reports"},
			followUps: []string{"Break it down by segment", "What's driving the change?"},
		},
		{
			trigger: "what decisions are pending",
			template: "The most recent recorded decision at {{company}}:\n\n" +
				"> {{last_decision}}\n\n" +
				"One open thread still needs an owner: {{first_action}}.",
			toolChips: []string{"Decisions", "Actions"},
			followUps: []string{"Who owns what", "Show the decision log"},
		},
		{
			trigger: "who owns what",
			template: "Ownership snapshot for {{company}}:\n\n" +
				"- {{top_person}} is the point of contact for the big picture.\n" +
				"- Nearest deadline: {{first_action}}.\n" +
				"- {{open_roles}} roles are still unowned because they're unfilled.",
			toolChips: []string{"People", "Actions"},
			followUps: []string{"Show me the hiring picture", "What's overdue?"},
		},
		{
			trigger: "show me the hiring picture",
			template: "Hiring at {{company}}: **{{open_roles}} open roles** against a team of {{headcount}}.\n\n" +
				"{{first_insight}}",
			toolChips: []string{"People", "Hiring"},
			followUps: []string{"Which role is most urgent?", "Who owns what"},
		},
		{
			trigger: "draft an update for the board",
			template: "Here's a first pass you can edit:\n\n" +
				"**{{company}} update**\n\n" +
				"Revenue stands at {{revenue}}, {{revenue_note}}. Utilization is {{utilization}} " +
				"with headcount at {{headcount}}. {{first_insight}} " +
				"Most recent structural decision: {{last_decision}}.",
			toolChips: []string{"Metrics", "Decisions", "Drafts"},
			followUps: []string{"Make it shorter", "Add the hiring picture"},
		},
		{
			trigger: "summarize last week",
			template: "Last week at {{company}} in three lines:\n\n" +
				"- {{first_insight}}\n" +
				"- Decision made: {{last_decision}}.\n" +
				"- Carried over: {{first_action}}.",
			toolChips: []string{"Insights", "Decisions", "Actions"},
			followUps: []string{"Catch me up", "What should I focus on today"},
		},
		{
			trigger: "what's blocking the team",
			template: "The loudest blocker right now: {{first_action}}.\n\n" +
				"Context that makes it urgent: {{first_insight}}",
			toolChips: []string{"Actions", "People"},
			followUps: []string{"Who owns what", "Escalate it"},
		},
	}
}
