package domain

// Company is the identity block of a dataset.
type Company struct {
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
	Timezone string `yaml:"timezone"`
}

// Person is a team member in the sample data.
type Person struct {
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Handle string `yaml:"handle"`
}

// Meeting is a calendar entry in the sample data.
type Meeting struct {
	Title     string   `yaml:"title"`
	When      string   `yaml:"when"`
	Attendees []string `yaml:"attendees"`
	Agenda    string   `yaml:"agenda"`
}

// ActionItem is an open task in the sample data.
type ActionItem struct {
	Title string `yaml:"title"`
	Owner string `yaml:"owner"`
	Due   string `yaml:"due"`
}

// Decision is a recorded decision in the sample data.
type Decision struct {
	Title   string `yaml:"title"`
	Outcome string `yaml:"outcome"`
	Date    string `yaml:"date"`
}

// Metrics holds the headline figures templates substitute into responses.
// Datasets carry these as a loose map; the loader decodes them into this
// shape so templates never reach into untyped data.
type Metrics struct {
	Revenue     string `mapstructure:"revenue"`
	RevenueNote string `mapstructure:"revenue_note"`
	Utilization string `mapstructure:"utilization"`
	Headcount   int    `mapstructure:"headcount"`
	OpenRoles   int    `mapstructure:"open_roles"`
	NPS         int    `mapstructure:"nps"`
}

// Dataset is the sample data bundle for one industry. This is the only
// inbound shape the Response Engine and Context Loader depend on.
type Dataset struct {
	Industry  Industry     `yaml:"industry"`
	Company   Company      `yaml:"company"`
	People    []Person     `yaml:"people"`
	Meetings  []Meeting    `yaml:"meetings"`
	Actions   []ActionItem `yaml:"actions"`
	Decisions []Decision   `yaml:"decisions"`
	Insights  []string     `yaml:"insights"`
	Metrics   Metrics      `yaml:"-"`
}
