package domain

// Platform identifies an external tool the demo pretends to connect to.
type Platform string

const (
	PlatformSlack      Platform = "slack"
	PlatformGmail      Platform = "gmail"
	PlatformCalendar   Platform = "gcal"
	PlatformSalesforce Platform = "salesforce"
	PlatformJira       Platform = "jira"
	PlatformNotion     Platform = "notion"
)

// Platforms lists the closed set of connectable platforms.
func Platforms() []Platform {
	return []Platform{
		PlatformSlack,
		PlatformGmail,
		PlatformCalendar,
		PlatformSalesforce,
		PlatformJira,
		PlatformNotion,
	}
}

// Valid reports whether the platform is a member of the closed set.
func (p Platform) Valid() bool {
	for _, known := range Platforms() {
		if p == known {
			return true
		}
	}
	return false
}

// ConnectionStatus is the lifecycle phase of a simulated authorization flow.
// StatusNotConnected doubles as the idle state of the simulator.
type ConnectionStatus string

const (
	StatusNotConnected ConnectionStatus = "not-connected"
	StatusLoading      ConnectionStatus = "loading"
	StatusConsent      ConnectionStatus = "consent"
	StatusConnecting   ConnectionStatus = "connecting"
	StatusScanning     ConnectionStatus = "scanning"
	StatusConnected    ConnectionStatus = "connected"
	StatusError        ConnectionStatus = "error"
	StatusPaused       ConnectionStatus = "paused"
	StatusPending      ConnectionStatus = "pending"
)

// Terminal reports whether the status ends a simulation run.
func (s ConnectionStatus) Terminal() bool {
	return s == StatusConnected || s == StatusError || s == StatusNotConnected
}
