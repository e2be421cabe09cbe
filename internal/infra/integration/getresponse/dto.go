package getresponse

// createContactRequest is the body for POST /v3/contacts.
type createContactRequest struct {
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Campaign   campaign `json:"campaign"`
	DayOfCycle int      `json:"dayOfCycle"`
}

type campaign struct {
	CampaignID string `json:"campaignId"`
}

// Status classifies a subscription attempt.
type Status int

const (
	// Sent means the provider accepted the contact.
	Sent Status = iota
	// Skipped means no call was made because the client is not configured.
	Skipped
	// Failed means the call was made and did not succeed.
	Failed
)

func (s Status) String() string {
	switch s {
	case Sent:
		return "sent"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one subscription attempt. Subscribe never
// returns an error; the three causes stay inspectable here instead.
type Outcome struct {
	Status Status
	Reason string
}

// Subscribed reports whether the contact reached the provider.
func (o Outcome) Subscribed() bool {
	return o.Status == Sent
}

// ReasonNotConfigured is the Outcome.Reason used when credentials or the
// list id are missing.
const ReasonNotConfigured = "api key or list id not configured"
