package types

// GeneralSettings holds the org-wide preferences. It is stored as a
// one-element collection under its own slot so it shares the load/save
// machinery of every other entity kind.
type GeneralSettings struct {
	ID                 string `json:"id" yaml:"id"`
	CompanyName        string `json:"companyName" yaml:"companyName"`
	Timezone           string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Currency           string `json:"currency,omitempty" yaml:"currency,omitempty"`
	WorkweekStart      string `json:"workweekStart,omitempty" yaml:"workweekStart,omitempty"`
	EmailNotifications bool   `json:"emailNotifications" yaml:"emailNotifications"`
	WeeklyDigest       bool   `json:"weeklyDigest" yaml:"weeklyDigest"`
	Timestamps         `yaml:",inline"`
}

func (g GeneralSettings) RecordID() string { return g.ID }
