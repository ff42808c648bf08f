package knowledge

// FAQ is a referral-program question/answer pair.
type FAQ struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ReferralRule is a single rule of the referral program.
type ReferralRule struct {
	ID   uint   `json:"id,omitempty"`
	Rule string `json:"rule"`
}
