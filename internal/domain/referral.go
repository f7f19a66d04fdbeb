package domain

type ReferralStage string

const (
	StageNew           ReferralStage = "new"
	StageBenefitCheck  ReferralStage = "benefit-check"
	StagePCPReferral   ReferralStage = "pcp-referral"
	StageReadySchedule ReferralStage = "ready-schedule"
	StageScheduled     ReferralStage = "scheduled"
)

// ReferralStages lists the kanban columns in board order.
var ReferralStages = []ReferralStage{
	StageNew,
	StageBenefitCheck,
	StagePCPReferral,
	StageReadySchedule,
	StageScheduled,
}

type Referral struct {
	ID          string        `json:"id"`
	PatientName string        `json:"patientName"`
	City        string        `json:"city"`
	State       string        `json:"state"`
	Zip         string        `json:"zip"`
	Insurance   string        `json:"insurance"`
	TherapyType string        `json:"therapyType"`
	Priority    string        `json:"priority"`
	Stage       ReferralStage `json:"stage"`
	Owner       string        `json:"owner"`
	WaitDays    int           `json:"waitDays"`
	Age         string        `json:"age"`
	ParentName  string        `json:"parentName"`
	Phone       string        `json:"phone"`
	Lat         float64       `json:"lat"`
	Lng         float64       `json:"lng"`
}

// IsUrgent implements the triage rule: a referral is urgent once it has
// waited 30 days, or 7 days while still unprocessed.
func (r *Referral) IsUrgent() bool {
	return r.WaitDays >= 30 || (r.Stage == StageNew && r.WaitDays >= 7)
}
