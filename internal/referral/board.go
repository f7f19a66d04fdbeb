package referral

import "github.com/therapprove/provider-portal/backend/internal/domain"

// Column is one kanban lane on the workboard.
type Column struct {
	Stage     domain.ReferralStage `json:"stage"`
	Referrals []Row                `json:"referrals"`
}

// Board groups filtered rows into lanes, one per pipeline stage, in
// board order. Every stage gets a column even when empty.
func Board(rows []Row) []Column {
	byStage := make(map[domain.ReferralStage][]Row, len(domain.ReferralStages))
	for _, row := range rows {
		byStage[row.Stage] = append(byStage[row.Stage], row)
	}

	columns := make([]Column, 0, len(domain.ReferralStages))
	for _, stage := range domain.ReferralStages {
		refs := byStage[stage]
		if refs == nil {
			refs = []Row{}
		}
		columns = append(columns, Column{Stage: stage, Referrals: refs})
	}
	return columns
}
