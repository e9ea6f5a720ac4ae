package constants

// ==========================
// ✅ Kondisi barang (ads)
// ==========================
const (
	ConditionNew  = "new"
	ConditionUsed = "used"
)

// ==========================
// ✅ Status proposal tukar
// ==========================
const (
	ProposalStatusPending  = "pending"
	ProposalStatusAccepted = "accepted"
	ProposalStatusRejected = "rejected"
)

var (
	AllConditions = []string{
		ConditionNew,
		ConditionUsed,
	}

	AllProposalStatuses = []string{
		ProposalStatusPending,
		ProposalStatusAccepted,
		ProposalStatusRejected,
	}
)

func IsValidCondition(s string) bool {
	for _, c := range AllConditions {
		if c == s {
			return true
		}
	}
	return false
}

func IsValidProposalStatus(s string) bool {
	for _, st := range AllProposalStatuses {
		if st == s {
			return true
		}
	}
	return false
}
