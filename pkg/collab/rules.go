package collab

// Rule represents a scoring rule.
type Rule struct {
	Name        string
	Category    string // value, fit, risk
	Description string
	Weight      int // Points added, negative for deductions
}

// BaseScore is the score before any rule applies.
const BaseScore = 50

// RatePerThousand is the expected fee per deliverable for every thousand followers, in the offer's currency.
const RatePerThousand = 10.0

// TightDeadlineDays is how close a deadline must be to count as tight.
const TightDeadlineDays = 3

// HeavyScopeDeliverables is the deliverable count above which a deal counts as heavy.
const HeavyScopeDeliverables = 5

//nolint:gochecknoglobals // Scoring configuration constants
var ScoringRules = map[string]Rule{
	// Value Rules
	"BUDGET_STRONG": {
		Name:        "BUDGET_STRONG",
		Category:    "value",
		Description: "Budget per deliverable meets or beats the follower-based rate",
		Weight:      25,
	},
	"BUDGET_FAIR": {
		Name:        "BUDGET_FAIR",
		Category:    "value",
		Description: "Budget per deliverable is at least half the follower-based rate",
		Weight:      10,
	},
	"BUDGET_LOW": {
		Name:        "BUDGET_LOW",
		Category:    "value",
		Description: "Budget per deliverable is under half the follower-based rate",
		Weight:      -20,
	},
	"BUDGET_MISSING": {
		Name:        "BUDGET_MISSING",
		Category:    "value",
		Description: "Offer names no budget",
		Weight:      -10,
	},

	// Fit Rules
	"NICHE_MATCH": {
		Name:        "NICHE_MATCH",
		Category:    "fit",
		Description: "Offer mentions the creator's niche",
		Weight:      15,
	},

	// Risk Rules
	"DEADLINE_TIGHT": {
		Name:        "DEADLINE_TIGHT",
		Category:    "risk",
		Description: "Deadline is within a few days",
		Weight:      -10,
	},
	"DEADLINE_PASSED": {
		Name:        "DEADLINE_PASSED",
		Category:    "risk",
		Description: "Deadline has already passed",
		Weight:      -25,
	},
	"MISSING_CONTACT": {
		Name:        "MISSING_CONTACT",
		Category:    "risk",
		Description: "No contact email to reply to",
		Weight:      -10,
	},
	"SCOPE_HEAVY": {
		Name:        "SCOPE_HEAVY",
		Category:    "risk",
		Description: "More deliverables than a single deal usually carries",
		Weight:      -10,
	},
}
