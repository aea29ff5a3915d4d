package risk

type RiskStatus string

const (
	StatusOpen       = RiskStatus("Open")
	StatusInReview   = RiskStatus("In Review")
	StatusMitigating = RiskStatus("Mitigating")
	StatusClosed     = RiskStatus("Closed")
)

var Statuses = []RiskStatus{StatusOpen, StatusInReview, StatusMitigating, StatusClosed}

type RiskLevel string

const (
	LevelLow      = RiskLevel("Low")
	LevelMedium   = RiskLevel("Medium")
	LevelHigh     = RiskLevel("High")
	LevelCritical = RiskLevel("Critical")
)

type RiskLikelihood string

const (
	LikelihoodRare          = RiskLikelihood("Rare")
	LikelihoodUnlikely      = RiskLikelihood("Unlikely")
	LikelihoodPossible      = RiskLikelihood("Possible")
	LikelihoodLikely        = RiskLikelihood("Likely")
	LikelihoodAlmostCertain = RiskLikelihood("Almost Certain")
)

type MitigationStatus string

const (
	MitigationOpen       = MitigationStatus("Open")
	MitigationInProgress = MitigationStatus("In Progress")
	MitigationDone       = MitigationStatus("Done")
)

type RiskMitigationItem struct {
	Id      string           `json:"id"`
	Title   string           `json:"title"`
	Owner   string           `json:"owner"`
	DueDate string           `json:"dueDate"`
	Status  MitigationStatus `json:"status"`
}

type RiskItem struct {
	Id               string               `json:"id"`
	Category         string               `json:"category"`
	Title            string               `json:"title"`
	Ticket           string               `json:"ticket,omitempty"`
	Client           string               `json:"client"`
	Owner            string               `json:"owner"`
	Status           RiskStatus           `json:"status"`
	Priority         RiskLevel            `json:"priority"`
	Impact           RiskLevel            `json:"impact"`
	Likelihood       RiskLikelihood       `json:"likelihood"`
	Date             string               `json:"date"`
	BriefDescription string               `json:"briefDescription"`
	Analysis         string               `json:"analysis"`
	Tags             []string             `json:"tags"`
	Mitigations      []RiskMitigationItem `json:"mitigations"`
	NextReviewDue    string               `json:"nextReviewDue,omitempty"`
}

type RiskCreation struct {
	Category         string         `json:"category" binding:"required"`
	Title            string         `json:"title" binding:"required"`
	Ticket           string         `json:"ticket"`
	Client           string         `json:"client" binding:"required"`
	Owner            string         `json:"owner" binding:"required"`
	Priority         RiskLevel      `json:"priority" binding:"required,oneof=Low Medium High Critical"`
	Impact           RiskLevel      `json:"impact" binding:"required,oneof=Low Medium High Critical"`
	Likelihood       RiskLikelihood `json:"likelihood" binding:"required,oneof=Rare Unlikely Possible Likely 'Almost Certain'"`
	Date             string         `json:"date" binding:"required"`
	BriefDescription string         `json:"briefDescription"`
	Analysis         string         `json:"analysis"`
	Tags             []string       `json:"tags"`
	NextReviewDue    string         `json:"nextReviewDue"`
}

// RiskUpdate carries the editable fields; nil leaves a field untouched.
type RiskUpdate struct {
	Status        *RiskStatus           `json:"status"`
	Analysis      *string               `json:"analysis"`
	Tags          *[]string             `json:"tags"`
	Mitigations   *[]RiskMitigationItem `json:"mitigations"`
	NextReviewDue *string               `json:"nextReviewDue"`
}
