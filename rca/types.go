package rca

type RcaStatus string

const (
	StatusOpen       = RcaStatus("Open")
	StatusInAnalysis = RcaStatus("In analysis")
	StatusActioning  = RcaStatus("Actioning")
	StatusClosed     = RcaStatus("Closed")
)

var Statuses = []RcaStatus{StatusOpen, StatusInAnalysis, StatusActioning, StatusClosed}

type RcaActionStatus string

const (
	ActionOpen       = RcaActionStatus("Open")
	ActionInProgress = RcaActionStatus("In Progress")
	ActionDone       = RcaActionStatus("Done")
)

type RcaActionItem struct {
	Id      string          `json:"id"`
	Title   string          `json:"title"`
	Owner   string          `json:"owner"`
	DueDate string          `json:"dueDate"`
	Status  RcaActionStatus `json:"status"`
}

// RcaTimelineEvent keeps its timestamp as provided (e.g. "2025-06-06 12:06
// EST"); entries come from external ticket systems with mixed formats.
type RcaTimelineEvent struct {
	Ts   string `json:"ts"`
	Note string `json:"note"`
}

type RcaItem struct {
	Id                string             `json:"id"`
	Title             string             `json:"title"`
	Client            string             `json:"client"`
	Owner             string             `json:"owner"`
	SupportManager    string             `json:"supportManager"`
	Slm               string             `json:"slm"`
	Status            RcaStatus          `json:"status"`
	Method            string             `json:"method"`
	SlaType           string             `json:"slaType"`
	Summary           string             `json:"summary"`
	LinkedIncidentIds []string           `json:"linkedIncidentIds"`
	Findings          []string           `json:"findings"`
	Actions           []RcaActionItem    `json:"actions"`
	Timeline          []RcaTimelineEvent `json:"timeline"`
	CreatedAt         string             `json:"createdAt"`
	UpdatedAt         string             `json:"updatedAt"`
	ClosedAt          string             `json:"closedAt,omitempty"`
}

type RcaCreation struct {
	Title             string   `json:"title" binding:"required"`
	Client            string   `json:"client" binding:"required"`
	Owner             string   `json:"owner" binding:"required"`
	SupportManager    string   `json:"supportManager"`
	Slm               string   `json:"slm"`
	Method            string   `json:"method"`
	SlaType           string   `json:"slaType"`
	Summary           string   `json:"summary"`
	LinkedIncidentIds []string `json:"linkedIncidentIds"`
}

// RcaUpdate carries the editable fields; nil leaves a field untouched.
type RcaUpdate struct {
	Status   *RcaStatus          `json:"status"`
	Summary  *string             `json:"summary"`
	Findings *[]string           `json:"findings"`
	Actions  *[]RcaActionItem    `json:"actions"`
	Timeline *[]RcaTimelineEvent `json:"timeline"`
}
