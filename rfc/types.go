package rfc

type RfcStatus string

const (
	StatusDraft           = RfcStatus("Draft")
	StatusPendingApproval = RfcStatus("Pending Approval")
	StatusApproved        = RfcStatus("Approved")
	StatusRejected        = RfcStatus("Rejected")
	StatusScheduled       = RfcStatus("Scheduled")
	StatusInProgress      = RfcStatus("In Progress")
	StatusCompleted       = RfcStatus("Completed")
)

var Statuses = []RfcStatus{
	StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected,
	StatusScheduled, StatusInProgress, StatusCompleted,
}

type RfcPriority string

const (
	PriorityHigh   = RfcPriority("High")
	PriorityMedium = RfcPriority("Medium")
	PriorityLow    = RfcPriority("Low")
)

type ApprovalEntry struct {
	User     string `json:"user"`
	Date     string `json:"date"`
	Note     string `json:"note,omitempty"`
	Rejected bool   `json:"rejected,omitempty"`
}

type RfcDetails struct {
	ConfigItems      string `json:"configItems"`
	Reason           string `json:"reason"`
	WorkRequired     string `json:"workRequired"`
	WhatChanges      string `json:"whatChanges"`
	ServicesAffected string `json:"servicesAffected"`
	Monitoring       string `json:"monitoring"`
	Backup           string `json:"backup"`
	Security         string `json:"security"`
	Testing          string `json:"testing"`
	Rollback         string `json:"rollback"`
	NetsuritResp     string `json:"netsuritResp"`
	CustomerResp     string `json:"customerResp"`
	Comments         string `json:"comments"`
}

type RfcItem struct {
	Id           string          `json:"id"`
	Title        string          `json:"title"`
	Account      string          `json:"account"`
	Ticket       string          `json:"ticket"`
	Submitter    string          `json:"submitter"`
	Date         string          `json:"date"`
	Priority     RfcPriority     `json:"priority"`
	Status       RfcStatus       `json:"status"`
	Notification string          `json:"notification"`
	Summary      string          `json:"summary"`
	Details      RfcDetails      `json:"details"`
	Approvals    []ApprovalEntry `json:"approvals"`
}

type RfcCreation struct {
	Title        string      `json:"title" binding:"required"`
	Account      string      `json:"account" binding:"required"`
	Ticket       string      `json:"ticket"`
	Submitter    string      `json:"submitter" binding:"required"`
	Date         string      `json:"date" binding:"required"`
	Priority     RfcPriority `json:"priority" binding:"required,oneof=High Medium Low"`
	Status       RfcStatus   `json:"status"`
	Notification string      `json:"notification" binding:"required,oneof='48 Hour' Emergency Custom"`
	Summary      string      `json:"summary"`
	Details      RfcDetails  `json:"details"`
}
