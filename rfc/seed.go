package rfc

// Seeds shown on first run, before anything has been persisted.
var rfcSeeds = []RfcItem{
	{
		Id:           "RFC-1027",
		Title:        "DR: Group Policy Update to Harden RDP and Local Admin",
		Account:      "Maine Health (DR Site)",
		Ticket:       "INC-45821",
		Submitter:    "Ops - A. Patel",
		Date:         "2025-08-10",
		Priority:     PriorityHigh,
		Status:       StatusPendingApproval,
		Notification: "48 Hour",
		Summary:      "Apply new GPO baselines to DR OU to disable legacy protocols, restrict local admin, enforce RDP NLA, and align with production settings.",
		Details: RfcDetails{
			ConfigItems:      "Active Directory (DR OU), Group Policy Objects, Domain Controllers",
			Reason:           "Reduce attack surface in DR, align with production security baselines, and address audit findings.",
			WorkRequired:     "Backup current GPOs, import hardened templates, link to DR OU, run gpresult verification on representative hosts.",
			WhatChanges:      "RDP NLA enforced, SMB signing required, disable LM/NTLMv1, restrict local admin group memberships, update audit policies.",
			ServicesAffected: "Domain-joined servers at DR during gpupdate interval; potential brief policy refresh CPU spikes.",
			Monitoring:       "Event logs, SIEM alerts for failed logons, GPO processing times via perf counters.",
			Backup:           "Export existing GPOs with GPMC before changes; create system restore points on pilot hosts.",
			Security:         "Aligns with CIS benchmarks; reduces lateral movement paths.",
			Testing:          "Pilot on 3 DR compute hosts; validate RDP access and application functions; roll out in waves.",
			Rollback:         "Unlink new GPOs and re-link previous GPO backups; force gpupdate /force.",
			NetsuritResp:     "Plan, implement, validate, and document changes; coordinate with CAB.",
			CustomerResp:     "Provide maintenance window and pilot host list; validate application behavior.",
			Comments:         "Schedule outside of business hours; notify stakeholders 48 hours prior.",
		},
		Approvals: []ApprovalEntry{
			{User: "SecOps - J. Chen", Date: "2025-08-11", Note: "Looks good, aligns with prod.", Rejected: false},
		},
	},
	{
		Id:           "RFC-1033",
		Title:        "Exchange Online Transport Rule for External Tagging",
		Account:      "Apex Health",
		Ticket:       "REQ-7742",
		Submitter:    "Ops - K. Wong",
		Date:         "2025-08-09",
		Priority:     PriorityMedium,
		Status:       StatusDraft,
		Notification: "Custom",
		Summary:      "Create an Exchange transport rule to prepend \"[External]\" to subject lines for messages from outside the organization.",
		Details: RfcDetails{
			ConfigItems:      "Exchange Online, Transport Rules",
			Reason:           "Improve user awareness to reduce phishing click-through.",
			WorkRequired:     "Define rule conditions and exception list; test with pilot users; communicate change.",
			WhatChanges:      "New transport rule adds subject tag when sender is external; exceptions for trusted partners.",
			ServicesAffected: "Email subject lines for external messages; no delivery impact expected.",
			Monitoring:       "Message trace and Security & Compliance alerts; user feedback channel.",
			Backup:           "Export existing rules; snapshot current configuration via PowerShell.",
			Security:         "No elevated risk; improves user awareness.",
			Testing:          "Pilot group of 10 users; validate exceptions; monitor for false positives.",
			Rollback:         "Disable or delete the transport rule; re-import previous configuration if required.",
			NetsuritResp:     "Configure, test, communicate, and document change.",
			CustomerResp:     "Provide list of trusted partner domains; notify staff.",
			Comments:         "Coordinate with comms; optional banner styling in Outlook.",
		},
		Approvals: []ApprovalEntry{},
	},
}
