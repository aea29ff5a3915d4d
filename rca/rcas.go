package rca

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"opsconsole/bizerror"
	"opsconsole/event"
	"opsconsole/session"
	"opsconsole/storage"
)

const StorageKey = "oc-rcas"

var (
	QueryRcasFunc = QueryRcas
	CreateRcaFunc = CreateRca
	UpdateRcaFunc = UpdateRca

	nowFunc = time.Now

	mutex      sync.Mutex
	items      []RcaItem
	lastUsedId int
)

var idSuffixPattern = regexp.MustCompile(`^RCA-(\d+)$`)

var rcaSeeds = []RcaItem{
	{
		Id:             "RCA-3765008",
		Title:          "SmileBack Negative Review: Ticket 3765008 (CCI)",
		Client:         "Community Concepts",
		Owner:          "Alvin Basdeo",
		SupportManager: "Alvin Basdeo",
		Slm:            "Paul Barnard",
		Status:         StatusInAnalysis,
		Method:         "Timeline",
		SlaType:        "SLA",
		Summary:        "Customer reported negative experience linked to ticket 3765008. Investigating workflow timing, communication, and handoffs.",
		LinkedIncidentIds: []string{"3765008"},
		Findings:          []string{},
		Actions:           []RcaActionItem{},
		Timeline: []RcaTimelineEvent{
			{Ts: "2025-06-06 12:06 EST", Note: "Ticket came in and began processing"},
			{Ts: "2025-06-06 12:19 EST", Note: "Ticket landed on mains board"},
			{Ts: "2025-06-06 12:24 EST", Note: "Ticket discussed internally and assigned"},
			{Ts: "2025-06-06 12:49 EST", Note: "Ticket acknowledged"},
			{Ts: "2025-06-06 13:50 EST", Note: "Updated and rescheduled for 8:30 AM next day"},
			{Ts: "2025-06-06 13:50 EST", Note: "Authorized QB install; user not connected to QB share; will call to check mapped drive"},
		},
		CreatedAt: "2025-06-20T00:00:00Z",
		UpdatedAt: "2025-06-20T00:00:00Z",
	},
}

func Bootstrap() {
	mutex.Lock()
	defer mutex.Unlock()

	loaded := []RcaItem{}
	if storage.LoadJSON(StorageKey, &loaded) {
		items = loaded
	} else {
		items = append([]RcaItem{}, rcaSeeds...)
	}

	lastUsedId = 1000
	for _, r := range items {
		m := idSuffixPattern.FindStringSubmatch(r.Id)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > lastUsedId {
			lastUsedId = n
		}
	}
}

func save() {
	storage.SaveJSON(StorageKey, items)
}

func QueryRcas() []RcaItem {
	mutex.Lock()
	defer mutex.Unlock()
	return append([]RcaItem{}, items...)
}

func CreateRca(creation RcaCreation, identity session.Identity) (*RcaItem, error) {
	method := creation.Method
	if method == "" {
		method = "Timeline"
	}
	linked := creation.LinkedIncidentIds
	if linked == nil {
		linked = []string{}
	}

	mutex.Lock()
	defer mutex.Unlock()
	lastUsedId++
	now := nowFunc().UTC().Format(time.RFC3339)
	record := RcaItem{
		Id:                fmt.Sprintf("RCA-%d", lastUsedId),
		Title:             creation.Title,
		Client:            creation.Client,
		Owner:             creation.Owner,
		SupportManager:    creation.SupportManager,
		Slm:               creation.Slm,
		Status:            StatusOpen,
		Method:            method,
		SlaType:           creation.SlaType,
		Summary:           creation.Summary,
		LinkedIncidentIds: linked,
		Findings:          []string{},
		Actions:           []RcaActionItem{},
		Timeline:          []RcaTimelineEvent{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	items = append([]RcaItem{record}, items...)
	save()
	event.CreateEventFunc("RCA", record.Id, record.Title, event.EventCategoryCreated, nil, identity.Name)
	return &record, nil
}

// UpdateRca applies the non-nil fields of the update, refreshes updatedAt
// and stamps closedAt the first time the status reaches Closed.
func UpdateRca(id string, update RcaUpdate, identity session.Identity) (*RcaItem, error) {
	if update.Status != nil && !knownStatus(*update.Status) {
		return nil, &bizerror.ErrBadParam{Cause: fmt.Errorf("unknown status %q", *update.Status)}
	}

	mutex.Lock()
	defer mutex.Unlock()
	for i := range items {
		if items[i].Id != id {
			continue
		}
		changed := []event.UpdatedProperty{}
		if update.Status != nil && *update.Status != items[i].Status {
			changed = append(changed, event.UpdatedProperty{
				PropertyName: "status", OldValue: string(items[i].Status), NewValue: string(*update.Status)})
			items[i].Status = *update.Status
			if items[i].Status == StatusClosed && items[i].ClosedAt == "" {
				items[i].ClosedAt = nowFunc().UTC().Format(time.RFC3339)
			}
		}
		if update.Summary != nil {
			items[i].Summary = *update.Summary
		}
		if update.Findings != nil {
			items[i].Findings = *update.Findings
		}
		if update.Actions != nil {
			items[i].Actions = *update.Actions
		}
		if update.Timeline != nil {
			items[i].Timeline = *update.Timeline
		}
		items[i].UpdatedAt = nowFunc().UTC().Format(time.RFC3339)
		updated := items[i]
		save()
		event.CreateEventFunc("RCA", id, updated.Title, event.EventCategoryPropertyUpdated, changed, identity.Name)
		return &updated, nil
	}
	return nil, bizerror.ErrNotFound
}

func knownStatus(status RcaStatus) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
