package rfc

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

const StorageKey = "oc-rfcs"

var (
	QueryRfcsFunc    = QueryRfcs
	CreateRfcFunc    = CreateRfc
	ApproveRfcFunc   = ApproveRfc
	RejectRfcFunc    = RejectRfc
	SetRfcStatusFunc = SetRfcStatus

	nowFunc = time.Now

	mutex      sync.Mutex
	items      []RfcItem
	lastUsedId int
)

var idSuffixPattern = regexp.MustCompile(`^RFC-(\d+)$`)

// Bootstrap loads the register, seeding it on first run.
func Bootstrap() {
	mutex.Lock()
	defer mutex.Unlock()

	loaded := []RfcItem{}
	if storage.LoadJSON(StorageKey, &loaded) {
		items = loaded
	} else {
		items = append([]RfcItem{}, rfcSeeds...)
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

func QueryRfcs() []RfcItem {
	mutex.Lock()
	defer mutex.Unlock()
	return append([]RfcItem{}, items...)
}

func CreateRfc(creation RfcCreation, identity session.Identity) (*RfcItem, error) {
	status := creation.Status
	if status == "" {
		status = StatusDraft
	}
	if !knownStatus(status) {
		return nil, &bizerror.ErrBadParam{Cause: fmt.Errorf("unknown status %q", status)}
	}

	mutex.Lock()
	defer mutex.Unlock()
	lastUsedId++
	record := RfcItem{
		Id:           fmt.Sprintf("RFC-%d", lastUsedId),
		Title:        creation.Title,
		Account:      creation.Account,
		Ticket:       creation.Ticket,
		Submitter:    creation.Submitter,
		Date:         creation.Date,
		Priority:     creation.Priority,
		Status:       status,
		Notification: creation.Notification,
		Summary:      creation.Summary,
		Details:      creation.Details,
		Approvals:    []ApprovalEntry{},
	}
	items = append([]RfcItem{record}, items...)
	save()
	event.CreateEventFunc("RFC", record.Id, record.Title, event.EventCategoryCreated, nil, identity.Name)
	return &record, nil
}

// ApproveRfc appends an approval entry and moves the RFC to Approved.
func ApproveRfc(id, note string, identity session.Identity) (*RfcItem, error) {
	return review(id, note, false, identity)
}

// RejectRfc appends a rejection entry and moves the RFC to Rejected.
func RejectRfc(id, note string, identity session.Identity) (*RfcItem, error) {
	return review(id, note, true, identity)
}

func review(id, note string, rejected bool, identity session.Identity) (*RfcItem, error) {
	mutex.Lock()
	defer mutex.Unlock()
	for i := range items {
		if items[i].Id != id {
			continue
		}
		entry := ApprovalEntry{
			User:     identity.Name,
			Date:     nowFunc().UTC().Format("2006-01-02"),
			Note:     note,
			Rejected: rejected,
		}
		items[i].Approvals = append(items[i].Approvals, entry)
		old := items[i].Status
		if rejected {
			items[i].Status = StatusRejected
		} else {
			items[i].Status = StatusApproved
		}
		updated := items[i]
		save()
		event.CreateEventFunc("RFC", id, updated.Title, event.EventCategoryPropertyUpdated,
			[]event.UpdatedProperty{{PropertyName: "status", OldValue: string(old), NewValue: string(updated.Status)}}, identity.Name)
		return &updated, nil
	}
	return nil, bizerror.ErrNotFound
}

func SetRfcStatus(id string, status RfcStatus, identity session.Identity) (*RfcItem, error) {
	if !knownStatus(status) {
		return nil, &bizerror.ErrBadParam{Cause: fmt.Errorf("unknown status %q", status)}
	}

	mutex.Lock()
	defer mutex.Unlock()
	for i := range items {
		if items[i].Id != id {
			continue
		}
		old := items[i].Status
		items[i].Status = status
		updated := items[i]
		save()
		event.CreateEventFunc("RFC", id, updated.Title, event.EventCategoryPropertyUpdated,
			[]event.UpdatedProperty{{PropertyName: "status", OldValue: string(old), NewValue: string(status)}}, identity.Name)
		return &updated, nil
	}
	return nil, bizerror.ErrNotFound
}

func knownStatus(status RfcStatus) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
