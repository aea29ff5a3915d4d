package knowledge

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"sync"
	"time"

	"opsconsole/bizerror"
	"opsconsole/event"
	"opsconsole/isoweek"
	"opsconsole/session"
	"opsconsole/storage"
)

const StorageKey = "oc-knowledge-assignments-v1"

var (
	UpsertCellAssignmentFunc = UpsertCellAssignment
	SetStatusFunc            = SetStatus
	SetReviewStatusFunc      = SetReviewStatus
	QueryAssignmentsFunc     = QueryAssignments
	WeekKpisFunc             = WeekKpis
	ReviewQueueFunc          = ReviewQueue
	CompanyStatsFunc         = CompanyStats
	SendTasksFunc            = SendTasks

	nowFunc = time.Now

	mutex       sync.Mutex
	assignments []Assignment
	lastUsedId  int
)

var idSuffixPattern = regexp.MustCompile(`^KC-(\d+)$`)

// Bootstrap loads the assignment collection. The persisted value is either a
// bare array or a snapshot wrapping one; company ids unknown to the
// reference list are discarded on read. Column and focus caches are dropped
// so they reload lazily from the active store.
func Bootstrap() {
	columnsMutex.Lock()
	columnsLoaded = false
	columnsMutex.Unlock()
	focusMutex.Lock()
	focusLoaded = false
	focusMutex.Unlock()

	mutex.Lock()
	defer mutex.Unlock()

	loaded := []Assignment{}
	snapshot := Snapshot{}
	if storage.LoadJSON(StorageKey, &snapshot) && snapshot.Assignments != nil {
		loaded = snapshot.Assignments
	} else if bare := []Assignment{}; storage.LoadJSON(StorageKey, &bare) {
		loaded = bare
	}

	for i := range loaded {
		kept := []string{}
		for _, id := range loaded[i].CompanyIds {
			if KnownCompany(id) {
				kept = append(kept, id)
			}
		}
		loaded[i].CompanyIds = kept
	}
	assignments = loaded

	// Ids are issued from a counter seeded once from the highest persisted
	// suffix; 1000 when the ledger is empty, so the first id is KC-1001.
	lastUsedId = 1000
	for _, a := range assignments {
		m := idSuffixPattern.FindStringSubmatch(a.Id)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > lastUsedId {
			lastUsedId = n
		}
	}
}

func nextId() string {
	lastUsedId++
	return fmt.Sprintf("KC-%d", lastUsedId)
}

func save() {
	storage.SaveJSON(StorageKey, Snapshot{Assignments: assignments})
}

func validateCell(week, section, engineer string) error {
	if _, _, err := isoweek.Parse(week); err != nil {
		return &bizerror.ErrBadParam{Cause: err}
	}
	if !KnownSection(section) {
		return &bizerror.ErrBadParam{Cause: fmt.Errorf("unknown section %q", section)}
	}
	if !KnownEngineer(engineer) {
		return &bizerror.ErrBadParam{Cause: fmt.Errorf("unknown engineer %q", engineer)}
	}
	return nil
}

// UpsertCellAssignment is the grid's single mutation: an empty companyId
// clears the (week, section, engineer) cell, a non-empty one replaces the
// cell's assignment in place or creates it. At most one assignment exists
// per cell key.
func UpsertCellAssignment(week, section, engineer, companyId string, identity session.Identity) (*Assignment, error) {
	if err := validateCell(week, section, engineer); err != nil {
		return nil, err
	}
	if companyId != "" && !KnownCompany(companyId) {
		return nil, &bizerror.ErrBadParam{Cause: fmt.Errorf("unknown company %q", companyId)}
	}
	due, err := isoweek.FridayOf(week)
	if err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}

	mutex.Lock()
	defer mutex.Unlock()

	existing := -1
	for i := range assignments {
		if assignments[i].WeekIso == week && assignments[i].Section == section && assignments[i].Engineer == engineer {
			existing = i
			break
		}
	}

	if companyId == "" {
		if existing < 0 {
			return nil, nil
		}
		removed := assignments[existing]
		assignments = append(assignments[:existing], assignments[existing+1:]...)
		save()
		event.CreateEventFunc("KNOWLEDGE", removed.Id, section+" / "+engineer, event.EventCategoryDeleted, nil, identity.Name)
		return nil, nil
	}

	if existing >= 0 {
		assignments[existing].CompanyIds = []string{companyId}
		assignments[existing].DueDate = due
		updated := assignments[existing]
		save()
		event.CreateEventFunc("KNOWLEDGE", updated.Id, section+" / "+engineer, event.EventCategoryPropertyUpdated,
			[]event.UpdatedProperty{{PropertyName: "companyIds", NewValue: companyId}}, identity.Name)
		return &updated, nil
	}

	created := Assignment{
		Id:           nextId(),
		WeekIso:      week,
		Section:      section,
		Engineer:     engineer,
		CompanyIds:   []string{companyId},
		DueDate:      due,
		Status:       StatusNotStarted,
		CreatedAt:    nowFunc().UTC().Format(time.RFC3339),
		ReviewStatus: ReviewPending,
	}
	assignments = append([]Assignment{created}, assignments...)
	save()
	event.CreateEventFunc("KNOWLEDGE", created.Id, section+" / "+engineer, event.EventCategoryCreated, nil, identity.Name)
	return &created, nil
}

// SetStatus updates an assignment's status. Moving to Complete stamps
// submittedAt once; re-completing keeps the original stamp, and regressing
// from Complete leaves it untouched.
func SetStatus(id string, status Status, identity session.Identity) (*Assignment, error) {
	if status != StatusNotStarted && status != StatusInProgress && status != StatusComplete {
		return nil, &bizerror.ErrBadParam{Cause: fmt.Errorf("unknown status %q", status)}
	}

	mutex.Lock()
	defer mutex.Unlock()
	for i := range assignments {
		if assignments[i].Id != id {
			continue
		}
		old := assignments[i].Status
		assignments[i].Status = status
		if status == StatusComplete && assignments[i].SubmittedAt == "" {
			assignments[i].SubmittedAt = nowFunc().UTC().Format(time.RFC3339)
		}
		updated := assignments[i]
		save()
		event.CreateEventFunc("KNOWLEDGE", id, updated.Section+" / "+updated.Engineer, event.EventCategoryPropertyUpdated,
			[]event.UpdatedProperty{{PropertyName: "status", OldValue: string(old), NewValue: string(status)}}, identity.Name)
		return &updated, nil
	}
	return nil, bizerror.ErrNotFound
}

// SetReviewStatus updates the review outcome. Reviewing an incomplete
// assignment is permitted by the data model.
func SetReviewStatus(id string, reviewStatus ReviewStatus, identity session.Identity) (*Assignment, error) {
	if reviewStatus != ReviewPending && reviewStatus != ReviewApproved && reviewStatus != ReviewRejected {
		return nil, &bizerror.ErrBadParam{Cause: fmt.Errorf("unknown review status %q", reviewStatus)}
	}

	mutex.Lock()
	defer mutex.Unlock()
	for i := range assignments {
		if assignments[i].Id != id {
			continue
		}
		old := assignments[i].ReviewStatus
		assignments[i].ReviewStatus = reviewStatus
		updated := assignments[i]
		save()
		event.CreateEventFunc("KNOWLEDGE", id, updated.Section+" / "+updated.Engineer, event.EventCategoryPropertyUpdated,
			[]event.UpdatedProperty{{PropertyName: "reviewStatus", OldValue: string(old), NewValue: string(reviewStatus)}}, identity.Name)
		return &updated, nil
	}
	return nil, bizerror.ErrNotFound
}

// QueryAssignments returns the collection, newest first, optionally scoped
// to one week.
func QueryAssignments(week string) []Assignment {
	mutex.Lock()
	defer mutex.Unlock()
	result := []Assignment{}
	for _, a := range assignments {
		if week == "" || a.WeekIso == week {
			result = append(result, a)
		}
	}
	return result
}

type WeekKpiReport struct {
	CreatedThisWeek   int `json:"createdThisWeek"`
	SectionsCovered   int `json:"sectionsCovered"`
	CompletionPercent int `json:"completionPercent"`
	OverdueCount      int `json:"overdueCount"`
}

// WeekKpis derives the week's headline numbers. createdThisWeek counts
// assignments of any week whose creation date falls inside the given ISO
// week; the other three are scoped to assignments labeled with the week.
func WeekKpis(week string) (*WeekKpiReport, error) {
	if _, _, err := isoweek.Parse(week); err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	today := nowFunc().UTC().Format("2006-01-02")

	mutex.Lock()
	defer mutex.Unlock()

	report := WeekKpiReport{}
	sections := map[string]bool{}
	total, completed := 0, 0
	for _, a := range assignments {
		if created, err := time.Parse(time.RFC3339, a.CreatedAt); err == nil && isoweek.WeekOf(created) == week {
			report.CreatedThisWeek++
		}
		if a.WeekIso != week {
			continue
		}
		total++
		sections[a.Section] = true
		if a.Status == StatusComplete {
			completed++
		} else if a.DueDate < today {
			report.OverdueCount++
		}
	}
	report.SectionsCovered = len(sections)
	report.CompletionPercent = percent(completed, total)
	return &report, nil
}

type CellStatus struct {
	CompletionPercent int      `json:"completionPercent"`
	Tier              CellTier `json:"tier"`
}

// DeriveCellStatus reduces one cell's assignments to a completion percent
// and a color tier: complete when everything is done, partial when anything
// is done or underway, none otherwise. An empty cell is neutral.
func DeriveCellStatus(items []Assignment) CellStatus {
	if len(items) == 0 {
		return CellStatus{CompletionPercent: 0, Tier: TierNeutral}
	}
	complete, inProgress := 0, 0
	for _, a := range items {
		switch a.Status {
		case StatusComplete:
			complete++
		case StatusInProgress:
			inProgress++
		}
	}
	status := CellStatus{CompletionPercent: percent(complete, len(items))}
	switch {
	case complete == len(items):
		status.Tier = TierComplete
	case complete > 0 || inProgress > 0:
		status.Tier = TierPartial
	default:
		status.Tier = TierNone
	}
	return status
}

// ReviewQueue lists the week's completed assignments still awaiting review,
// in collection order (newest first).
func ReviewQueue(week string) []Assignment {
	mutex.Lock()
	defer mutex.Unlock()
	result := []Assignment{}
	for _, a := range assignments {
		if a.WeekIso == week && a.Status == StatusComplete && (a.ReviewStatus == "" || a.ReviewStatus == ReviewPending) {
			result = append(result, a)
		}
	}
	return result
}

type CompanyStatsReport struct {
	Created           int `json:"created"`
	SectionsCovered   int `json:"sectionsCovered"`
	CompletionPercent int `json:"completionPercent"`
}

// CompanyStats summarizes a focus company's progress within a week, scoped
// to assignments whose first company is the given one.
func CompanyStats(week, companyId string) *CompanyStatsReport {
	report := CompanyStatsReport{}
	if companyId == "" {
		return &report
	}

	mutex.Lock()
	defer mutex.Unlock()
	sections := map[string]bool{}
	completed := 0
	for _, a := range assignments {
		if a.WeekIso != week || len(a.CompanyIds) == 0 || a.CompanyIds[0] != companyId {
			continue
		}
		report.Created++
		sections[a.Section] = true
		if a.Status == StatusComplete {
			completed++
		}
	}
	report.SectionsCovered = len(sections)
	report.CompletionPercent = percent(completed, report.Created)
	return &report
}

// SendTasks simulates notifying an engineer of the week's tasks; there is
// no delivery side effect.
func SendTasks(week, engineer string) (string, error) {
	if !KnownEngineer(engineer) {
		return "", &bizerror.ErrBadParam{Cause: fmt.Errorf("unknown engineer %q", engineer)}
	}

	mutex.Lock()
	defer mutex.Unlock()
	for _, a := range assignments {
		if a.WeekIso == week && a.Engineer == engineer {
			return fmt.Sprintf("Tasks sent to %s via Teams and Email", engineer), nil
		}
	}
	return fmt.Sprintf("No tasks to send for %s", engineer), nil
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
