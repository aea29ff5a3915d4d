package risk

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"

	"opsconsole/bizerror"
	"opsconsole/event"
	"opsconsole/session"
	"opsconsole/storage"
)

const StorageKey = "oc-risks"

var (
	QueryRisksFunc = QueryRisks
	CreateRiskFunc = CreateRisk
	UpdateRiskFunc = UpdateRisk

	mutex      sync.Mutex
	items      []RiskItem
	lastUsedId int
)

var idSuffixPattern = regexp.MustCompile(`^RISK-(\d+)$`)

var riskSeeds = []RiskItem{
	{
		Id:               "RISK-221",
		Category:         "Infrastructure",
		Title:            "Single point of failure in build agents",
		Client:           "Internal",
		Owner:            "S. Brooks",
		Status:           StatusOpen,
		Priority:         LevelHigh,
		Impact:           LevelHigh,
		Likelihood:       LikelihoodPossible,
		Date:             "2025-08-01",
		BriefDescription: "All release builds depend on a single build agent host.",
		Analysis:         "Loss of the host blocks every release pipeline until a replacement is provisioned.",
		Tags:             []string{"build", "availability"},
		Mitigations:      []RiskMitigationItem{},
	},
	{
		Id:               "RISK-233",
		Category:         "Security",
		Title:            "Unpatched OpenSSL on edge nodes",
		Client:           "Internal",
		Owner:            "J. Chen",
		Status:           StatusMitigating,
		Priority:         LevelCritical,
		Impact:           LevelCritical,
		Likelihood:       LikelihoodLikely,
		Date:             "2025-08-10",
		BriefDescription: "Edge nodes run an OpenSSL build with known CVEs.",
		Analysis:         "Exploitable remotely; patch window pending customer maintenance approval.",
		Tags:             []string{"security", "patching"},
		Mitigations: []RiskMitigationItem{
			{Id: "M-1", Title: "Schedule emergency patch window", Owner: "J. Chen", DueDate: "2025-08-20", Status: MitigationInProgress},
		},
	},
}

func Bootstrap() {
	mutex.Lock()
	defer mutex.Unlock()

	loaded := []RiskItem{}
	if storage.LoadJSON(StorageKey, &loaded) {
		items = loaded
	} else {
		items = append([]RiskItem{}, riskSeeds...)
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

func QueryRisks() []RiskItem {
	mutex.Lock()
	defer mutex.Unlock()
	return append([]RiskItem{}, items...)
}

func CreateRisk(creation RiskCreation, identity session.Identity) (*RiskItem, error) {
	tags := creation.Tags
	if tags == nil {
		tags = []string{}
	}

	mutex.Lock()
	defer mutex.Unlock()
	lastUsedId++
	record := RiskItem{
		Id:               fmt.Sprintf("RISK-%d", lastUsedId),
		Category:         creation.Category,
		Title:            creation.Title,
		Ticket:           creation.Ticket,
		Client:           creation.Client,
		Owner:            creation.Owner,
		Status:           StatusOpen,
		Priority:         creation.Priority,
		Impact:           creation.Impact,
		Likelihood:       creation.Likelihood,
		Date:             creation.Date,
		BriefDescription: creation.BriefDescription,
		Analysis:         creation.Analysis,
		Tags:             tags,
		Mitigations:      []RiskMitigationItem{},
		NextReviewDue:    creation.NextReviewDue,
	}
	items = append([]RiskItem{record}, items...)
	save()
	event.CreateEventFunc("RISK", record.Id, record.Title, event.EventCategoryCreated, nil, identity.Name)
	return &record, nil
}

// UpdateRisk applies the non-nil fields of the update.
func UpdateRisk(id string, update RiskUpdate, identity session.Identity) (*RiskItem, error) {
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
		}
		if update.Analysis != nil {
			items[i].Analysis = *update.Analysis
		}
		if update.Tags != nil {
			items[i].Tags = *update.Tags
		}
		if update.Mitigations != nil {
			items[i].Mitigations = *update.Mitigations
		}
		if update.NextReviewDue != nil {
			items[i].NextReviewDue = *update.NextReviewDue
		}
		updated := items[i]
		save()
		event.CreateEventFunc("RISK", id, updated.Title, event.EventCategoryPropertyUpdated, changed, identity.Name)
		return &updated, nil
	}
	return nil, bizerror.ErrNotFound
}

func knownStatus(status RiskStatus) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
