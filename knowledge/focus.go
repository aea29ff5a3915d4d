package knowledge

import (
	"sync"

	"opsconsole/storage"
)

const FocusStorageKey = "oc-knowledge-week-focus-v1"

// MaxFocusCompanies caps the focus rotation per week.
const MaxFocusCompanies = 4

var (
	WeekFocusCompaniesFunc    = WeekFocusCompanies
	SetWeekFocusCompaniesFunc = SetWeekFocusCompanies

	focusMutex  sync.Mutex
	weekFocus   map[string][]string
	focusLoaded bool
)

func loadFocusLocked() {
	if focusLoaded {
		return
	}
	loaded := map[string][]string{}
	if storage.LoadJSON(FocusStorageKey, &loaded) {
		weekFocus = loaded
	} else {
		weekFocus = map[string][]string{}
	}
	focusLoaded = true
}

func filterFocus(companyIds []string) []string {
	kept := []string{}
	for _, id := range companyIds {
		if !KnownCompany(id) {
			continue
		}
		duplicate := false
		for _, k := range kept {
			if k == id {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		kept = append(kept, id)
		if len(kept) == MaxFocusCompanies {
			break
		}
	}
	return kept
}

// WeekFocusCompanies returns the week's focus rotation, filtered to the
// company reference list and capped at four.
func WeekFocusCompanies(week string) []string {
	focusMutex.Lock()
	defer focusMutex.Unlock()
	loadFocusLocked()
	return filterFocus(weekFocus[week])
}

// SetWeekFocusCompanies replaces the week's rotation. The mapping keeps an
// entry for every week ever touched; nothing is pruned.
func SetWeekFocusCompanies(week string, companyIds []string) []string {
	focusMutex.Lock()
	defer focusMutex.Unlock()
	loadFocusLocked()
	kept := filterFocus(companyIds)
	weekFocus[week] = kept
	storage.SaveJSON(FocusStorageKey, weekFocus)
	return append([]string{}, kept...)
}
