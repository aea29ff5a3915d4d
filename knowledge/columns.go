package knowledge

import (
	"sync"

	"opsconsole/storage"
)

const ColumnsStorageKey = "oc-knowledge-visible-cols-v1"

// DefaultVisibleColumns is the grid's initial column choice.
var DefaultVisibleColumns = []string{"Printing", "VPN", "Backup", "Licensing"}

var (
	VisibleColumnsFunc    = VisibleColumns
	SetVisibleColumnsFunc = SetVisibleColumns

	columnsMutex  sync.Mutex
	columns       []string
	columnsLoaded bool
)

// listedSection reports membership in the section list proper; the
// deprecated alias is readable on assignments but never a column.
func listedSection(name string) bool {
	for _, s := range Sections {
		if s == name {
			return true
		}
	}
	return false
}

func filterColumns(cols []string) []string {
	kept := []string{}
	for _, c := range cols {
		if listedSection(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

// VisibleColumns returns the persisted column preference, filtered to the
// known enumeration, or the default when nothing usable is stored.
func VisibleColumns() []string {
	columnsMutex.Lock()
	defer columnsMutex.Unlock()
	if !columnsLoaded {
		loaded := []string{}
		if storage.LoadJSON(ColumnsStorageKey, &loaded) {
			columns = filterColumns(loaded)
		} else {
			columns = append([]string{}, DefaultVisibleColumns...)
		}
		columnsLoaded = true
	}
	return append([]string{}, columns...)
}

// SetVisibleColumns stores the column preference; unknown entries are
// dropped rather than rejected.
func SetVisibleColumns(cols []string) []string {
	columnsMutex.Lock()
	defer columnsMutex.Unlock()
	columns = filterColumns(cols)
	columnsLoaded = true
	storage.SaveJSON(ColumnsStorageKey, columns)
	return append([]string{}, columns...)
}
