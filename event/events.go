package event

import (
	"sync"

	"opsconsole/common"
	"opsconsole/storage"

	"github.com/fundwit/go-commons/types"
	"github.com/sony/sonyflake"
)

const StorageKey = "oc-events"

// journalCap bounds the persisted journal; older records fall off the tail.
const journalCap = 1000

var (
	eventIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateEventFunc = CreateEvent
	QueryEventsFunc = QueryEvents

	mutex   sync.Mutex
	records []EventRecord
)

// Bootstrap loads the persisted journal; absence or malformed data reads as
// an empty journal.
func Bootstrap() {
	mutex.Lock()
	defer mutex.Unlock()
	loaded := []EventRecord{}
	if storage.LoadJSON(StorageKey, &loaded) {
		records = loaded
	} else {
		records = []EventRecord{}
	}
}

// CreateEvent appends a journal record for a registry mutation, newest first.
func CreateEvent(sourceType, sourceId, sourceDesc string, category EventCategory,
	updatedProperties []UpdatedProperty, creatorName string) *EventRecord {

	record := EventRecord{
		ID: common.NextId(eventIdWorker),

		SourceType: sourceType,
		SourceId:   sourceId,
		SourceDesc: sourceDesc,

		EventCategory:     category,
		UpdatedProperties: updatedProperties,

		CreatorName: creatorName,
		Timestamp:   types.CurrentTimestamp(),
	}

	mutex.Lock()
	defer mutex.Unlock()
	records = append([]EventRecord{record}, records...)
	if len(records) > journalCap {
		records = records[:journalCap]
	}
	storage.SaveJSON(StorageKey, records)
	return &record
}

// QueryEvents returns the journal, optionally filtered by source id, newest
// first.
func QueryEvents(sourceId string) []EventRecord {
	mutex.Lock()
	defer mutex.Unlock()
	result := []EventRecord{}
	for _, r := range records {
		if sourceId == "" || r.SourceId == sourceId {
			result = append(result, r)
		}
	}
	return result
}
