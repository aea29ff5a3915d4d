// Package caution keeps the IC Caution watchlist: clients under heightened
// attention, with a short reason and a few health counters.
package caution

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

const StorageKey = "oc-ic-clients"

type IcClient struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	Reason        string `json:"reason"`
	Tickets       int    `json:"tickets,omitempty"`
	NotUpdated24h int    `json:"notUpdated24h,omitempty"`
	LastFeedback  string `json:"lastFeedback,omitempty"`
}

type IcClientCreation struct {
	Name          string `json:"name" binding:"required"`
	Reason        string `json:"reason" binding:"required"`
	Tickets       int    `json:"tickets"`
	NotUpdated24h int    `json:"notUpdated24h"`
	LastFeedback  string `json:"lastFeedback"`
}

var (
	QueryClientsFunc = QueryClients
	AddClientFunc    = AddClient
	UpdateClientFunc = UpdateClient
	RemoveClientFunc = RemoveClient

	mutex      sync.Mutex
	items      []IcClient
	lastUsedId int
)

var idSuffixPattern = regexp.MustCompile(`^C-(\d+)$`)

var clientSeeds = []IcClient{
	{Id: "C-5541", Name: "Apex Health", Reason: "Repeated payment declines", Tickets: 7, NotUpdated24h: 2, LastFeedback: "Good response"},
	{Id: "C-5782", Name: "Nordic Freight", Reason: "High chargeback ratio", Tickets: 5, NotUpdated24h: 1, LastFeedback: "Waiting on fix"},
}

func Bootstrap() {
	mutex.Lock()
	defer mutex.Unlock()

	loaded := []IcClient{}
	if storage.LoadJSON(StorageKey, &loaded) {
		items = loaded
	} else {
		items = append([]IcClient{}, clientSeeds...)
	}

	lastUsedId = 1000
	for _, c := range items {
		m := idSuffixPattern.FindStringSubmatch(c.Id)
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

func QueryClients() []IcClient {
	mutex.Lock()
	defer mutex.Unlock()
	return append([]IcClient{}, items...)
}

func AddClient(creation IcClientCreation, identity session.Identity) (*IcClient, error) {
	mutex.Lock()
	defer mutex.Unlock()
	lastUsedId++
	record := IcClient{
		Id:            fmt.Sprintf("C-%d", lastUsedId),
		Name:          creation.Name,
		Reason:        creation.Reason,
		Tickets:       creation.Tickets,
		NotUpdated24h: creation.NotUpdated24h,
		LastFeedback:  creation.LastFeedback,
	}
	items = append([]IcClient{record}, items...)
	save()
	event.CreateEventFunc("IC_CLIENT", record.Id, record.Name, event.EventCategoryCreated, nil, identity.Name)
	return &record, nil
}

func UpdateClient(id string, creation IcClientCreation, identity session.Identity) (*IcClient, error) {
	mutex.Lock()
	defer mutex.Unlock()
	for i := range items {
		if items[i].Id != id {
			continue
		}
		items[i].Name = creation.Name
		items[i].Reason = creation.Reason
		items[i].Tickets = creation.Tickets
		items[i].NotUpdated24h = creation.NotUpdated24h
		items[i].LastFeedback = creation.LastFeedback
		updated := items[i]
		save()
		event.CreateEventFunc("IC_CLIENT", id, updated.Name, event.EventCategoryPropertyUpdated, nil, identity.Name)
		return &updated, nil
	}
	return nil, bizerror.ErrNotFound
}

func RemoveClient(id string, identity session.Identity) error {
	mutex.Lock()
	defer mutex.Unlock()
	for i := range items {
		if items[i].Id != id {
			continue
		}
		removed := items[i]
		items = append(items[:i], items[i+1:]...)
		save()
		event.CreateEventFunc("IC_CLIENT", id, removed.Name, event.EventCategoryDeleted, nil, identity.Name)
		return nil
	}
	return bizerror.ErrNotFound
}
