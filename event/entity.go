package event

import (
	"github.com/fundwit/go-commons/types"
)

const (
	EventCategoryCreated         = EventCategory("CREATED")
	EventCategoryDeleted         = EventCategory("DELETED")
	EventCategoryPropertyUpdated = EventCategory("PROPERTY_UPDATED")
)

type EventCategory string

type UpdatedProperty struct {
	PropertyName string `json:"propertyName"`
	OldValue     string `json:"oldValue"`
	NewValue     string `json:"newValue"`
}

type EventRecord struct {
	ID types.ID `json:"id"`

	SourceType string `json:"sourceType"`
	SourceId   string `json:"sourceId"`
	SourceDesc string `json:"sourceDesc"`

	EventCategory     EventCategory     `json:"eventCategory"`
	UpdatedProperties []UpdatedProperty `json:"updatedProperties,omitempty"`

	CreatorName string `json:"creatorName"`

	Timestamp types.Timestamp `json:"timestamp"`
}
