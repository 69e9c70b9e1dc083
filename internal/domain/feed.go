package domain

import (
	"time"

	"github.com/google/uuid"
)

// Collection names identify the reviewable record stores. They are the keys
// of the feed registry and the routing segment in the review API.
const (
	CollectionVacation  = "vacation"
	CollectionTravel    = "travel"
	CollectionEquipment = "equipment"
)

// Category is the presentation grouping of a feed item.
type Category string

const (
	CategoryVacation  Category = "vacation"
	CategoryTravel    Category = "travel"
	CategoryEquipment Category = "equipment"
)

func (c Category) String() string { return string(c) }

// DetailField is one ordered label/value pair in a feed item's detail block.
// Only whitelisted, category-specific fields appear here.
type DetailField struct {
	Label string
	Value string
}

// FeedItem is the common projection all collections normalize into.
// It is transient: recomputed on every aggregation pass, never persisted.
// ID together with SourceCollection forms the composite key used to route
// write-backs (review advancement) to the owning store.
type FeedItem struct {
	ID               uuid.UUID
	SourceCollection string
	CreatedAt        time.Time
	SubjectName      string
	SubjectEmail     string
	Category         Category
	Summary          string
	Detail           []DetailField
	ReviewStatus     ReviewStatus
}

// Record is implemented by the typed rows of every reviewable collection.
type Record interface {
	RecordCollection() string
}
