package feed

import (
	"fmt"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// registryEntry binds a collection to its presentation category and the
// normalizer producing the common feed item shape.
type registryEntry struct {
	category  domain.Category
	normalize func(rec domain.Record) (domain.FeedItem, error)
}

// registry is the closed set of reviewable collections. It is fixed at
// compile time: onboarding a new source means adding a row here together
// with its normalizer, there is no dynamic registration.
var registry = map[string]registryEntry{
	domain.CollectionVacation:  {category: domain.CategoryVacation, normalize: normalizeVacation},
	domain.CollectionTravel:    {category: domain.CategoryTravel, normalize: normalizeTravel},
	domain.CollectionEquipment: {category: domain.CategoryEquipment, normalize: normalizeEquipment},
}

// CategoryFor returns the category a collection is registered under.
// Returns domain.ErrUnknownCollection for unregistered names.
func CategoryFor(collection string) (domain.Category, error) {
	entry, ok := registry[collection]
	if !ok {
		return "", fmt.Errorf("collection %q: %w", collection, domain.ErrUnknownCollection)
	}
	return entry.category, nil
}

// Normalize maps a stored record onto the common feed item shape.
// A record from a collection that was never registered is a wiring bug and
// yields domain.ErrUnknownCollection, never a partial item.
func Normalize(rec domain.Record) (domain.FeedItem, error) {
	entry, ok := registry[rec.RecordCollection()]
	if !ok {
		return domain.FeedItem{}, fmt.Errorf("collection %q: %w", rec.RecordCollection(), domain.ErrUnknownCollection)
	}
	return entry.normalize(rec)
}
