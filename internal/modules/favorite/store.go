package favorite

import (
	"context"
	"encoding/json"
	"log"
)

// ListRepository persists each user's saved-places list as a single
// serialized document.
type ListRepository interface {
	Get(ctx context.Context, userID int64) (string, error)
	Put(ctx context.Context, userID int64, places string) error
}

// Store owns every read and write of a user's saved places. All mutation
// goes through Toggle so subscribers always observe the full list that was
// just persisted.
type Store struct {
	repo   ListRepository
	broker *Broker
}

func NewStore(repo ListRepository, broker *Broker) *Store {
	return &Store{repo: repo, broker: broker}
}

// List returns the user's saved place names. A stored value that is not a
// JSON array of strings counts as corrupt and is reset to empty rather than
// surfaced as an error.
func (s *Store) List(ctx context.Context, userID int64) ([]string, error) {
	raw, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return []string{}, nil
	}

	var places []string
	if err := json.Unmarshal([]byte(raw), &places); err != nil {
		log.Printf("favorite: resetting corrupt list for user %d: %v", userID, err)
		if putErr := s.repo.Put(ctx, userID, "[]"); putErr != nil {
			return nil, putErr
		}
		return []string{}, nil
	}
	if places == nil {
		places = []string{}
	}
	return places, nil
}

// Names implements the read side used by the catalog views.
func (s *Store) Names(ctx context.Context, userID int64) ([]string, error) {
	return s.List(ctx, userID)
}

// Toggle adds the place when absent and removes it when present, persists
// the result, and notifies subscribers. It returns the new list and whether
// the place ended up saved. Toggling twice restores the original list.
func (s *Store) Toggle(ctx context.Context, userID int64, place string) ([]string, bool, error) {
	places, err := s.List(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	added := true
	next := make([]string, 0, len(places)+1)
	for _, p := range places {
		if p == place {
			added = false
			continue
		}
		next = append(next, p)
	}
	if added {
		next = append(next, place)
	}

	encoded, err := json.Marshal(next)
	if err != nil {
		return nil, false, err
	}
	if err := s.repo.Put(ctx, userID, string(encoded)); err != nil {
		return nil, false, err
	}

	s.broker.Publish(ChangeEvent{
		UserID: userID,
		Place:  place,
		Added:  added,
		Places: next,
	})

	return next, added, nil
}
