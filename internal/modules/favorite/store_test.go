package favorite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeListRepo is an in-memory ListRepository.
type fakeListRepo struct {
	data map[int64]string
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{data: make(map[int64]string)}
}

func (r *fakeListRepo) Get(ctx context.Context, userID int64) (string, error) {
	return r.data[userID], nil
}

func (r *fakeListRepo) Put(ctx context.Context, userID int64, places string) error {
	r.data[userID] = places
	return nil
}

func TestStore_List_EmptyUser(t *testing.T) {
	store := NewStore(newFakeListRepo(), NewBroker())

	places, err := store.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{}, places)
}

func TestStore_List_ResetsCorruptValue(t *testing.T) {
	repo := newFakeListRepo()
	repo.data[1] = `"not-an-array"`
	store := NewStore(repo, NewBroker())

	places, err := store.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Empty(t, places)

	// The reset is persisted, not just masked on read.
	assert.Equal(t, "[]", repo.data[1])
}

func TestStore_List_ResetsMalformedJSON(t *testing.T) {
	repo := newFakeListRepo()
	repo.data[1] = `{broken`
	store := NewStore(repo, NewBroker())

	places, err := store.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Empty(t, places)
}

func TestStore_Toggle_AddThenRemove(t *testing.T) {
	store := NewStore(newFakeListRepo(), NewBroker())
	ctx := context.Background()

	places, added, err := store.Toggle(ctx, 1, "Tanah Lot")
	assert.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"Tanah Lot"}, places)

	places, added, err = store.Toggle(ctx, 1, "Tanah Lot")
	assert.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, places)
}

func TestStore_Toggle_TwiceRestoresList(t *testing.T) {
	store := NewStore(newFakeListRepo(), NewBroker())
	ctx := context.Background()

	_, _, _ = store.Toggle(ctx, 1, "Tanah Lot")
	_, _, _ = store.Toggle(ctx, 1, "Mount Batur")

	before, err := store.List(ctx, 1)
	assert.NoError(t, err)

	_, _, _ = store.Toggle(ctx, 1, "Sanur Beach")
	_, _, _ = store.Toggle(ctx, 1, "Sanur Beach")

	after, err := store.List(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_Toggle_RemovePreservesOrder(t *testing.T) {
	store := NewStore(newFakeListRepo(), NewBroker())
	ctx := context.Background()

	for _, p := range []string{"A", "B", "C"} {
		_, _, _ = store.Toggle(ctx, 1, p)
	}

	places, _, err := store.Toggle(ctx, 1, "B")
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, places)
}

func TestStore_Toggle_PublishesEvent(t *testing.T) {
	broker := NewBroker()
	store := NewStore(newFakeListRepo(), broker)

	events := broker.Subscribe()
	defer broker.Unsubscribe(events)

	_, _, err := store.Toggle(context.Background(), 7, "Tanah Lot")
	assert.NoError(t, err)

	event := <-events
	assert.Equal(t, int64(7), event.UserID)
	assert.Equal(t, "Tanah Lot", event.Place)
	assert.True(t, event.Added)
	assert.Equal(t, []string{"Tanah Lot"}, event.Places)
}

func TestBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	broker := NewBroker()
	ch := broker.Subscribe()
	defer broker.Unsubscribe(ch)

	// Overflow the buffer; Publish must never block.
	for i := 0; i < 100; i++ {
		broker.Publish(ChangeEvent{UserID: 1, Place: "X", Added: true})
	}

	assert.Equal(t, 1, broker.SubscriberCount())
}

func TestStore_SeparateUsersSeparateLists(t *testing.T) {
	store := NewStore(newFakeListRepo(), NewBroker())
	ctx := context.Background()

	_, _, _ = store.Toggle(ctx, 1, "Tanah Lot")
	_, _, _ = store.Toggle(ctx, 2, "Mount Batur")

	one, _ := store.List(ctx, 1)
	two, _ := store.List(ctx, 2)

	assert.Equal(t, []string{"Tanah Lot"}, one)
	assert.Equal(t, []string{"Mount Batur"}, two)
}
