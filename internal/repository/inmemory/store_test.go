package inmemory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bulletindomain "rt-portal-go/internal/domain/bulletin"
	complaintsdomain "rt-portal-go/internal/domain/complaints"
	profiledomain "rt-portal-go/internal/domain/profile"
	residentsdomain "rt-portal-go/internal/domain/residents"
)

func TestOrderedStoreOrdering(t *testing.T) {
	store := newOrderedStore[string](nil)

	require.NoError(t, store.pushBack("b", "B"))
	require.NoError(t, store.pushBack("c", "C"))
	require.NoError(t, store.pushFront("a", "A"))
	assert.ErrorIs(t, store.pushBack("a", "again"), errDuplicateID)

	assert.Equal(t, []string{"A", "B", "C"}, store.list())

	updated, ok := store.update("b", func(value *string) { *value = "B2" })
	require.True(t, ok)
	assert.Equal(t, "B2", updated)
	assert.Equal(t, []string{"A", "B2", "C"}, store.list())

	assert.True(t, store.remove("a"))
	assert.False(t, store.remove("a"))
	assert.Equal(t, []string{"B2", "C"}, store.list())
	assert.Equal(t, 2, store.len())

	_, ok = store.update("missing", func(value *string) {})
	assert.False(t, ok)
}

func TestOrderedStoreConcurrentWrites(t *testing.T) {
	store := newOrderedStore[int](nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.pushBack(fmt.Sprintf("id-%d", i), i)
			_ = store.list()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.len())
}

func TestResidentsRepository(t *testing.T) {
	repo := NewResidentsRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &residentsdomain.Resident{ID: "r1", Name: "Andi"}))
	require.NoError(t, repo.Append(ctx, &residentsdomain.Resident{ID: "r2", Name: "Sari"}))
	assert.Error(t, repo.Append(ctx, &residentsdomain.Resident{ID: "r1"}))

	require.NoError(t, repo.Replace(ctx, &residentsdomain.Resident{ID: "r1", Name: "Andi W."}))
	assert.ErrorIs(t, repo.Replace(ctx, &residentsdomain.Resident{ID: "zz"}), residentsdomain.ErrResidentNotFound)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Andi W.", items[0].Name)

	items[0].Name = "mutated"
	got, err := repo.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Andi W.", got.Name)

	_, err = repo.Get(ctx, "zz")
	assert.ErrorIs(t, err, residentsdomain.ErrResidentNotFound)

	deleted, err := repo.Delete(ctx, "zz")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestComplaintsRepositorySetStatus(t *testing.T) {
	repo := NewComplaintsRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &complaintsdomain.Complaint{ID: "c1", Status: complaintsdomain.StatusNew}))
	require.NoError(t, repo.Prepend(ctx, &complaintsdomain.Complaint{ID: "c2", Status: complaintsdomain.StatusNew}))

	updated, err := repo.SetStatus(ctx, "c1", complaintsdomain.StatusResolved)
	require.NoError(t, err)
	assert.Equal(t, complaintsdomain.StatusResolved, updated.Status)

	_, err = repo.SetStatus(ctx, "zz", complaintsdomain.StatusResolved)
	assert.ErrorIs(t, err, complaintsdomain.ErrComplaintNotFound)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "c2", items[0].ID)
	assert.Equal(t, complaintsdomain.StatusResolved, items[1].Status)
}

func TestBulletinRepositoryClonesDates(t *testing.T) {
	repo := NewBulletinRepository()
	ctx := context.Background()
	date := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)

	post := &bulletindomain.NewsPost{ID: "n1", Title: "Kerja Bakti", Date: &date}
	require.NoError(t, repo.PrependNews(ctx, post))

	date = date.AddDate(1, 0, 0)

	items, err := repo.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2025, items[0].Date.Year())

	*items[0].Date = items[0].Date.AddDate(5, 0, 0)
	again, err := repo.ListNews(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2025, again[0].Date.Year())
}

func TestBulletinRepositoryListsAreIndependent(t *testing.T) {
	repo := NewBulletinRepository()
	ctx := context.Background()

	require.NoError(t, repo.AppendNews(ctx, &bulletindomain.NewsPost{ID: "x"}))
	require.NoError(t, repo.AppendEvent(ctx, &bulletindomain.Event{ID: "x"}))

	deleted, err := repo.DeleteEvent(ctx, "x")
	require.NoError(t, err)
	assert.True(t, deleted)

	news, err := repo.ListNews(ctx)
	require.NoError(t, err)
	assert.Len(t, news, 1)
}

func TestProfileRepository(t *testing.T) {
	repo := NewProfileRepository(profiledomain.Profile{RT: "01"})
	ctx := context.Background()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "01", got.RT)

	require.NoError(t, repo.Save(ctx, profiledomain.Profile{RT: "02"}))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "02", got.RT)
}

func TestProfileConcurrentPartialUpdatesKeepBothFields(t *testing.T) {
	repo := NewProfileRepository(profiledomain.Profile{RT: "01"})
	svc := profiledomain.NewService(repo)
	ctx := context.Background()

	for round := 0; round < 2000; round++ {
		require.NoError(t, svc.Replace(ctx, profiledomain.Profile{RT: "01"}))

		chairman := fmt.Sprintf("Ketua %d", round)
		receiver := fmt.Sprintf("Warga %d", round)
		start := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			_, _ = svc.Update(ctx, profiledomain.UpdateProfileInput{Chairman: &chairman})
		}()
		go func() {
			defer wg.Done()
			<-start
			_, _ = svc.Update(ctx, profiledomain.UpdateProfileInput{Receiver: &receiver})
		}()
		close(start)
		wg.Wait()

		got, err := repo.Get(ctx)
		require.NoError(t, err)
		require.Equal(t, chairman, got.Chairman, "round %d", round)
		require.Equal(t, receiver, got.Receiver, "round %d", round)
		require.Equal(t, "01", got.RT)
	}
}
