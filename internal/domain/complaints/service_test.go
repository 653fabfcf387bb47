package complaints

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rt-portal-go/pkg/clock"
)

type fakeComplaintsRepo struct {
	items []Complaint
}

func (r *fakeComplaintsRepo) List(ctx context.Context) ([]Complaint, error) {
	return append([]Complaint{}, r.items...), nil
}

func (r *fakeComplaintsRepo) Prepend(ctx context.Context, complaint *Complaint) error {
	r.items = append([]Complaint{*complaint}, r.items...)
	return nil
}

func (r *fakeComplaintsRepo) Append(ctx context.Context, complaint *Complaint) error {
	r.items = append(r.items, *complaint)
	return nil
}

func (r *fakeComplaintsRepo) SetStatus(ctx context.Context, id string, status Status) (*Complaint, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			updated := r.items[i]
			return &updated, nil
		}
	}
	return nil, ErrComplaintNotFound
}

func (r *fakeComplaintsRepo) Delete(ctx context.Context, id string) (bool, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

var fixedNow = time.Date(2025, 10, 16, 21, 30, 0, 0, time.FixedZone("WIB", 7*60*60))

func newTestService() (*Service, *fakeComplaintsRepo) {
	repo := &fakeComplaintsRepo{}
	return NewService(repo, clock.Fixed(fixedNow)), repo
}

func TestSubmitPrependsWithNewStatusAndDate(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	first, err := svc.Submit(ctx, SubmitInput{Citizen: "Rudi", Category: CategoryCleanliness, Message: "Sampah menumpuk"})
	require.NoError(t, err)
	second, err := svc.Submit(ctx, SubmitInput{Citizen: "Tono", Category: CategorySecurity, Message: "Lampu jalan mati"})
	require.NoError(t, err)

	require.Len(t, repo.items, 2)
	assert.Equal(t, second.ID, repo.items[0].ID)
	assert.Equal(t, first.ID, repo.items[1].ID)
	assert.Equal(t, StatusNew, first.Status)
	assert.Equal(t, "2025-10-16", first.Date.Format("2006-01-02"))
}

func TestSubmitDefaultsCategory(t *testing.T) {
	svc, _ := newTestService()

	complaint, err := svc.Submit(context.Background(), SubmitInput{Citizen: "Rudi", Message: "Got mampet"})
	require.NoError(t, err)
	assert.Equal(t, CategoryCleanliness, complaint.Category)
}

func TestSubmitRejectsIncomplete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Submit(ctx, SubmitInput{Citizen: "", Message: "Pesan"})
	assert.ErrorIs(t, err, ErrIncompleteComplaint)
	_, err = svc.Submit(ctx, SubmitInput{Citizen: "Rudi", Message: "   "})
	assert.ErrorIs(t, err, ErrIncompleteComplaint)
	_, err = svc.Submit(ctx, SubmitInput{Citizen: "Rudi", Message: "Pesan", Category: "Lainnya"})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	assert.Empty(t, repo.items)
}

func TestSetStatusAllowsAnyTransition(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	complaint, err := svc.Submit(ctx, SubmitInput{Citizen: "Rudi", Message: "Sampah"})
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, complaint.ID, StatusResolved)
	require.NoError(t, err)
	assert.Equal(t, StatusResolved, updated.Status)

	updated, err = svc.SetStatus(ctx, complaint.ID, StatusNew)
	require.NoError(t, err)
	assert.Equal(t, StatusNew, updated.Status)
	assert.Equal(t, StatusNew, repo.items[0].Status)
}

func TestSetStatusInvalidOrMissing(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	complaint, err := svc.Submit(ctx, SubmitInput{Citizen: "Rudi", Message: "Sampah"})
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, complaint.ID, "ditolak")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = svc.SetStatus(ctx, "missing", StatusResolved)
	assert.ErrorIs(t, err, ErrComplaintNotFound)
	assert.Equal(t, StatusNew, repo.items[0].Status)
}

func TestDeleteAbsentLeavesListIdentical(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	for _, citizen := range []string{"Rudi", "Tono", "Sri"} {
		_, err := svc.Submit(ctx, SubmitInput{Citizen: citizen, Message: "Laporan " + citizen})
		require.NoError(t, err)
	}

	before, err := svc.List(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "does-not-exist"))

	after, err := svc.List(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("complaints changed after deleting absent id (-before +after):\n%s", diff)
	}
	assert.Len(t, repo.items, 3)
}

func TestImportKeepsOrderAndFields(t *testing.T) {
	svc, repo := newTestService()
	date := time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC)

	err := svc.Import(context.Background(), []Complaint{
		{Date: date, Citizen: "Rudi", Category: CategoryCleanliness, Message: "Sampah", Status: StatusInProgress},
		{Date: date, Citizen: "Tono", Message: "Lampu"},
	})
	require.NoError(t, err)

	require.Len(t, repo.items, 2)
	assert.Equal(t, "Rudi", repo.items[0].Citizen)
	assert.Equal(t, StatusInProgress, repo.items[0].Status)
	assert.Equal(t, StatusNew, repo.items[1].Status)
	assert.NotEmpty(t, repo.items[1].ID)
	assert.True(t, repo.items[0].Date.Equal(date))
}
