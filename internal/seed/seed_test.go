package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bulletindomain "rt-portal-go/internal/domain/bulletin"
	cashbookdomain "rt-portal-go/internal/domain/cashbook"
	complaintsdomain "rt-portal-go/internal/domain/complaints"
	profiledomain "rt-portal-go/internal/domain/profile"
	residentsdomain "rt-portal-go/internal/domain/residents"
	"rt-portal-go/internal/repository/inmemory"
	"rt-portal-go/pkg/clock"
)

type services struct {
	profile    *profiledomain.Service
	residents  *residentsdomain.Service
	complaints *complaintsdomain.Service
	bulletin   *bulletindomain.Service
	cash       *cashbookdomain.Service
}

func newServices() services {
	clk := clock.Fixed(time.Date(2025, 10, 5, 9, 0, 0, 0, time.UTC))
	return services{
		profile:    profiledomain.NewService(inmemory.NewProfileRepository(profiledomain.Profile{})),
		residents:  residentsdomain.NewService(inmemory.NewResidentsRepository()),
		complaints: complaintsdomain.NewService(inmemory.NewComplaintsRepository(), clk),
		bulletin:   bulletindomain.NewService(inmemory.NewBulletinRepository()),
		cash:       cashbookdomain.NewService(inmemory.NewCashbookRepository()),
	}
}

func (s services) targets() Targets {
	return Targets{
		Profile:    s.profile,
		Residents:  s.residents,
		Complaints: s.complaints,
		Bulletin:   s.bulletin,
		Cash:       s.cash,
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	data, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "01", data.Profile.RT)
	assert.Equal(t, "08", data.Profile.RW)
	assert.Equal(t, "Semarang", data.Profile.City)
	assert.Len(t, data.Residents, 2)
	assert.Len(t, data.Complaints, 1)
	assert.Len(t, data.News, 2)
	assert.Len(t, data.Events, 2)
	assert.Len(t, data.Cash, 2)
}

func TestApplyDefaultSeed(t *testing.T) {
	ctx := context.Background()
	svc := newServices()

	data, err := Load("")
	require.NoError(t, err)
	require.NoError(t, Apply(ctx, data, svc.targets()))

	profile, err := svc.profile.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Kemijen", profile.Village)
	assert.Equal(t, "Nama Ketua RT", profile.Chairman)

	residents, err := svc.residents.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, residents, 2)
	assert.Equal(t, "Bapak Andi", residents[0].Name)
	assert.Equal(t, residentsdomain.StatusContract, residents[1].Status)

	complaints, err := svc.complaints.List(ctx)
	require.NoError(t, err)
	require.Len(t, complaints, 1)
	assert.Equal(t, complaintsdomain.StatusInProgress, complaints[0].Status)
	assert.Equal(t, time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC), complaints[0].Date)

	news, err := svc.bulletin.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, news, 2)
	assert.Equal(t, "Kerja Bakti Minggu Pagi", news[0].Title)
	assert.Equal(t, "Pembagian Sembako", news[1].Title)

	events, err := svc.bulletin.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "19:30", events[0].Time)

	balance, err := svc.cash.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(415000), balance)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := []byte(`profile:
  rt: "05"
  rw: "02"
cash:
  - date: "2025-01-02"
    description: Kas awal
    direction: "+"
    amount: 1000
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	data, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "05", data.Profile.RT)
	assert.Empty(t, data.Residents)
	require.Len(t, data.Cash, 1)
	assert.Equal(t, int64(1000), data.Cash[0].Amount)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("residents: [unterminated"))
	assert.Error(t, err)
}

func TestApplyRejectsBadDate(t *testing.T) {
	data, err := Parse([]byte(`news:
  - title: Rapat
    date: 05/10/2025
`))
	require.NoError(t, err)

	err = Apply(context.Background(), data, newServices().targets())
	assert.ErrorContains(t, err, `seed news "Rapat"`)
}

func TestApplyRejectsInvalidComplaintStatus(t *testing.T) {
	data, err := Parse([]byte(`complaints:
  - date: "2025-09-28"
    citizen: Rudi
    message: Lampu mati
    status: ditutup
`))
	require.NoError(t, err)

	err = Apply(context.Background(), data, newServices().targets())
	assert.ErrorIs(t, err, complaintsdomain.ErrInvalidStatus)
}

func TestApplyRejectsComplaintWithoutDate(t *testing.T) {
	data, err := Parse([]byte(`complaints:
  - citizen: Rudi
    message: Lampu mati
`))
	require.NoError(t, err)

	svc := newServices()
	err = Apply(context.Background(), data, svc.targets())
	assert.ErrorIs(t, err, ErrDateRequired)

	complaints, err := svc.complaints.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, complaints)
}
