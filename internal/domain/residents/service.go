package residents

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var csvHeader = []string{"Nama", "KK", "Alamat", "Telp", "Status"}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, query string) ([]Resident, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]Resident, 0, len(all))
	for _, resident := range all {
		if resident.Matches(query) {
			result = append(result, resident)
		}
	}
	return result, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Resident, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input ResidentInput) (*Resident, error) {
	resident, err := buildResident(input)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	resident.ID = id.String()

	if err := s.repo.Append(ctx, &resident); err != nil {
		return nil, err
	}
	return &resident, nil
}

// Update replaces every field except the id. The resident keeps its position.
func (s *Service) Update(ctx context.Context, id string, input ResidentInput) (*Resident, error) {
	resident, err := buildResident(input)
	if err != nil {
		return nil, err
	}
	resident.ID = id

	if err := s.repo.Replace(ctx, &resident); err != nil {
		return nil, err
	}
	return &resident, nil
}

// Delete is a no-op for unknown ids.
func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}

// ExportCSV writes every resident in list order. Fields are quoted when they
// contain commas, quotes or line breaks.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, resident := range all {
		row := []string{resident.Name, resident.FamilyCardNumber, resident.Address, resident.Phone, string(resident.Status)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func ExportFilename(now time.Time) string {
	return "data_warga_" + strconv.FormatInt(now.UnixMilli(), 10) + ".csv"
}

func buildResident(input ResidentInput) (Resident, error) {
	status := Status(strings.TrimSpace(string(input.Status)))
	if status == "" {
		status = StatusPermanent
	}
	if !status.Valid() {
		return Resident{}, ErrInvalidStatus
	}

	return Resident{
		Name:             strings.TrimSpace(input.Name),
		FamilyCardNumber: strings.TrimSpace(input.FamilyCardNumber),
		Address:          strings.TrimSpace(input.Address),
		Phone:            strings.TrimSpace(input.Phone),
		Status:           status,
	}, nil
}
