package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	bulletindomain "rt-portal-go/internal/domain/bulletin"
	cashbookdomain "rt-portal-go/internal/domain/cashbook"
	complaintsdomain "rt-portal-go/internal/domain/complaints"
	profiledomain "rt-portal-go/internal/domain/profile"
	residentsdomain "rt-portal-go/internal/domain/residents"
)

const dateLayout = "2006-01-02"

var ErrDateRequired = errors.New("date is required")

//go:embed seed.yaml
var defaultSeed []byte

type Data struct {
	Profile    Profile     `yaml:"profile"`
	Residents  []Resident  `yaml:"residents"`
	Complaints []Complaint `yaml:"complaints"`
	News       []News      `yaml:"news"`
	Events     []Event     `yaml:"events"`
	Cash       []CashEntry `yaml:"cash"`
}

type Profile struct {
	RT          string `yaml:"rt"`
	RW          string `yaml:"rw"`
	Village     string `yaml:"village"`
	Subdistrict string `yaml:"subdistrict"`
	City        string `yaml:"city"`
	Address     string `yaml:"address"`
	Phone       string `yaml:"phone"`
	Email       string `yaml:"email"`
	Chairman    string `yaml:"chairman"`
	Receiver    string `yaml:"receiver"`
}

type Resident struct {
	Name    string `yaml:"name"`
	KK      string `yaml:"kk"`
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
	Status  string `yaml:"status"`
}

type Complaint struct {
	Date     string `yaml:"date"`
	Citizen  string `yaml:"citizen"`
	Category string `yaml:"category"`
	Message  string `yaml:"message"`
	Status   string `yaml:"status"`
}

type News struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	Body  string `yaml:"body"`
}

type Event struct {
	Name  string `yaml:"name"`
	Date  string `yaml:"date"`
	Time  string `yaml:"time"`
	Place string `yaml:"place"`
	Notes string `yaml:"notes"`
}

type CashEntry struct {
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Direction   string `yaml:"direction"`
	Amount      int64  `yaml:"amount"`
}

// Load reads seed data from path, or the embedded default when path is empty.
func Load(path string) (*Data, error) {
	raw := defaultSeed
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = content
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &data, nil
}

func (p Profile) Domain() profiledomain.Profile {
	return profiledomain.Profile{
		RT:          p.RT,
		RW:          p.RW,
		Village:     p.Village,
		Subdistrict: p.Subdistrict,
		City:        p.City,
		Address:     p.Address,
		Phone:       p.Phone,
		Email:       p.Email,
		Chairman:    p.Chairman,
		Receiver:    p.Receiver,
	}
}

type ProfileWriter interface {
	Replace(ctx context.Context, profile profiledomain.Profile) error
}

type ResidentCreator interface {
	Create(ctx context.Context, input residentsdomain.ResidentInput) (*residentsdomain.Resident, error)
}

type ComplaintImporter interface {
	Import(ctx context.Context, items []complaintsdomain.Complaint) error
}

type BulletinImporter interface {
	ImportNews(ctx context.Context, inputs []bulletindomain.PublishNewsInput) error
	ImportEvents(ctx context.Context, inputs []bulletindomain.ScheduleEventInput) error
}

type CashAdder interface {
	Add(ctx context.Context, input cashbookdomain.AddEntryInput) (*cashbookdomain.Entry, error)
}

type Targets struct {
	Profile    ProfileWriter
	Residents  ResidentCreator
	Complaints ComplaintImporter
	Bulletin   BulletinImporter
	Cash       CashAdder
}

// Apply loads data through the services so seeded records pass the same
// validation as user input. Lists keep the order they have in the seed.
func Apply(ctx context.Context, data *Data, targets Targets) error {
	if err := targets.Profile.Replace(ctx, data.Profile.Domain()); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}

	for _, item := range data.Residents {
		_, err := targets.Residents.Create(ctx, residentsdomain.ResidentInput{
			Name:             item.Name,
			FamilyCardNumber: item.KK,
			Address:          item.Address,
			Phone:            item.Phone,
			Status:           residentsdomain.Status(item.Status),
		})
		if err != nil {
			return fmt.Errorf("seed resident %q: %w", item.Name, err)
		}
	}

	complaints := make([]complaintsdomain.Complaint, 0, len(data.Complaints))
	for _, item := range data.Complaints {
		date, err := parseDate(item.Date)
		if err != nil {
			return fmt.Errorf("seed complaint %q: %w", item.Citizen, err)
		}
		if date == nil {
			return fmt.Errorf("seed complaint %q: %w", item.Citizen, ErrDateRequired)
		}
		complaints = append(complaints, complaintsdomain.Complaint{
			Date:     *date,
			Citizen:  strings.TrimSpace(item.Citizen),
			Category: complaintsdomain.Category(item.Category),
			Message:  strings.TrimSpace(item.Message),
			Status:   complaintsdomain.Status(item.Status),
		})
	}
	if err := targets.Complaints.Import(ctx, complaints); err != nil {
		return fmt.Errorf("seed complaints: %w", err)
	}

	news := make([]bulletindomain.PublishNewsInput, 0, len(data.News))
	for _, item := range data.News {
		date, err := parseDate(item.Date)
		if err != nil {
			return fmt.Errorf("seed news %q: %w", item.Title, err)
		}
		news = append(news, bulletindomain.PublishNewsInput{Title: item.Title, Date: date, Body: item.Body})
	}
	if err := targets.Bulletin.ImportNews(ctx, news); err != nil {
		return fmt.Errorf("seed news: %w", err)
	}

	events := make([]bulletindomain.ScheduleEventInput, 0, len(data.Events))
	for _, item := range data.Events {
		date, err := parseDate(item.Date)
		if err != nil {
			return fmt.Errorf("seed event %q: %w", item.Name, err)
		}
		events = append(events, bulletindomain.ScheduleEventInput{
			Name:  item.Name,
			Date:  date,
			Time:  item.Time,
			Place: item.Place,
			Notes: item.Notes,
		})
	}
	if err := targets.Bulletin.ImportEvents(ctx, events); err != nil {
		return fmt.Errorf("seed events: %w", err)
	}

	for _, item := range data.Cash {
		date, err := parseDate(item.Date)
		if err != nil {
			return fmt.Errorf("seed cash entry %q: %w", item.Description, err)
		}
		_, err = targets.Cash.Add(ctx, cashbookdomain.AddEntryInput{
			Date:        derefDate(date),
			Description: item.Description,
			Direction:   cashbookdomain.Direction(item.Direction),
			Amount:      item.Amount,
		})
		if err != nil {
			return fmt.Errorf("seed cash entry %q: %w", item.Description, err)
		}
	}

	return nil
}

func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func derefDate(value *time.Time) time.Time {
	if value == nil {
		return time.Time{}
	}
	return *value
}
