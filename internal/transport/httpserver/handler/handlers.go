package handler

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	bulletindomain "rt-portal-go/internal/domain/bulletin"
	cashbookdomain "rt-portal-go/internal/domain/cashbook"
	complaintsdomain "rt-portal-go/internal/domain/complaints"
	"rt-portal-go/internal/domain/homepage"
	"rt-portal-go/internal/domain/letterhead"
	profiledomain "rt-portal-go/internal/domain/profile"
	residentsdomain "rt-portal-go/internal/domain/residents"
	"rt-portal-go/pkg/clock"
	"rt-portal-go/pkg/logger"
	"rt-portal-go/pkg/money"
)

type Services struct {
	Profiles   *profiledomain.Service
	Residents  *residentsdomain.Service
	Complaints *complaintsdomain.Service
	Bulletin   *bulletindomain.Service
	Cash       *cashbookdomain.Service
	Letters    *letterhead.Generator
	Homepage   *homepage.Service
}

type Handlers struct {
	Profiles   *profiledomain.Service
	Residents  *residentsdomain.Service
	Complaints *complaintsdomain.Service
	Bulletin   *bulletindomain.Service
	Cash       *cashbookdomain.Service
	Letters    *letterhead.Generator
	Homepage   *homepage.Service

	money    *money.Formatter
	clock    clock.Clock
	validate *validator.Validate
	log      logger.Logger
}

func New(services Services, formatter *money.Formatter, clk clock.Clock, log logger.Logger) *Handlers {
	return &Handlers{
		Profiles:   services.Profiles,
		Residents:  services.Residents,
		Complaints: services.Complaints,
		Bulletin:   services.Bulletin,
		Cash:       services.Cash,
		Letters:    services.Letters,
		Homepage:   services.Homepage,
		money:      formatter,
		clock:      clk,
		validate:   newValidator(),
		log:        log,
	}
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
