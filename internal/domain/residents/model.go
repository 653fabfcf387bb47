package residents

import "strings"

type Status string

const (
	StatusPermanent Status = "Tetap"
	StatusContract  Status = "Kontrak"
	StatusBoarding  Status = "Kos"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPermanent, StatusContract, StatusBoarding:
		return true
	}
	return false
}

type Resident struct {
	ID               string
	Name             string
	FamilyCardNumber string
	Address          string
	Phone            string
	Status           Status
}

// Matches reports whether query occurs, ignoring case, in the resident's
// fields joined by spaces.
func (r Resident) Matches(query string) bool {
	if query == "" {
		return true
	}
	haystack := strings.Join([]string{r.Name, r.FamilyCardNumber, r.Address, r.Phone, string(r.Status)}, " ")
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(query))
}

type ResidentInput struct {
	Name             string
	FamilyCardNumber string
	Address          string
	Phone            string
	Status           Status
}
