package complaints

import "time"

type Category string

const (
	CategoryCleanliness    Category = "Kebersihan"
	CategorySecurity       Category = "Keamanan"
	CategoryAdministration Category = "Administrasi"
	CategoryPublicFacility Category = "Fasilitas Umum"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCleanliness, CategorySecurity, CategoryAdministration, CategoryPublicFacility:
		return true
	}
	return false
}

// Status has no enforced transition order; any status may follow any other.
type Status string

const (
	StatusNew        Status = "baru"
	StatusInProgress Status = "proses"
	StatusResolved   Status = "selesai"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

type Complaint struct {
	ID       string
	Date     time.Time
	Citizen  string
	Category Category
	Message  string
	Status   Status
}

type SubmitInput struct {
	Citizen  string
	Category Category
	Message  string
}
