package profile

// Profile describes the neighborhood unit. Exactly one exists per portal.
type Profile struct {
	RT          string
	RW          string
	Village     string
	Subdistrict string
	City        string
	Address     string
	Phone       string
	Email       string
	Chairman    string
	Receiver    string
}

type UpdateProfileInput struct {
	RT          *string
	RW          *string
	Village     *string
	Subdistrict *string
	City        *string
	Address     *string
	Phone       *string
	Email       *string
	Chairman    *string
	Receiver    *string
}
