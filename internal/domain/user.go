package domain

type UserType string

const (
	UserTypeOwner    UserType = "Owner"
	UserTypeCustomer UserType = "Customer"
)

// DefaultProfilePic is used when a user signs up without uploading an avatar.
const DefaultProfilePic = "https://icon-library.com/images/anonymous-avatar-icon/anonymous-avatar-icon-25.jpg"

type User struct {
	ID           int32           `json:"id"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	UserType     UserType        `json:"userType"`
	ProfilePic   string          `json:"profilePic"`
	Showroom     ShowroomDetails `json:"showroomDetails"`
	CreatedOn    string          `json:"created_on"`
	UpdatedOn    string          `json:"updated_on"`
}

// ShowroomDetails is the owner's public showroom profile. All fields are
// empty for customers and for owners who have not completed their details.
type ShowroomDetails struct {
	Location string `json:"location"`
	Name     string `json:"showroomName"`
	CoverPic string `json:"coverPic"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Showroom is an owner profile annotated with the number of cars listed,
// as returned by the public showroom listings.
type Showroom struct {
	User
	CarCount int32 `json:"carCount"`
}
