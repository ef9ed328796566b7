package models

// Role is a roommate's permission level.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// Roommate represents one household member.
// Roommates are created and deleted by an admin and are never otherwise mutated.
type Roommate struct {
	// ID is the unique identifier for the roommate.
	ID string `json:"id" validate:"required"`

	// Name is the display name (e.g., "Bob Builder").
	Name string `json:"name" validate:"required"`

	// Email is optional contact information.
	Email string `json:"email" validate:"omitempty,email"`

	// Role decides whether the roommate may manage profiles and budgets.
	Role Role `json:"role" validate:"required,oneof=ADMIN MEMBER"`

	// IsVegetarian excludes the roommate from the default split of Non-Veg expenses.
	IsVegetarian bool `json:"isVegetarian"`

	// AvatarURL is a picture for the profile list.
	AvatarURL string `json:"avatarUrl,omitempty"`

	// AgreedContribution is the amount the roommate pays into the pool each month.
	AgreedContribution float64 `json:"agreedContribution" validate:"gte=0"`
}

// IsAdmin reports whether the roommate has the admin role.
func (r Roommate) IsAdmin() bool {
	return r.Role == RoleAdmin
}

// DefaultContribution is the agreed monthly contribution for new and seeded profiles.
const DefaultContribution = 6000

// SeedRoommates returns the example profiles stored on first run.
func SeedRoommates() []Roommate {
	return []Roommate{
		{
			ID:                 "1",
			Name:               "Admin Alice",
			Email:              "alice@example.com",
			Role:               RoleAdmin,
			AvatarURL:          "https://picsum.photos/seed/alice/200/200",
			AgreedContribution: DefaultContribution,
		},
		{
			ID:                 "2",
			Name:               "Bob Builder",
			Email:              "bob@example.com",
			Role:               RoleMember,
			IsVegetarian:       true,
			AvatarURL:          "https://picsum.photos/seed/bob/200/200",
			AgreedContribution: DefaultContribution,
		},
		{
			ID:                 "3",
			Name:               "Charlie Chef",
			Email:              "charlie@example.com",
			Role:               RoleMember,
			AvatarURL:          "https://picsum.photos/seed/charlie/200/200",
			AgreedContribution: DefaultContribution,
		},
	}
}

// FindRoommate returns the roommate with the given ID.
func FindRoommate(roommates []Roommate, id string) (Roommate, bool) {
	for _, r := range roommates {
		if r.ID == id {
			return r, true
		}
	}
	return Roommate{}, false
}
