package schema

// UserProfileTable represents the 'users.profile' table
type UserProfileTable struct {
	Table           string
	ID              string
	Email           string
	Password        string
	DisplayName     string
	Role            string
	AvatarURL       string
	PreferredLocale string
	LandingRoute    string
	IsActive        string
	LastLoginAt     string
	CreatedAt       string
	UpdatedAt       string
}

// UserProfile is the schema definition for users.profile
var UserProfile = UserProfileTable{
	Table:           "users.profile",
	ID:              "id",
	Email:           "email",
	Password:        "passwordhash",
	DisplayName:     "displayname",
	Role:            "role",
	AvatarURL:       "avatarurl",
	PreferredLocale: "preferredlocale",
	LandingRoute:    "landingroute",
	IsActive:        "isactive",
	LastLoginAt:     "lastloginat",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names
func (t UserProfileTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Password, t.DisplayName, t.Role, t.AvatarURL,
		t.PreferredLocale, t.LandingRoute, t.IsActive, t.LastLoginAt,
		t.CreatedAt, t.UpdatedAt,
	}
}
