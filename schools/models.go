package schools

type School struct {
	ID             int64   `db:"id" json:"id"`
	Code           string  `db:"login_code" json:"login_code"`
	Name           string  `db:"name" json:"name"`
	PasswordHash   string  `db:"password_hash" json:"-"`
	PrimaryColor   *string `db:"primary_color" json:"primary_color"`
	SecondaryColor *string `db:"secondary_color" json:"secondary_color"`
}

// Profile is the public view returned at login and refresh.
type Profile struct {
	ID             int64   `json:"id"`
	Code           string  `json:"code"`
	LoginCode      string  `json:"login_code"`
	Name           string  `json:"name"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
}

func (s School) Profile() Profile {
	return Profile{
		ID:             s.ID,
		Code:           s.Code,
		LoginCode:      s.Code,
		Name:           s.Name,
		PrimaryColor:   s.PrimaryColor,
		SecondaryColor: s.SecondaryColor,
	}
}

// Settings is what a school sees after updating its own settings.
type Settings struct {
	ID             int64   `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	PrimaryColor   *string `db:"primary_color" json:"primary_color"`
	SecondaryColor *string `db:"secondary_color" json:"secondary_color"`
}

type NewSchool struct {
	Name         string
	Code         string
	PasswordHash string
}

// SettingsPatch holds the settings fields a school may change. A nil field is
// left untouched.
type SettingsPatch struct {
	Name           *string
	PrimaryColor   *string
	SecondaryColor *string
	PasswordHash   *string
}

func (p SettingsPatch) Empty() bool {
	return p.Name == nil && p.PrimaryColor == nil && p.SecondaryColor == nil && p.PasswordHash == nil
}
