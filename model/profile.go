package model

// UserProfile holds the sender information rendered into the letter header.
// Any field may be empty; renderers substitute placeholder text per field.
type UserProfile struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Placeholder text used when a sender field is missing.
const (
	PlaceholderName    = "[Votre nom]"
	PlaceholderEmail   = "[votre@email.com]"
	PlaceholderPhone   = "[Votre téléphone]"
	PlaceholderAddress = "[Votre adresse]"
)

// DisplayName returns the profile name, or the placeholder when empty.
func (p UserProfile) DisplayName() string {
	if p.Name == "" {
		return PlaceholderName
	}
	return p.Name
}

// DisplayEmail returns the profile email, or the placeholder when empty.
func (p UserProfile) DisplayEmail() string {
	if p.Email == "" {
		return PlaceholderEmail
	}
	return p.Email
}

// DisplayPhone returns the profile phone, or the placeholder when empty.
func (p UserProfile) DisplayPhone() string {
	if p.Phone == "" {
		return PlaceholderPhone
	}
	return p.Phone
}

// DisplayAddress returns the profile address, or the placeholder when empty.
func (p UserProfile) DisplayAddress() string {
	if p.Address == "" {
		return PlaceholderAddress
	}
	return p.Address
}
