package domain

import "strings"

// BookInput carries the client-supplied fields of a book.
type BookInput struct {
	Title           string   `json:"title"`
	Authors         []string `json:"authors"`
	ISBN            string   `json:"isbn"`
	Publisher       string   `json:"publisher"`
	PublicationYear *int     `json:"publicationYear"`
	Genres          []string `json:"genres"`
	Language        string   `json:"language"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	CoverImage      string   `json:"coverImage"`
	TotalCopies     int      `json:"totalCopies"`
	// AvailableCopies is honored on create only and defaults to TotalCopies.
	AvailableCopies *int `json:"availableCopies,omitempty"`
}

// ApplyTo copies the descriptive fields onto b. Copy counts are left to the
// caller because create and update treat them differently.
func (in BookInput) ApplyTo(b *Book) {
	b.Title = strings.TrimSpace(in.Title)
	b.Authors = trimAll(in.Authors)
	b.ISBN = strings.TrimSpace(in.ISBN)
	b.Publisher = strings.TrimSpace(in.Publisher)
	b.PublicationYear = in.PublicationYear
	b.Genres = trimAll(in.Genres)
	b.Language = strings.TrimSpace(in.Language)
	b.Location = strings.TrimSpace(in.Location)
	b.Description = strings.TrimSpace(in.Description)
	b.CoverImage = strings.TrimSpace(in.CoverImage)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

// Registration carries the fields a new member supplies.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// ProfileUpdate is a partial update of the user-editable profile fields. Nil
// fields are left unchanged.
type ProfileUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// ApplyTo copies the non-nil fields onto u.
func (p ProfileUpdate) ApplyTo(u *User) {
	if p.FirstName != nil {
		u.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		u.LastName = strings.TrimSpace(*p.LastName)
	}
	if p.Phone != nil {
		u.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Address != nil {
		u.Address = strings.TrimSpace(*p.Address)
	}
}
