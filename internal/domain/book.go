package domain

import "time"

// Book represents a catalog title and its copy counts.
type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Authors         []string  `json:"authors"`
	ISBN            string    `json:"isbn"`
	Publisher       string    `json:"publisher,omitempty"`
	PublicationYear *int      `json:"publicationYear,omitempty"`
	Genres          []string  `json:"genres"`
	Language        string    `json:"language,omitempty"`
	Location        string    `json:"location,omitempty"`
	Description     string    `json:"description,omitempty"`
	CoverImage      string    `json:"coverImage,omitempty"`
	TotalCopies     int       `json:"totalCopies"`
	AvailableCopies int       `json:"availableCopies"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// OnLoan returns the number of copies currently borrowed.
func (b *Book) OnLoan() int {
	return b.TotalCopies - b.AvailableCopies
}

// ResizeCopies changes the total copy count, shifting the available count by
// the same amount. It fails when more copies are on loan than the new total.
func (b *Book) ResizeCopies(total int) error {
	available := b.AvailableCopies + (total - b.TotalCopies)
	if available < 0 {
		return ErrCopiesOnLoan
	}
	b.TotalCopies = total
	b.AvailableCopies = available
	return nil
}
