package model

// Author is the GraphQL representation of an author. Books is resolved
// separately and has no backing field.
type Author struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Book is the GraphQL representation of a book.
type Book struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	AuthorID int    `json:"authorId"`
}
