package service

import "github.com/faizp/bookshelf/backend/go-graphql/internal/db/repo"

type AddAuthorInput struct {
	Name string
}

type ChangeAuthorInput struct {
	ID   int
	Name string
}

type AddBookInput struct {
	Name     string
	AuthorID int
}

type ChangeBookInput struct {
	ID       int
	Name     string
	AuthorID int
}

// RemovedAuthor is the result of RemoveAuthor: the author and the books
// removed with it.
type RemovedAuthor struct {
	Author repo.Author
	Books  []repo.Book
}
