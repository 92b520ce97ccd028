package graph

import (
	"github.com/faizp/bookshelf/backend/go-graphql/graph/model"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/db/repo"
)

func toModelAuthor(a repo.Author) *model.Author {
	return &model.Author{ID: a.ID, Name: a.Name}
}

func toModelBook(b repo.Book) *model.Book {
	return &model.Book{ID: b.ID, Name: b.Name, AuthorID: b.AuthorID}
}

func toModelAuthors(in []repo.Author) []*model.Author {
	out := make([]*model.Author, 0, len(in))
	for _, a := range in {
		out = append(out, toModelAuthor(a))
	}
	return out
}

func toModelBooks(in []repo.Book) []*model.Book {
	out := make([]*model.Book, 0, len(in))
	for _, b := range in {
		out = append(out, toModelBook(b))
	}
	return out
}

func fromModelBook(b *model.Book) repo.Book {
	return repo.Book{ID: b.ID, Name: b.Name, AuthorID: b.AuthorID}
}
