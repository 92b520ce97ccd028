package service

import (
	"context"
	"errors"

	"github.com/faizp/bookshelf/backend/go-graphql/internal/db/repo"
	platformlogger "github.com/faizp/bookshelf/backend/go-graphql/internal/platform/logger"
)

type Service struct {
	store *repo.Store
	log   *platformlogger.Logger
}

func New(store *repo.Store, log *platformlogger.Logger) *Service {
	if log == nil {
		log = platformlogger.Nop()
	}
	return &Service{store: store, log: log}
}

// Author returns nil without error when no author has the id.
func (s *Service) Author(ctx context.Context, id int) (*repo.Author, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	a, ok := s.store.GetAuthor(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *Service) Authors(ctx context.Context) ([]repo.Author, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return s.store.ListAuthors(), nil
}

// Book returns nil without error when no book has the id.
func (s *Service) Book(ctx context.Context, id int) (*repo.Book, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	b, ok := s.store.GetBook(id)
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *Service) Books(ctx context.Context) ([]repo.Book, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return s.store.ListBooks(), nil
}

func (s *Service) BooksByAuthor(ctx context.Context, authorID int) ([]repo.Book, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return s.store.BooksByAuthor(authorID), nil
}

// AuthorOfBook resolves the book's author reference. A dangling reference
// yields nil.
func (s *Service) AuthorOfBook(ctx context.Context, book repo.Book) (*repo.Author, error) {
	return s.Author(ctx, book.AuthorID)
}

func (s *Service) AddAuthor(ctx context.Context, in AddAuthorInput) (repo.Author, error) {
	if err := checkContext(ctx); err != nil {
		return repo.Author{}, err
	}
	a := s.store.InsertAuthor(in.Name)
	s.log.Info("author_added", "author_id", a.ID)
	return a, nil
}

func (s *Service) ChangeAuthor(ctx context.Context, in ChangeAuthorInput) (repo.Author, error) {
	if err := checkContext(ctx); err != nil {
		return repo.Author{}, err
	}
	a, ok := s.store.UpdateAuthor(in.ID, in.Name)
	if !ok {
		return repo.Author{}, NewNotFound(EntityAuthor, in.ID)
	}
	s.log.Info("author_changed", "author_id", a.ID)
	return a, nil
}

// RemoveAuthor deletes the author together with every book that
// references it.
func (s *Service) RemoveAuthor(ctx context.Context, id int) (RemovedAuthor, error) {
	if err := checkContext(ctx); err != nil {
		return RemovedAuthor{}, err
	}
	a, books, ok := s.store.DeleteAuthor(id)
	if !ok {
		return RemovedAuthor{}, NewNotFound(EntityAuthor, id)
	}
	s.log.Info("author_removed", "author_id", a.ID, "books_removed", len(books))
	return RemovedAuthor{Author: a, Books: books}, nil
}

func (s *Service) AddBook(ctx context.Context, in AddBookInput) (repo.Book, error) {
	if err := checkContext(ctx); err != nil {
		return repo.Book{}, err
	}
	b := s.store.InsertBook(in.Name, in.AuthorID)
	s.log.Info("book_added", "book_id", b.ID, "author_id", b.AuthorID)
	return b, nil
}

func (s *Service) ChangeBook(ctx context.Context, in ChangeBookInput) (repo.Book, error) {
	if err := checkContext(ctx); err != nil {
		return repo.Book{}, err
	}
	b, ok := s.store.UpdateBook(in.ID, in.Name, in.AuthorID)
	if !ok {
		return repo.Book{}, NewNotFound(EntityBook, in.ID)
	}
	s.log.Info("book_changed", "book_id", b.ID, "author_id", b.AuthorID)
	return b, nil
}

func (s *Service) RemoveBook(ctx context.Context, id int) (repo.Book, error) {
	if err := checkContext(ctx); err != nil {
		return repo.Book{}, err
	}
	b, ok := s.store.DeleteBook(id)
	if !ok {
		return repo.Book{}, NewNotFound(EntityBook, id)
	}
	s.log.Info("book_removed", "book_id", b.ID)
	return b, nil
}

func checkContext(ctx context.Context) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeout("request timed out", err)
	}
	return NewInternal("request cancelled", err)
}
