package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Author is a row of the authors collection.
type Author struct {
	ID   int
	Name string
}

// Book is a row of the books collection. AuthorID is not checked against
// the authors collection.
type Book struct {
	ID       int
	Name     string
	AuthorID int
}

// Counts reports collection sizes.
type Counts struct {
	Authors int
	Books   int
}

// Store holds both collections in insertion order. Ids come from
// per-collection counters and are never reused.
type Store struct {
	mu           sync.RWMutex
	authors      []Author
	books        []Book
	nextAuthorID int
	nextBookID   int
}

func New() *Store {
	return &Store{nextAuthorID: 1, nextBookID: 1}
}

// NewSeeded returns a store preloaded with the fixture data.
func NewSeeded() *Store {
	s := New()
	s.Seed()
	return s
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Counts{Authors: len(s.authors), Books: len(s.books)}
}

func (s *Store) ListAuthors() []Author {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.authors)
}

func (s *Store) ListBooks() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.books)
}

func (s *Store) GetAuthor(id int) (Author, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.authors, func(a Author) bool { return a.ID == id })
}

func (s *Store) GetBook(id int) (Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.books, func(b Book) bool { return b.ID == id })
}

func (s *Store) BooksByAuthor(authorID int) []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Filter(s.books, func(b Book, _ int) bool { return b.AuthorID == authorID })
}

func (s *Store) InsertAuthor(name string) Author {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertAuthorLocked(name)
}

func (s *Store) InsertBook(name string, authorID int) Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertBookLocked(name, authorID)
}

func (s *Store) UpdateAuthor(id int, name string) (Author, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, idx, ok := lo.FindIndexOf(s.authors, func(a Author) bool { return a.ID == id })
	if !ok {
		return Author{}, false
	}
	s.authors[idx] = Author{ID: id, Name: name}
	return s.authors[idx], true
}

func (s *Store) UpdateBook(id int, name string, authorID int) (Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, idx, ok := lo.FindIndexOf(s.books, func(b Book) bool { return b.ID == id })
	if !ok {
		return Book{}, false
	}
	s.books[idx] = Book{ID: id, Name: name, AuthorID: authorID}
	return s.books[idx], true
}

func (s *Store) DeleteBook(id int) (Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, idx, ok := lo.FindIndexOf(s.books, func(b Book) bool { return b.ID == id })
	if !ok {
		return Book{}, false
	}
	s.books = slices.Delete(s.books, idx, idx+1)
	return book, true
}

// DeleteAuthor removes the author and every book that references it.
// The removed books are returned in insertion order.
func (s *Store) DeleteAuthor(id int) (Author, []Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author, idx, ok := lo.FindIndexOf(s.authors, func(a Author) bool { return a.ID == id })
	if !ok {
		return Author{}, nil, false
	}
	s.authors = slices.Delete(s.authors, idx, idx+1)

	removed := lo.Filter(s.books, func(b Book, _ int) bool { return b.AuthorID == id })
	s.books = lo.Reject(s.books, func(b Book, _ int) bool { return b.AuthorID == id })
	return author, removed, true
}

func (s *Store) insertAuthorLocked(name string) Author {
	a := Author{ID: s.nextAuthorID, Name: name}
	s.nextAuthorID++
	s.authors = append(s.authors, a)
	return a
}

func (s *Store) insertBookLocked(name string, authorID int) Book {
	b := Book{ID: s.nextBookID, Name: name, AuthorID: authorID}
	s.nextBookID++
	s.books = append(s.books, b)
	return b
}
