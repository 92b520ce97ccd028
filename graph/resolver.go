package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/faizp/bookshelf/backend/go-graphql/graph/model"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/service"
)

// Resolver wires GraphQL resolvers to application services.
type Resolver struct {
	Service *service.Service
}

func (r *Resolver) Book(p graphql.ResolveParams) (interface{}, error) {
	id, err := intArg(p, "id")
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	book, err := r.Service.Book(p.Context, id)
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	if book == nil {
		return nil, nil
	}
	return toModelBook(*book), nil
}

func (r *Resolver) Books(p graphql.ResolveParams) (interface{}, error) {
	books, err := r.Service.Books(p.Context)
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	return toModelBooks(books), nil
}

func (r *Resolver) Author(p graphql.ResolveParams) (interface{}, error) {
	id, err := intArg(p, "id")
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	author, err := r.Service.Author(p.Context, id)
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	if author == nil {
		return nil, nil
	}
	return toModelAuthor(*author), nil
}

func (r *Resolver) Authors(p graphql.ResolveParams) (interface{}, error) {
	authors, err := r.Service.Authors(p.Context)
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	return toModelAuthors(authors), nil
}

// BookAuthor resolves Book.author.
func (r *Resolver) BookAuthor(p graphql.ResolveParams) (interface{}, error) {
	book, ok := p.Source.(*model.Book)
	if !ok || book == nil {
		return nil, nil
	}
	author, err := r.Service.AuthorOfBook(p.Context, fromModelBook(book))
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	if author == nil {
		return nil, nil
	}
	return toModelAuthor(*author), nil
}

// AuthorBooks resolves Author.books.
func (r *Resolver) AuthorBooks(p graphql.ResolveParams) (interface{}, error) {
	author, ok := p.Source.(*model.Author)
	if !ok || author == nil {
		return nil, nil
	}
	books, err := r.Service.BooksByAuthor(p.Context, author.ID)
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	return toModelBooks(books), nil
}

func (r *Resolver) AddBook(p graphql.ResolveParams) (interface{}, error) {
	name, err := stringArg(p, "name")
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	authorID, err := intArg(p, "authorId")
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	book, err := r.Service.AddBook(p.Context, service.AddBookInput{Name: name, AuthorID: authorID})
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	return toModelBook(book), nil
}

func (r *Resolver) ChangeBook(p graphql.ResolveParams) (interface{}, error) {
	id, err := intArg(p, "id")
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	name, err := stringArg(p, "name")
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	authorID, err := intArg(p, "authorId")
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	book, err := r.Service.ChangeBook(p.Context, service.ChangeBookInput{ID: id, Name: name, AuthorID: authorID})
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	return toModelBook(book), nil
}

func (r *Resolver) RemoveBook(p graphql.ResolveParams) (interface{}, error) {
	id, err := intArg(p, "id")
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	book, err := r.Service.RemoveBook(p.Context, id)
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	return toModelBook(book), nil
}

func (r *Resolver) AddAuthor(p graphql.ResolveParams) (interface{}, error) {
	name, err := stringArg(p, "name")
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	author, err := r.Service.AddAuthor(p.Context, service.AddAuthorInput{Name: name})
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	return toModelAuthor(author), nil
}

func (r *Resolver) ChangeAuthor(p graphql.ResolveParams) (interface{}, error) {
	id, err := intArg(p, "id")
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	name, err := stringArg(p, "name")
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	author, err := r.Service.ChangeAuthor(p.Context, service.ChangeAuthorInput{ID: id, Name: name})
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	return toModelAuthor(author), nil
}

// RemoveAuthor returns the removed author. Its books were removed with it,
// so selecting books on the result yields an empty list.
func (r *Resolver) RemoveAuthor(p graphql.ResolveParams) (interface{}, error) {
	id, err := intArg(p, "id")
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	removed, err := r.Service.RemoveAuthor(p.Context, id)
	if err != nil {
		return nil, asGraphQLError(p.Context, err)
	}
	return toModelAuthor(removed.Author), nil
}

func intArg(p graphql.ResolveParams, name string) (int, error) {
	v, ok := p.Args[name].(int)
	if !ok {
		return 0, service.NewBadInput(fmt.Sprintf("%s must be an Int", name))
	}
	return v, nil
}

func stringArg(p graphql.ResolveParams, name string) (string, error) {
	v, ok := p.Args[name].(string)
	if !ok {
		return "", service.NewBadInput(fmt.Sprintf("%s must be a String", name))
	}
	return v, nil
}
