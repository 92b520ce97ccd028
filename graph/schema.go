package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable schema and binds its fields to r.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	bookType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Book",
		Description: "This represents a book written by an author",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"authorId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	authorType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Author",
		Description: "This represents an author of a book",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"books": &graphql.Field{
				Type:    graphql.NewList(bookType),
				Resolve: r.AuthorBooks,
			},
		},
	})

	// Book.author closes the cycle once Author exists.
	bookType.AddFieldConfig("author", &graphql.Field{
		Type:    authorType,
		Resolve: r.BookAuthor,
	})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Query",
		Description: "Root Query",
		Fields: graphql.Fields{
			"book": &graphql.Field{
				Type:        bookType,
				Description: "A Single book",
				Args:        idArg,
				Resolve:     r.Book,
			},
			"books": &graphql.Field{
				Type:        graphql.NewList(bookType),
				Description: "List of All Books",
				Resolve:     r.Books,
			},
			"author": &graphql.Field{
				Type:        authorType,
				Description: "A Single author",
				Args:        idArg,
				Resolve:     r.Author,
			},
			"authors": &graphql.Field{
				Type:        graphql.NewList(authorType),
				Description: "List of All Authors",
				Resolve:     r.Authors,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Mutation",
		Description: "Root Mutation",
		Fields: graphql.Fields{
			"addBook": &graphql.Field{
				Type:        bookType,
				Description: "Add a book",
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"authorId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.AddBook,
			},
			"changeBook": &graphql.Field{
				Type:        bookType,
				Description: "Change a book",
				Args: graphql.FieldConfigArgument{
					"id":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"authorId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.ChangeBook,
			},
			"removeBook": &graphql.Field{
				Type:        bookType,
				Description: "Remove a book",
				Args:        idArg,
				Resolve:     r.RemoveBook,
			},
			"addAuthor": &graphql.Field{
				Type:        authorType,
				Description: "Add an author",
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.AddAuthor,
			},
			"changeAuthor": &graphql.Field{
				Type:        authorType,
				Description: "Change an author",
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.ChangeAuthor,
			},
			"removeAuthor": &graphql.Field{
				Type:        authorType,
				Description: "Remove an author",
				Args:        idArg,
				Resolve:     r.RemoveAuthor,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
