package graph

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faizp/bookshelf/backend/go-graphql/graph/model"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/db/repo"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/graphql/middleware"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/service"
)

type bookWithAuthor struct {
	model.Book
	Author *model.Author `json:"author"`
}

type authorWithBooks struct {
	model.Author
	Books []model.Book `json:"books"`
}

func newTestSchema(t *testing.T) graphql.Schema {
	t.Helper()
	schema, err := NewSchema(&Resolver{Service: service.New(repo.NewSeeded(), nil)})
	require.NoError(t, err)
	return schema
}

func execute(t *testing.T, schema graphql.Schema, query string, out interface{}) *graphql.Result {
	t.Helper()
	return executeContext(t, context.Background(), schema, query, out)
}

func executeContext(t *testing.T, ctx context.Context, schema graphql.Schema, query string, out interface{}) *graphql.Result {
	t.Helper()
	result := graphql.Do(graphql.Params{Schema: schema, RequestString: query, Context: ctx})
	if out != nil {
		raw, err := json.Marshal(result.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out))
	}
	return result
}

func TestBooksQueryReturnsSeedInOrder(t *testing.T) {
	schema := newTestSchema(t)

	var data struct {
		Books []model.Book `json:"books"`
	}
	result := execute(t, schema, `{ books { id name authorId } }`, &data)
	require.False(t, result.HasErrors(), "%v", result.Errors)

	require.Len(t, data.Books, 8)
	for i, b := range data.Books {
		assert.Equal(t, i+1, b.ID)
	}
	assert.Equal(t, "The Fellowship of the Ring", data.Books[3].Name)
}

func TestAddBookThenList(t *testing.T) {
	schema := newTestSchema(t)

	var added struct {
		AddBook model.Book `json:"addBook"`
	}
	result := execute(t, schema, `mutation { addBook(name: "X", authorId: 1) { id name authorId } }`, &added)
	require.False(t, result.HasErrors(), "%v", result.Errors)
	assert.Equal(t, model.Book{ID: 9, Name: "X", AuthorID: 1}, added.AddBook)

	var data struct {
		Books []model.Book `json:"books"`
	}
	execute(t, schema, `{ books { id name authorId } }`, &data)
	assert.Contains(t, data.Books, model.Book{ID: 9, Name: "X", AuthorID: 1})
}

func TestMissingBookIsNullWithoutError(t *testing.T) {
	schema := newTestSchema(t)

	var data struct {
		Book *model.Book `json:"book"`
	}
	result := execute(t, schema, `{ book(id: 999) { id name } }`, &data)
	assert.False(t, result.HasErrors(), "%v", result.Errors)
	assert.Nil(t, data.Book)
}

func TestRemoveAuthorCascadesToBooks(t *testing.T) {
	schema := newTestSchema(t)

	var removed struct {
		RemoveAuthor model.Author `json:"removeAuthor"`
	}
	result := execute(t, schema, `mutation { removeAuthor(id: 1) { id name } }`, &removed)
	require.False(t, result.HasErrors(), "%v", result.Errors)
	assert.Equal(t, model.Author{ID: 1, Name: "J. K. Rowling"}, removed.RemoveAuthor)

	var data struct {
		Author  *model.Author  `json:"author"`
		Authors []model.Author `json:"authors"`
		Books   []model.Book   `json:"books"`
	}
	execute(t, schema, `{ author(id: 1) { id } authors { id name } books { id authorId } }`, &data)
	assert.Nil(t, data.Author)
	assert.Len(t, data.Authors, 2)
	assert.Len(t, data.Books, 5)
	for _, b := range data.Books {
		assert.NotEqual(t, 1, b.AuthorID)
	}
}

func TestChangeBookThenQuery(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(t, schema, `mutation { changeBook(id: 1, name: "Y", authorId: 2) { id } }`, nil)
	require.False(t, result.HasErrors(), "%v", result.Errors)

	var data struct {
		Book bookWithAuthor `json:"book"`
	}
	execute(t, schema, `{ book(id: 1) { id name authorId author { id name } } }`, &data)
	assert.Equal(t, "Y", data.Book.Name)
	assert.Equal(t, 2, data.Book.AuthorID)
	require.NotNil(t, data.Book.Author)
	assert.Equal(t, "J. R. R. Tolkien", data.Book.Author.Name)
}

func TestAuthorBooksResolvesMatchingBooks(t *testing.T) {
	schema := newTestSchema(t)

	var data struct {
		Author authorWithBooks `json:"author"`
	}
	result := execute(t, schema, `{ author(id: 3) { id name books { id name authorId } } }`, &data)
	require.False(t, result.HasErrors(), "%v", result.Errors)

	assert.Equal(t, []model.Book{
		{ID: 7, Name: "The Way of Shadows", AuthorID: 3},
		{ID: 8, Name: "Beyond the Shadows", AuthorID: 3},
	}, data.Author.Books)
}

func TestBookAuthorNullForDanglingReference(t *testing.T) {
	schema := newTestSchema(t)

	var added struct {
		AddBook bookWithAuthor `json:"addBook"`
	}
	result := execute(t, schema, `mutation { addBook(name: "Orphan", authorId: 42) { id author { id } } }`, &added)
	require.False(t, result.HasErrors(), "%v", result.Errors)
	assert.Nil(t, added.AddBook.Author)
}

func TestAuthorMutations(t *testing.T) {
	schema := newTestSchema(t)

	var added struct {
		AddAuthor model.Author `json:"addAuthor"`
	}
	execute(t, schema, `mutation { addAuthor(name: "Ursula K. Le Guin") { id name } }`, &added)
	assert.Equal(t, model.Author{ID: 4, Name: "Ursula K. Le Guin"}, added.AddAuthor)

	var changed struct {
		ChangeAuthor model.Author `json:"changeAuthor"`
	}
	result := execute(t, schema, `mutation { changeAuthor(id: 4, name: "U. K. Le Guin") { id name } }`, &changed)
	require.False(t, result.HasErrors(), "%v", result.Errors)
	assert.Equal(t, model.Author{ID: 4, Name: "U. K. Le Guin"}, changed.ChangeAuthor)
}

func TestRemoveBook(t *testing.T) {
	schema := newTestSchema(t)

	var removed struct {
		RemoveBook model.Book `json:"removeBook"`
	}
	result := execute(t, schema, `mutation { removeBook(id: 2) { id name } }`, &removed)
	require.False(t, result.HasErrors(), "%v", result.Errors)
	assert.Equal(t, 2, removed.RemoveBook.ID)

	var data struct {
		Book *model.Book `json:"book"`
	}
	execute(t, schema, `{ book(id: 2) { id } }`, &data)
	assert.Nil(t, data.Book)
}

func TestMutationOnMissingIDReportsNotFound(t *testing.T) {
	schema := newTestSchema(t)
	ctx := middleware.WithRequestID(context.Background(), "req-1")

	mutations := []string{
		`mutation { changeBook(id: 999, name: "Y", authorId: 2) { id } }`,
		`mutation { removeBook(id: 999) { id } }`,
		`mutation { changeAuthor(id: 999, name: "Y") { id } }`,
		`mutation { removeAuthor(id: 999) { id } }`,
	}

	for _, m := range mutations {
		result := executeContext(t, ctx, schema, m, nil)
		require.Len(t, result.Errors, 1, m)
		assert.Equal(t, "NOT_FOUND", result.Errors[0].Extensions["code"], m)
		assert.Equal(t, "req-1", result.Errors[0].Extensions["request_id"], m)
		assert.Equal(t, 999, result.Errors[0].Extensions["id"], m)
	}
}

func TestInvalidDocumentIsRejected(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(t, schema, `{ book { id } }`, nil)
	assert.True(t, result.HasErrors())
}
