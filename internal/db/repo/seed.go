package repo

type seedBook struct {
	name   string
	author int
}

var seedAuthors = []string{
	"J. K. Rowling",
	"J. R. R. Tolkien",
	"Brent Weeks",
}

var seedBooks = []seedBook{
	{name: "Harry Potter and the Chamber of Secrets", author: 1},
	{name: "Harry Potter and the Prisoner of Azkaban", author: 1},
	{name: "Harry Potter and the Goblet of Fire", author: 1},
	{name: "The Fellowship of the Ring", author: 2},
	{name: "The Two Towers", author: 2},
	{name: "The Return of the King", author: 2},
	{name: "The Way of Shadows", author: 3},
	{name: "Beyond the Shadows", author: 3},
}

// Seed appends the fixture authors and books. On an empty store the
// authors get ids 1-3 and the books ids 1-8.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.nextAuthorID - 1
	for _, name := range seedAuthors {
		s.insertAuthorLocked(name)
	}
	for _, b := range seedBooks {
		s.insertBookLocked(b.name, base+b.author)
	}
}
