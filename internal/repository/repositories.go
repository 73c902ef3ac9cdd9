package repository

// Repositories is a container for all repository instances.
type Repositories struct {
	Person *PersonRepository
}

// NewRepositories constructs the repository container.
//
// Repositories are stateless: the connection is passed to each call, so
// nothing from the server is needed here.
func NewRepositories() *Repositories {
	return &Repositories{
		Person: NewPersonRepository(),
	}
}
