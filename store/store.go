package store

// Store provides access to reminder records through a driver.
type Store struct {
	driver Driver
}

// New creates a new instance of Store.
func New(driver Driver) *Store {
	return &Store{
		driver: driver,
	}
}

func (s *Store) Close() error {
	return s.driver.Close()
}
