package resource

// Group bundles the three layers for one entity.
type Group[T any, P any] struct {
	Repository *Repository[T, P]
	Service    *Service[T, P]
	Handlers   *Handlers[T, P]
}

// NewGroup instantiates the CRUD group for def over db.
func NewGroup[T any, P any](db DB, def *Definition[T, P]) *Group[T, P] {
	repo := NewRepository(db, def)
	svc := NewService[T, P](repo, def)
	return &Group[T, P]{
		Repository: repo,
		Service:    svc,
		Handlers:   NewHandlers[T, P](svc),
	}
}
