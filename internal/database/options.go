package database

type FindOptions struct {
	Limit  int
	Offset int
}

func DefaultFindOptions() FindOptions {
	return FindOptions{Limit: 50, Offset: 0}
}
