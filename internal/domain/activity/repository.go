package activity

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e Entry) error
	List(ctx context.Context, filter ListFilter) ([]Entry, error)
}

type ListFilter struct {
	Types    []EntryType
	AnimalID int64
	OwnerID  int64
	From     *time.Time
	To       *time.Time
	Query    string
	Limit    int
}
