package analytics

import "context"

type Repository interface {
	List(ctx context.Context) ([]VisitorLog, error)
	Insert(ctx context.Context, v VisitorLog) error
}
