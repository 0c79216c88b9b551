package repository

import "context"

// CostProfilesRepositoryInterface defines cost profile storage.
type CostProfilesRepositoryInterface interface {
	GetActive(ctx context.Context) (*CostProfile, error)
	Create(ctx context.Context, draft CostProfile) (*CostProfile, error)
	List(ctx context.Context, limit int) ([]CostProfile, error)
}

// LogsRepositoryInterface defines log entry storage.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ CostProfilesRepositoryInterface = (*CostProfilesRepository)(nil)
	_ CostProfilesRepositoryInterface = (*CostProfilesRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface         = (*LogsRepository)(nil)
	_ LogsRepositoryInterface         = (*LogsRepositoryWithCircuitBreaker)(nil)
)
