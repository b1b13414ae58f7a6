package gate

import "context"

// InstallRepository provides persistence for install records.
type InstallRepository interface {
	// Latest returns the newest install record, or repository.ErrNotFound
	// if the system has never been provisioned.
	Latest(ctx context.Context) (*InstallRecord, error)
	Create(ctx context.Context, rec *InstallRecord) error
}
