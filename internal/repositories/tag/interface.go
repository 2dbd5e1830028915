package tag

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/larpwright/larpwright/internal/repositories/tag Repository

import (
	"context"

	"github.com/larpwright/larpwright/internal/models"
)

// Repository defines the interface for tag definition persistence
type Repository interface {
	// SaveTag persists a tag definition
	SaveTag(ctx context.Context, input *SaveTagInput) error

	// GetTag retrieves a tag by ID
	GetTag(ctx context.Context, input *GetTagInput) (*models.Tag, error)

	// GetTagsByIDs retrieves tags for a list of IDs, preserving order
	GetTagsByIDs(ctx context.Context, input *GetTagsByIDsInput) (*GetTagsByIDsOutput, error)

	// DeleteTag removes a tag definition
	DeleteTag(ctx context.Context, input *DeleteTagInput) error

	// ListTags retrieves all tag definitions
	ListTags(ctx context.Context, input *ListTagsInput) (*ListTagsOutput, error)
}
