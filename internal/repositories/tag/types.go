package tag

import "github.com/larpwright/larpwright/internal/models"

type SaveTagInput struct {
	Tag *models.Tag
}

type GetTagInput struct {
	TagID string
}

type GetTagsByIDsInput struct {
	TagIDs []string
}

type GetTagsByIDsOutput struct {
	Tags []models.Tag
}

type DeleteTagInput struct {
	TagID string
}

type ListTagsInput struct {
}

type ListTagsOutput struct {
	Tags []models.Tag
}
