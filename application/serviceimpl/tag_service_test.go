// application/serviceimpl/tag_service_test.go
package serviceimpl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
)

func TestCreateTagReturnsExisting(t *testing.T) {
	tagRepo := new(MockTagRepository)
	service := NewTagService(tagRepo)

	existing := &models.Tag{ID: uuid.New(), Tag: "golang"}
	tagRepo.On("FindByText", "golang").Return(existing, nil)

	tag, err := service.CreateTag("  golang ")
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, tag.ID)
	tagRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateTagEmptyText(t *testing.T) {
	tagRepo := new(MockTagRepository)
	service := NewTagService(tagRepo)

	_, err := service.CreateTag("   ")
	assert.EqualError(t, err, "tag text is empty")
	tagRepo.AssertNotCalled(t, "FindByText", mock.Anything)
}

func TestCreateTagNewText(t *testing.T) {
	tagRepo := new(MockTagRepository)
	service := NewTagService(tagRepo)

	tagRepo.On("FindByText", "golang").Return(nil, gorm.ErrRecordNotFound)
	tagRepo.On("Create", mock.AnythingOfType("*models.Tag")).Return(nil)

	tag, err := service.CreateTag("golang")
	assert.NoError(t, err)
	assert.Equal(t, "golang", tag.Tag)
	assert.NotEqual(t, uuid.Nil, tag.ID)
	tagRepo.AssertExpectations(t)
}

func TestDeleteTagUnknown(t *testing.T) {
	tagRepo := new(MockTagRepository)
	service := NewTagService(tagRepo)

	id := uuid.New()
	tagRepo.On("FindByID", id).Return(nil, gorm.ErrRecordNotFound)

	err := service.DeleteTag(id)
	assert.EqualError(t, err, "tag not found")
	tagRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestSyncPostTagsReplacesSet(t *testing.T) {
	tagRepo := new(MockTagRepository)
	service := NewTagService(tagRepo)

	postID := uuid.New()
	kept := &models.Tag{ID: uuid.New(), Tag: "news"}

	tagRepo.On("DetachAllFromPost", postID).Return(nil)
	tagRepo.On("FindByText", "news").Return(kept, nil)
	tagRepo.On("FindByText", "fresh").Return(nil, gorm.ErrRecordNotFound)
	tagRepo.On("Create", mock.AnythingOfType("*models.Tag")).Return(nil)
	tagRepo.On("AttachToPost", postID, mock.AnythingOfType("uuid.UUID")).Return(nil)

	err := service.SyncPostTags(postID, []string{"news", "fresh"})
	assert.NoError(t, err)
	tagRepo.AssertCalled(t, "AttachToPost", postID, kept.ID)
	tagRepo.AssertNumberOfCalls(t, "AttachToPost", 2)
	tagRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestGetPostTagsFlattensText(t *testing.T) {
	tagRepo := new(MockTagRepository)
	service := NewTagService(tagRepo)

	postID := uuid.New()
	tagRepo.On("FindByPost", postID).Return([]*models.Tag{
		{ID: uuid.New(), Tag: "alpha"},
		{ID: uuid.New(), Tag: "beta"},
	}, nil)

	tags, err := service.GetPostTags(postID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, tags)
}
