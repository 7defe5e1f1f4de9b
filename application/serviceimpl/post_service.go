// application/serviceimpl/post_service.go
package serviceimpl

import (
	"errors"
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/google/uuid"
)

var errPostNotFound = errors.New("post not found")

type postService struct {
	postRepo       repository.PostRepository
	personRepo     repository.PersonRepository
	commentService service.CommentService
	tagService     service.TagService
}

func NewPostService(
	postRepo repository.PostRepository,
	personRepo repository.PersonRepository,
	commentService service.CommentService,
	tagService service.TagService,
) service.PostService {
	return &postService{
		postRepo:       postRepo,
		personRepo:     personRepo,
		commentService: commentService,
		tagService:     tagService,
	}
}

// AddPost replaces an absent or past publish time with the current time.
func (s *postService) AddPost(authorID uuid.UUID, req dto.AddPostRequest) (*models.Post, error) {
	if _, err := s.personRepo.FindByID(authorID); err != nil {
		return nil, errors.New("person not found")
	}

	publishTime := time.Now()
	if req.PublishTime != nil && req.PublishTime.After(publishTime) {
		publishTime = *req.PublishTime
	}

	post := &models.Post{
		ID:       uuid.New(),
		AuthorID: authorID,
		Time:     publishTime,
		Title:    req.Title,
		PostText: req.PostText,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	if len(req.Tags) > 0 {
		if err := s.tagService.SyncPostTags(post.ID, req.Tags); err != nil {
			return nil, err
		}
	}

	return post, nil
}

func (s *postService) GetByID(id uuid.UUID) (*dto.PostData, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil || post.IsDeleted {
		return nil, errPostNotFound
	}
	return s.toPostData(post)
}

func (s *postService) GetWall(personID uuid.UUID, offset, limit int) ([]dto.PostData, int64, error) {
	if _, err := s.personRepo.FindByID(personID); err != nil {
		return nil, 0, errors.New("person not found")
	}

	posts, total, err := s.postRepo.FindByAuthor(personID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	out, err := s.toPostDataList(posts)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *postService) GetFeed(offset, limit int) ([]dto.PostData, int64, error) {
	posts, total, err := s.postRepo.FindFeed(offset, limit)
	if err != nil {
		return nil, 0, err
	}

	out, err := s.toPostDataList(posts)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *postService) EditPost(id uuid.UUID, req dto.EditPostRequest) (*dto.PostData, error) {
	post, err := s.postRepo.Mutate(id, func(p *models.Post) error {
		if p.IsDeleted {
			return errPostNotFound
		}
		p.Title = req.Title
		p.PostText = req.PostText
		return nil
	})
	if err != nil {
		return nil, errPostNotFound
	}

	if req.Tags != nil {
		if err := s.tagService.SyncPostTags(post.ID, req.Tags); err != nil {
			return nil, err
		}
	}

	return s.toPostData(post)
}

func (s *postService) DeletePost(id uuid.UUID) error {
	_, err := s.postRepo.Mutate(id, func(p *models.Post) error {
		if p.IsDeleted {
			return errPostNotFound
		}
		p.IsDeleted = true
		return nil
	})
	if err != nil {
		return errPostNotFound
	}
	return nil
}

func (s *postService) RecoverPost(id uuid.UUID) error {
	_, err := s.postRepo.Mutate(id, func(p *models.Post) error {
		p.IsDeleted = false
		return nil
	})
	if err != nil {
		return errPostNotFound
	}
	return nil
}

// ComplaintPost only acknowledges the report; moderation is manual.
func (s *postService) ComplaintPost(id uuid.UUID) error {
	if _, err := s.postRepo.FindByID(id); err != nil {
		return errPostNotFound
	}
	return nil
}

func (s *postService) toPostData(post *models.Post) (*dto.PostData, error) {
	author, err := s.personRepo.FindByID(post.AuthorID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentService.GetByPost(post.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []dto.CommentData{}
	}

	tags, err := s.tagService.GetPostTags(post.ID)
	if err != nil {
		return nil, err
	}

	return &dto.PostData{
		ID:        post.ID,
		Time:      post.Time,
		Author:    dto.NewPersonData(author),
		Title:     post.Title,
		PostText:  post.PostText,
		IsBlocked: post.IsBlocked,
		Likes:     post.Likes,
		Tags:      tags,
		Comments:  comments,
	}, nil
}

func (s *postService) toPostDataList(posts []*models.Post) ([]dto.PostData, error) {
	out := make([]dto.PostData, 0, len(posts))
	for _, post := range posts {
		data, err := s.toPostData(post)
		if err != nil {
			return nil, err
		}
		out = append(out, *data)
	}
	return out, nil
}
