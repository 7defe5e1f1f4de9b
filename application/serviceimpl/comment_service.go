// application/serviceimpl/comment_service.go
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

type commentService struct {
	commentRepo         repository.CommentRepository
	postRepo            repository.PostRepository
	notificationService service.NotificationService
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	notificationService service.NotificationService,
) service.CommentService {
	return &commentService{
		commentRepo:         commentRepo,
		postRepo:            postRepo,
		notificationService: notificationService,
	}
}

func (s *commentService) AddComment(postID, authorID uuid.UUID, req dto.AddCommentRequest) (*models.Comment, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil || post.IsDeleted {
		return nil, errors.New("post not found")
	}

	var parent *models.Comment
	if req.ParentID != nil {
		parent, err = s.commentRepo.FindByID(*req.ParentID)
		if err != nil {
			return nil, errors.New("parent comment not found")
		}
		if parent.PostID != postID {
			return nil, errors.New("parent comment does not belong to this post")
		}
	}

	comment := &models.Comment{
		ID:          uuid.New(),
		PostID:      postID,
		AuthorID:    authorID,
		ParentID:    req.ParentID,
		CommentText: req.CommentText,
		Time:        time.Now(),
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if parent != nil {
		if parent.AuthorID != authorID {
			_ = s.notificationService.Send(dto.NotificationTypeCommentComment, parent.AuthorID, "New reply to your comment")
		}
	} else if post.AuthorID != authorID {
		_ = s.notificationService.Send(dto.NotificationTypePostComment, post.AuthorID, "New comment on your post")
	}

	return comment, nil
}

func (s *commentService) EditComment(id uuid.UUID, text string) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("comment not found")
	}

	comment.CommentText = text
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) DeleteComment(id uuid.UUID) error {
	if _, err := s.commentRepo.FindByID(id); err != nil {
		return errors.New("comment not found")
	}
	return s.commentRepo.SetBlocked(id, true)
}

// GetByPost returns the comment tree: top-level comments in posting order,
// replies nested under their parents.
func (s *commentService) GetByPost(postID uuid.UUID) ([]dto.CommentData, error) {
	comments, err := s.commentRepo.FindByPost(postID)
	if err != nil {
		return nil, err
	}

	children := make(map[uuid.UUID][]*models.Comment)
	var roots []*models.Comment
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, c)
		} else {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	var build func(c *models.Comment) dto.CommentData
	build = func(c *models.Comment) dto.CommentData {
		node := dto.NewCommentData(c)
		for _, child := range children[c.ID] {
			node.SubComments = append(node.SubComments, build(child))
		}
		return node
	}

	out := make([]dto.CommentData, 0, len(roots))
	for _, root := range roots {
		out = append(out, build(root))
	}
	return out, nil
}

// ComplaintComment only acknowledges the report; moderation is manual.
func (s *commentService) ComplaintComment(postID, commentID uuid.UUID) error {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil || comment.PostID != postID {
		return errors.New("comment not found")
	}
	return nil
}
