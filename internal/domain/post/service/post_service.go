package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/renzmar06/socialgolf-server/internal/domain/post/model"
	"github.com/renzmar06/socialgolf-server/internal/domain/post/repository"
	"github.com/renzmar06/socialgolf-server/pkg/errs"

	"gorm.io/gorm"
)

// ErrNotAuthor is returned when a caller tries to delete someone
// else's post.
var ErrNotAuthor = errors.New("post: caller is not the author")

type Author struct {
	ID    string
	Name  string
	Email string
}

type PostService interface {
	CreatePost(author Author, content string, media []string) (*model.Post, error)
	GetPost(id string) (*model.Post, error)
	ListPosts(authorID string, page, limit int) ([]model.Post, int64, error)
	DeletePost(id, callerID string) error
	LikePost(id string) error
}

type postService struct {
	repo repository.PostRepository
}

func NewPostService(repo repository.PostRepository) PostService {
	return &postService{repo: repo}
}

func (s *postService) CreatePost(author Author, content string, media []string) (*model.Post, error) {
	if author.ID == "" {
		return nil, errs.Validationf("author is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, errs.Validationf("content is required")
	}

	rawMedia, err := json.Marshal(media)
	if err != nil {
		return nil, errs.Validationf("media: %v", err)
	}

	post := &model.Post{
		AuthorID:    author.ID,
		AuthorName:  author.Name,
		AuthorEmail: author.Email,
		Content:     strings.TrimSpace(content),
		Media:       rawMedia,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, errs.Storagef("create post: %v", err)
	}
	return post, nil
}

func (s *postService) GetPost(id string) (*model.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("post %s", id)
		}
		return nil, errs.Storagef("get post: %v", err)
	}
	return post, nil
}

func (s *postService) ListPosts(authorID string, page, limit int) ([]model.Post, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	posts, total, err := s.repo.GetList(authorID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, errs.Storagef("list posts: %v", err)
	}
	return posts, total, nil
}

func (s *postService) DeletePost(id, callerID string) error {
	post, err := s.GetPost(id)
	if err != nil {
		return err
	}
	if post.AuthorID != callerID {
		return ErrNotAuthor
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFoundf("post %s", id)
		}
		return errs.Storagef("delete post: %v", err)
	}
	return nil
}

func (s *postService) LikePost(id string) error {
	if err := s.repo.IncrementLikes(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFoundf("post %s", id)
		}
		return errs.Storagef("like post: %v", err)
	}
	return nil
}
