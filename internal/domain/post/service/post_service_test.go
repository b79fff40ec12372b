package service

import (
	"testing"

	"github.com/renzmar06/socialgolf-server/internal/domain/post/model"
	"github.com/renzmar06/socialgolf-server/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *model.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id string) (*model.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) GetList(authorID string, offset, limit int) ([]model.Post, int64, error) {
	args := m.Called(authorID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) IncrementLikes(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestDeletePost(t *testing.T) {
	t.Run("author can delete their own post", func(t *testing.T) {
		repo := new(MockPostRepository)
		svc := NewPostService(repo)

		repo.On("GetByID", "post-1").Return(&model.Post{AuthorID: "biz-1"}, nil)
		repo.On("Delete", "post-1").Return(nil)

		assert.NoError(t, svc.DeletePost("post-1", "biz-1"))
		repo.AssertExpectations(t)
	})

	t.Run("rejects anyone who is not the author", func(t *testing.T) {
		repo := new(MockPostRepository)
		svc := NewPostService(repo)

		repo.On("GetByID", "post-1").Return(&model.Post{AuthorID: "biz-1"}, nil)

		err := svc.DeletePost("post-1", "biz-2")

		assert.ErrorIs(t, err, ErrNotAuthor)
		repo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("maps a missing post to not found", func(t *testing.T) {
		repo := new(MockPostRepository)
		svc := NewPostService(repo)

		repo.On("GetByID", "post-missing").Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.DeletePost("post-missing", "biz-1"), errs.ErrNotFound)
	})
}

func TestCreatePost(t *testing.T) {
	author := Author{ID: "biz-1", Name: "Pine Valley", Email: "pro@pinevalley.test"}

	t.Run("stamps the verified author onto the post", func(t *testing.T) {
		repo := new(MockPostRepository)
		svc := NewPostService(repo)

		repo.On("Create", mock.MatchedBy(func(p *model.Post) bool {
			return p.AuthorID == "biz-1" &&
				p.AuthorName == "Pine Valley" &&
				p.AuthorEmail == "pro@pinevalley.test" &&
				p.Content == "New tee times open"
		})).Return(nil)

		post, err := svc.CreatePost(author, "  New tee times open  ", nil)

		assert.NoError(t, err)
		assert.Equal(t, "biz-1", post.AuthorID)
		repo.AssertExpectations(t)
	})

	t.Run("requires content", func(t *testing.T) {
		repo := new(MockPostRepository)
		svc := NewPostService(repo)

		_, err := svc.CreatePost(author, "   ", nil)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("requires an authenticated author", func(t *testing.T) {
		repo := new(MockPostRepository)
		svc := NewPostService(repo)

		_, err := svc.CreatePost(Author{}, "hello", nil)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestLikePost(t *testing.T) {
	t.Run("maps a missing post to not found", func(t *testing.T) {
		repo := new(MockPostRepository)
		svc := NewPostService(repo)

		repo.On("IncrementLikes", "post-missing").Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.LikePost("post-missing"), errs.ErrNotFound)
	})
}
