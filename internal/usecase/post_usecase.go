package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"postflow/internal/entity"
	"postflow/internal/repo/persistent"
	"postflow/pkg/logger"
	"postflow/pkg/upload"
)

// CreatePostInput carries everything the transport layer captured for a new post.
type CreatePostInput struct {
	Username  string
	Content   string
	Image     *multipart.FileHeader
	UserIP    string
	UserAgent string
}

type PostUseCase interface {
	CountPosts(ctx context.Context) int64
	ListPosts(ctx context.Context) []*entity.Post
	CreatePost(ctx context.Context, in CreatePostInput) (*entity.Post, error)
	ViewPost(ctx context.Context, id string) (*entity.Post, error)
	GetPost(ctx context.Context, id string) (*entity.Post, error)
	UpdatePost(ctx context.Context, id, content string, image *multipart.FileHeader) (*entity.Post, error)
	DeletePost(ctx context.Context, id string) error
}

type postUseCase struct {
	postRepo persistent.PostRepository
	saver    *upload.Saver
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, saver *upload.Saver, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		saver:    saver,
		logger:   logger,
	}
}

// CountPosts degrades to 0 on store failure; the landing page shows a count,
// not an error.
func (uc *postUseCase) CountPosts(ctx context.Context) int64 {
	count, err := uc.postRepo.Count(ctx)
	if err != nil {
		uc.logger.Error("Failed to count posts: %v", err)
		return 0
	}
	return count
}

// ListPosts degrades to an empty feed on store failure.
func (uc *postUseCase) ListPosts(ctx context.Context) []*entity.Post {
	posts, err := uc.postRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list posts: %v", err)
		return []*entity.Post{}
	}
	return posts
}

func (uc *postUseCase) CreatePost(ctx context.Context, in CreatePostInput) (*entity.Post, error) {
	username := strings.TrimSpace(in.Username)
	content := strings.TrimSpace(in.Content)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}

	var image string
	if in.Image != nil {
		saved, err := uc.saver.Save(in.Image)
		if err != nil {
			return nil, fmt.Errorf("failed to save image: %w", err)
		}
		image = saved
	}

	post := &entity.Post{
		Username:  username,
		Content:   content,
		Image:     image,
		PostType:  entity.DeriveType(content, image),
		UserIP:    in.UserIP,
		UserAgent: in.UserAgent,
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		// The upload already landed on disk; clean it up so a failed insert
		// doesn't leave an orphaned file behind.
		if image != "" {
			if rmErr := uc.saver.Remove(image); rmErr != nil {
				uc.logger.Warn("Failed to remove staged upload %s: %v", image, rmErr)
			}
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.logger.Info("New post created: id=%s user=@%s type=%s hasImage=%t",
		post.ID, post.Username, post.PostType, image != "")
	return post, nil
}

// ViewPost fetches a post and records the view. The counter is a plain
// read-increment-write, so concurrent views of the same post may lose
// increments; at this scale an approximate count is acceptable.
func (uc *postUseCase) ViewPost(ctx context.Context, id string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post.ViewCount++
	post.LastViewedAt = &now

	if err := uc.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to record view for post %s: %w", id, err)
	}
	return post, nil
}

func (uc *postUseCase) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	return uc.postRepo.GetByID(ctx, id)
}

func (uc *postUseCase) UpdatePost(ctx context.Context, id, content string, image *multipart.FileHeader) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	post.Content = content

	if image != nil {
		saved, err := uc.saver.Save(image)
		if err != nil {
			return nil, fmt.Errorf("failed to save image: %w", err)
		}
		// Best-effort: a leftover file is preferable to failing the update.
		if post.Image != "" {
			if rmErr := uc.saver.Remove(post.Image); rmErr != nil {
				uc.logger.Warn("Failed to remove old image %s: %v", post.Image, rmErr)
			}
		}
		post.Image = saved
	}

	post.PostType = entity.DeriveType(post.Content, post.Image)

	if err := uc.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post %s: %w", id, err)
	}

	uc.logger.Info("Post updated: id=%s user=@%s type=%s", post.ID, post.Username, post.PostType)
	return post, nil
}

// DeletePost removes the post and its image file. Deleting an id that does not
// resolve to a post is a no-op.
func (uc *postUseCase) DeletePost(ctx context.Context, id string) error {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, persistent.ErrPostNotFound) {
			return nil
		}
		return err
	}

	if post.Image != "" {
		if rmErr := uc.saver.Remove(post.Image); rmErr != nil {
			uc.logger.Warn("Failed to remove image %s for post %s: %v", post.Image, post.ID, rmErr)
		}
	}

	if err := uc.postRepo.Delete(ctx, post.ID); err != nil {
		return fmt.Errorf("failed to delete post %s: %w", post.ID, err)
	}

	uc.logger.Info("Post deleted: id=%s user=@%s views=%d", post.ID, post.Username, post.ViewCount)
	return nil
}
