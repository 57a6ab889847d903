package persistent

import (
	"postflow/internal/entity"
	"postflow/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		Username:     m.Username,
		Content:      m.Content,
		Image:        m.Image,
		PostType:     entity.PostType(m.PostType),
		UserIP:       m.UserIP,
		UserAgent:    m.UserAgent,
		ViewCount:    m.ViewCount,
		LastViewedAt: m.LastViewedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	if !m.ID.IsZero() {
		post.ID = m.ID.Hex()
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	post := &model.PostModel{
		Username:     e.Username,
		Content:      e.Content,
		Image:        e.Image,
		PostType:     string(e.PostType),
		UserIP:       e.UserIP,
		UserAgent:    e.UserAgent,
		ViewCount:    e.ViewCount,
		LastViewedAt: e.LastViewedAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}

	if oid, err := primitive.ObjectIDFromHex(e.ID); err == nil {
		post.ID = oid
	}

	return post
}
