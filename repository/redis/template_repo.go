package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
	"github.com/fadelaryap/agrione-v1-sub000/repository"
)

type templateRepository struct {
	client *redislib.Client
	prefix string
}

// NewTemplateRepository creates a Redis-backed store for saved cultivation templates.
// Templates have no expiry; they live until explicitly deleted.
func NewTemplateRepository(client *redislib.Client) repository.TemplateRepository {
	return &templateRepository{
		client: client,
		prefix: "template:",
	}
}

func (r *templateRepository) Get(ctx context.Context, id string) (*domain.Template, error) {
	result, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, err
	}

	var tmpl domain.Template
	if err := json.Unmarshal([]byte(result), &tmpl); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func (r *templateRepository) List(ctx context.Context) ([]domain.Template, error) {
	var templates []domain.Template
	var cursor uint64

	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}

		if len(keys) > 0 {
			values, err := r.client.MGet(ctx, keys...).Result()
			if err != nil {
				return nil, err
			}
			for _, value := range values {
				raw, ok := value.(string)
				if !ok {
					continue
				}
				var tmpl domain.Template
				if err := json.Unmarshal([]byte(raw), &tmpl); err != nil {
					continue
				}
				templates = append(templates, tmpl)
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return templates, nil
}

func (r *templateRepository) Save(ctx context.Context, tmpl *domain.Template) error {
	if tmpl == nil || tmpl.ID == "" {
		return domain.ErrInvalidPayload
	}
	if tmpl.CreatedAt.IsZero() {
		tmpl.CreatedAt = time.Now()
	}

	payload, err := json.Marshal(tmpl)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.key(tmpl.ID), payload, 0).Err()
}

func (r *templateRepository) Delete(ctx context.Context, id string) error {
	deleted, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

func (r *templateRepository) key(id string) string {
	return fmt.Sprintf("%s%s", r.prefix, id)
}
