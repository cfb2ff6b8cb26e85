package repository

import (
	"context"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
)

// TemplateRepository is the key-value storage collaborator for saved
// cultivation templates. Implementations persist templates opaquely; no
// schema is enforced beyond the domain shape.
type TemplateRepository interface {
	Get(ctx context.Context, id string) (*domain.Template, error)
	List(ctx context.Context) ([]domain.Template, error)
	Save(ctx context.Context, template *domain.Template) error
	Delete(ctx context.Context, id string) error
}
