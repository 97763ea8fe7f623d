package template

import (
	"context"

	"github.com/riskaamelia-wd/sumq/internal/models"
	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

type templateRepo interface {
	ListTemplates(ctx context.Context) ([]models.TemplateMeta, error)
	TemplateByName(ctx context.Context, name string) (*models.TemplateMeta, error)
}

// TemplateService serves the template catalog the authoring UI browses.
type TemplateService struct {
	log          logger.Log
	templateRepo templateRepo
}

func NewTemplateService(log logger.Log, t templateRepo) *TemplateService {
	return &TemplateService{log: log, templateRepo: t}
}

func (s *TemplateService) ListTemplates(ctx context.Context) ([]models.TemplateMeta, error) {
	return s.templateRepo.ListTemplates(ctx)
}

func (s *TemplateService) TemplateByName(ctx context.Context, name string) (*models.TemplateMeta, error) {
	return s.templateRepo.TemplateByName(ctx, name)
}
