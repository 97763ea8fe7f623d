package service

import (
	"github.com/riskaamelia-wd/sumq/internal/service/generation"
	"github.com/riskaamelia-wd/sumq/internal/service/slide"
	"github.com/riskaamelia-wd/sumq/internal/service/template"
	"github.com/riskaamelia-wd/sumq/internal/service/topic"
	"github.com/riskaamelia-wd/sumq/internal/service/viewer"
)

type Collection struct {
	*topic.TopicService
	*slide.SlideService
	*template.TemplateService
	*viewer.ViewerService
	*generation.GenerationService
}
