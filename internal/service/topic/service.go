package topic

import (
	"context"

	"github.com/google/uuid"

	"github.com/riskaamelia-wd/sumq/internal/models"
	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

type topicRepo interface {
	CreateTopic(ctx context.Context, topic *models.Topic) (uuid.UUID, error)
	TopicByID(ctx context.Context, id uuid.UUID) (*models.Topic, error)
	ListTopics(ctx context.Context) ([]models.Topic, error)
	TopicsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Topic, error)
	UpdateTopic(ctx context.Context, topic *models.Topic) error
	DeleteTopic(ctx context.Context, id uuid.UUID) error
}

type subtopicRepo interface {
	CreateSubtopic(ctx context.Context, sub *models.Subtopic) (uuid.UUID, error)
	SubtopicByID(ctx context.Context, id uuid.UUID) (*models.Subtopic, error)
	SubtopicsByTopic(ctx context.Context, topicID uuid.UUID) ([]models.Subtopic, error)
	UpdateSubtopic(ctx context.Context, sub *models.Subtopic) error
	DeleteSubtopic(ctx context.Context, id uuid.UUID) error
}

type searchRepo interface {
	Index(ctx context.Context, topic models.Topic) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, size int) ([]uuid.UUID, error)
}

type TopicService struct {
	log          logger.Log
	topicRepo    topicRepo
	subtopicRepo subtopicRepo
	searchRepo   searchRepo
}

func NewTopicService(log logger.Log, t topicRepo, s subtopicRepo, search searchRepo) *TopicService {
	return &TopicService{
		log:          log,
		topicRepo:    t,
		subtopicRepo: s,
		searchRepo:   search,
	}
}

func (s *TopicService) CreateTopic(ctx context.Context, topic models.Topic) (*models.Topic, error) {
	topic.Active = true
	id, err := s.topicRepo.CreateTopic(ctx, &topic)
	if err != nil {
		return nil, err
	}
	topic.ID = id
	if err := s.searchRepo.Index(ctx, topic); err != nil {
		s.log.ErrorErr("failed to index topic", err, "topic_id", id)
	}
	return &topic, nil
}

func (s *TopicService) TopicByID(ctx context.Context, id uuid.UUID) (*models.Topic, error) {
	return s.topicRepo.TopicByID(ctx, id)
}

func (s *TopicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topicRepo.ListTopics(ctx)
}

// SearchTopics resolves name matches from the search index, then loads the
// records in match order.
func (s *TopicService) SearchTopics(ctx context.Context, query string, size int) ([]models.Topic, error) {
	ids, err := s.searchRepo.Search(ctx, query, size)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return s.topicRepo.TopicsByIDs(ctx, ids)
}

func (s *TopicService) UpdateTopic(ctx context.Context, topic models.Topic) (*models.Topic, error) {
	existing, err := s.topicRepo.TopicByID(ctx, topic.ID)
	if err != nil {
		return nil, err
	}
	existing.Name = topic.Name
	existing.Active = topic.Active
	if err := s.topicRepo.UpdateTopic(ctx, existing); err != nil {
		return nil, err
	}
	if err := s.searchRepo.Index(ctx, *existing); err != nil {
		s.log.ErrorErr("failed to reindex topic", err, "topic_id", existing.ID)
	}
	return existing, nil
}

func (s *TopicService) SetTopicActive(ctx context.Context, id uuid.UUID, active bool) error {
	topic, err := s.topicRepo.TopicByID(ctx, id)
	if err != nil {
		return err
	}
	topic.Active = active
	return s.topicRepo.UpdateTopic(ctx, topic)
}

func (s *TopicService) DeleteTopic(ctx context.Context, id uuid.UUID) error {
	if err := s.topicRepo.DeleteTopic(ctx, id); err != nil {
		return err
	}
	if err := s.searchRepo.Delete(ctx, id); err != nil {
		s.log.ErrorErr("failed to remove topic from index", err, "topic_id", id)
	}
	return nil
}

func (s *TopicService) CreateSubtopic(ctx context.Context, sub models.Subtopic) (*models.Subtopic, error) {
	if _, err := s.topicRepo.TopicByID(ctx, sub.TopicID); err != nil {
		return nil, err
	}
	sub.Active = true
	id, err := s.subtopicRepo.CreateSubtopic(ctx, &sub)
	if err != nil {
		return nil, err
	}
	sub.ID = id
	return &sub, nil
}

func (s *TopicService) SubtopicByID(ctx context.Context, id uuid.UUID) (*models.Subtopic, error) {
	return s.subtopicRepo.SubtopicByID(ctx, id)
}

func (s *TopicService) SubtopicsByTopic(ctx context.Context, topicID uuid.UUID) ([]models.Subtopic, error) {
	if _, err := s.topicRepo.TopicByID(ctx, topicID); err != nil {
		return nil, err
	}
	return s.subtopicRepo.SubtopicsByTopic(ctx, topicID)
}

func (s *TopicService) UpdateSubtopic(ctx context.Context, sub models.Subtopic) (*models.Subtopic, error) {
	existing, err := s.subtopicRepo.SubtopicByID(ctx, sub.ID)
	if err != nil {
		return nil, err
	}
	existing.Name = sub.Name
	existing.Active = sub.Active
	if err := s.subtopicRepo.UpdateSubtopic(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TopicService) DeleteSubtopic(ctx context.Context, id uuid.UUID) error {
	return s.subtopicRepo.DeleteSubtopic(ctx, id)
}
