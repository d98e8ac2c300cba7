package zones

import (
	"context"
	"strings"

	"github.com/m04kA/container-storefront/internal/domain"
)

// Результаты поиска тега для метрик
const (
	TagLookupFound    = "found"
	TagLookupNotFound = "not_found"
	TagLookupFailed   = "failed"
)

// tagLookup результат чтения тегов: либо id, либо причина отсутствия
type tagLookup struct {
	id    string
	found bool
	err   error
}

// Service определяет зону доставки по почтовому индексу и тег зоны в каталоге
type Service struct {
	tags     TagLister
	recorder Recorder
	logger   Logger
}

// NewService создает новый экземпляр сервиса зон
func NewService(tags TagLister, recorder Recorder, logger Logger) *Service {
	return &Service{
		tags:     tags,
		recorder: recorder,
		logger:   logger,
	}
}

// Zones возвращает таблицу зон в порядке объявления
func (s *Service) Zones() []domain.PostalZone {
	return domain.GermanPostalZones()
}

// ResolveZone определяет зону по почтовому индексу (первое совпадение в порядке таблицы)
func (s *Service) ResolveZone(postalCode string) (domain.PostalZone, bool) {
	return domain.ResolveZone(postalCode)
}

// ResolveTagName возвращает имя тега зоны для почтового индекса
func (s *Service) ResolveTagName(postalCode string) (string, bool) {
	return domain.ResolveTagName(postalCode)
}

// ResolveTagID ищет ID тега каталога по имени без учёта регистра
// Ошибка чтения тегов не пробрасывается: она логируется и превращается в "не найдено".
// Вызывающий код не различает "тега нет" и "бэкенд недоступен".
func (s *Service) ResolveTagID(ctx context.Context, tagName string) (string, bool) {
	res := s.lookupTag(ctx, tagName)

	switch {
	case res.err != nil:
		s.logger.Error("ResolveTagID: tag lookup failed for tag=%s, treating as not found: %v", tagName, res.err)
		s.recorder.IncTagLookup(TagLookupFailed)
		return "", false
	case !res.found:
		s.logger.Warn("ResolveTagID: tag=%s not found in catalog", tagName)
		s.recorder.IncTagLookup(TagLookupNotFound)
		return "", false
	default:
		s.logger.Info("ResolveTagID: tag=%s resolved to id=%s", tagName, res.id)
		s.recorder.IncTagLookup(TagLookupFound)
		return res.id, true
	}
}

// ResolveZoneTagID почтовый индекс -> имя тега зоны -> ID тега
func (s *Service) ResolveZoneTagID(ctx context.Context, postalCode string) (string, bool) {
	tagName, ok := s.ResolveTagName(postalCode)
	if !ok {
		return "", false
	}
	return s.ResolveTagID(ctx, tagName)
}

func (s *Service) lookupTag(ctx context.Context, tagName string) tagLookup {
	tags, err := s.tags.ListProductTags(ctx)
	if err != nil {
		return tagLookup{err: err}
	}

	for _, tag := range tags {
		if strings.EqualFold(tag.Value, tagName) {
			return tagLookup{id: tag.ID, found: true}
		}
	}
	return tagLookup{}
}
