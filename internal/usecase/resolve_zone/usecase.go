package resolve_zone

import (
	"context"
	"fmt"
	"strings"
)

// Результаты определения зоны для метрик
const (
	OutcomeResolved = "resolved"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
)

// UseCase use case для определения зоны доставки по почтовому индексу
type UseCase struct {
	zones    ZoneService
	recorder Recorder
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(zones ZoneService, recorder Recorder, logger Logger) *UseCase {
	return &UseCase{
		zones:    zones,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute определяет зону и ищет её тег в каталоге
// Отсутствие тега не ошибка: зона возвращается без TagID.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.PostalCode) == "" {
		uc.recorder.IncZoneResolution(OutcomeInvalid)
		return nil, fmt.Errorf("%w: postalCode is required", ErrInvalidInput)
	}

	zone, ok := uc.zones.ResolveZone(req.PostalCode)
	if !ok {
		uc.logger.Warn("ResolveZone: no zone for postalCode=%q", req.PostalCode)
		uc.recorder.IncZoneResolution(OutcomeNotFound)
		return nil, ErrZoneNotFound
	}

	uc.recorder.IncZoneResolution(OutcomeResolved)

	resp := &Response{
		Zone:        zone.Zone,
		Name:        zone.Name,
		DisplayName: zone.DisplayName(),
		TagName:     zone.TagName,
	}

	if tagID, found := uc.zones.ResolveTagID(ctx, zone.TagName); found {
		resp.TagID = &tagID
	}

	uc.logger.Info("ResolveZone: postalCode=%q -> zone=%d tag=%s", req.PostalCode, zone.Zone, zone.TagName)

	return resp, nil
}
