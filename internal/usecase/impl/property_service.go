package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "kasa/internal/delivery/context"
	"kasa/internal/domain/entity"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/domain/repository"
	"kasa/internal/errors"
	"kasa/internal/usecase"

	"github.com/google/uuid"
)

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	properties repository.PropertyRepository
	logger     *slog.Logger
}

// NewPropertyService is the constructor for propertyService.
func NewPropertyService(properties repository.PropertyRepository, logger *slog.Logger) usecase.PropertyUsecase {
	return &propertyService{
		properties: properties,
		logger:     logger,
	}
}

func (srv *propertyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *propertyService) CreateProperty(ctx context.Context, ownerID uuid.UUID, input *usecase.CreatePropertyInput) (*entity.Property, error) {
	if blank(input.Name, input.Address) {
		return nil, domainerrors.ErrValidationFailed
	}
	if input.MonthlyRent <= 0 || input.Area < 0 || input.RoomCounts < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rent must be positive, area and rooms non-negative")
	}

	property := &entity.Property{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(input.Name),
		Address:     strings.TrimSpace(input.Address),
		Area:        input.Area,
		RoomCounts:  input.RoomCounts,
		MonthlyRent: input.MonthlyRent,
	}
	if err := srv.properties.Create(ctx, property); err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "create property")
	}

	srv.log(ctx).Info("Property created", slog.Any("property_id", property.ID))

	return property, nil
}

func (srv *propertyService) ListProperties(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	properties, err := srv.properties.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "list properties")
	}

	return properties, nil
}

func (srv *propertyService) DeleteProperty(ctx context.Context, ownerID, propertyID uuid.UUID) error {
	if err := srv.properties.Delete(ctx, ownerID, propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domainerrors.ErrPropertyNotFound
		}

		return errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "delete property")
	}

	srv.log(ctx).Info("Property deleted", slog.Any("property_id", propertyID))

	return nil
}

// findProperty loads an owner's property, reporting other owners' properties as missing.
func findProperty(ctx context.Context, properties repository.PropertyRepository, ownerID, propertyID uuid.UUID) (*entity.Property, error) {
	property, err := properties.FindByID(ctx, ownerID, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(asCollaboratorError(domainerrors.CollaboratorRecordStore, err), "find property")
	}

	return property, nil
}
