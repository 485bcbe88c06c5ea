package postgres

import (
	"context"

	"rangefinder/internal/domain/entity"
	"rangefinder/internal/domain/repository"
	"rangefinder/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// surveyRepository implements the repository.SurveyRepository interface.
type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository is the constructor for surveyRepository.
func NewSurveyRepository(db *gorm.DB) repository.SurveyRepository {
	return &surveyRepository{
		db: db,
	}
}

// FindFirstByPhone retrieves the most recent survey matching the digit string.
func (repo *surveyRepository) FindFirstByPhone(ctx context.Context, digits string) (*entity.Survey, error) {
	var surveyM model.SurveyModel

	if err := repo.db.WithContext(ctx).
		Where(phoneDigitsExpr+" = ?", digits).
		Order("id DESC").
		First(&surveyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find survey by phone")
	}

	return toSurveyDomain(&surveyM), nil
}

// FindByPhones retrieves surveys matching any of the given digit strings.
func (repo *surveyRepository) FindByPhones(ctx context.Context, digits []string) ([]*entity.Survey, error) {
	var surveys []*entity.Survey

	for _, chunk := range chunkStrings(digits) {
		var surveyModels []*model.SurveyModel

		if err := repo.db.WithContext(ctx).
			Where(phoneDigitsExpr+" IN ?", chunk).
			Order("id DESC").
			Find(&surveyModels).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find surveys by phones")
		}

		for _, surveyM := range surveyModels {
			surveys = append(surveys, toSurveyDomain(surveyM))
		}
	}

	return surveys, nil
}

// UpdateAddressByPhone overwrites the address on every survey matching the digit string.
func (repo *surveyRepository) UpdateAddressByPhone(ctx context.Context, digits, address string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.SurveyModel{}).
		Where(phoneDigitsExpr+" = ?", digits).
		Update("address", address).Error; err != nil {
		return errors.Wrap(err, "failed to update survey address by phone")
	}

	return nil
}

// SearchPhones returns digits-only phones of surveys whose address contains the term.
func (repo *surveyRepository) SearchPhones(ctx context.Context, term string) ([]string, error) {
	var phones []string

	if err := repo.db.WithContext(ctx).
		Raw("SELECT DISTINCT "+phoneDigitsExpr+" FROM surveys WHERE address ILIKE ?", "%"+term+"%").
		Scan(&phones).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search survey phones")
	}

	return phones, nil
}

// --- Mapper Functions ---

// toSurveyDomain converts a GORM SurveyModel to a domain Survey entity.
func toSurveyDomain(data *model.SurveyModel) *entity.Survey {
	if data == nil {
		return nil
	}

	return &entity.Survey{
		ID:      data.ID,
		Phone:   data.Phone,
		Address: data.Address,
	}
}
