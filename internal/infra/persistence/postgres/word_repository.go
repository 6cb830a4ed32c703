package postgres

import (
	"context"

	"wordvault/internal/domain/entity"
	domainerrors "wordvault/internal/domain/errors"
	"wordvault/internal/domain/repository"
	"wordvault/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// wordRepository implements the repository.WordRepository interface using GORM.
type wordRepository struct {
	db *gorm.DB
}

// NewWordRepository is the constructor for wordRepository.
func NewWordRepository(db *gorm.DB) repository.WordRepository {
	return &wordRepository{
		db: db,
	}
}

// Create persists a new word. A violation of the (user_id, native) unique
// index is mapped to the same conflict error as the application-level
// duplicate check, covering the read-then-write race window.
func (repo *wordRepository) Create(ctx context.Context, word *entity.Word) error {
	wordM := fromWordDomain(word)

	if err := repo.db.WithContext(ctx).Create(wordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrWordAlreadyExists.WrapMessage("native term already registered for this user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "word references unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required word information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create word")
	}

	word.ID = wordM.ID
	word.CreatedAt = wordM.CreatedAt
	word.UpdatedAt = wordM.UpdatedAt

	return nil
}

// FindByOwner retrieves all words owned by the given user in insertion order.
func (repo *wordRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Word, error) {
	var wordModels []*model.WordModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Find(&wordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find words by owner")
	}

	words := make([]*entity.Word, 0, len(wordModels))
	for _, wordM := range wordModels {
		words = append(words, toWordDomain(wordM))
	}

	return words, nil
}

// FindByOwnerAndNative retrieves the owner's word with the given normalized
// native term, optionally ignoring one word ID (the word being edited).
func (repo *wordRepository) FindByOwnerAndNative(ctx context.Context, ownerID uuid.UUID, native string, excludeID *uuid.UUID) (*entity.Word, error) {
	var wordM model.WordModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ? AND native = ?", ownerID, native)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	if err := query.First(&wordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWordNotFound
		}

		return nil, errors.Wrap(err, "failed to find word by owner and native")
	}

	return toWordDomain(&wordM), nil
}

// Update rewrites the native/translate pair of the word matched by
// (word.ID, word.UserID). Matching on both columns keeps the operation
// owner-scoped: another user's word ID affects zero rows and surfaces as
// ErrWordNotFound.
func (repo *wordRepository) Update(ctx context.Context, word *entity.Word) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WordModel{}).
		Where("id = ? AND user_id = ?", word.ID, word.UserID).
		Updates(map[string]any{
			"native":    word.Native,
			"translate": word.Translate,
		})

	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrWordAlreadyExists.WrapMessage("native term already registered for this user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update word")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWordNotFound
	}

	// Refresh storage-maintained timestamps for the caller.
	var wordM model.WordModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", word.ID).
		First(&wordM).Error; err != nil {
		return errors.Wrap(err, "failed to reload updated word")
	}
	word.CreatedAt = wordM.CreatedAt
	word.UpdatedAt = wordM.UpdatedAt

	return nil
}

// Delete removes the word matched by (id, ownerID). Zero affected rows means
// the word does not exist or belongs to another user.
func (repo *wordRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.WordModel{})

	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete word")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWordNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toWordDomain converts a GORM WordModel to a domain Word entity.
func toWordDomain(data *model.WordModel) *entity.Word {
	if data == nil {
		return nil
	}

	return &entity.Word{
		ID:        data.ID,
		UserID:    data.UserID,
		Native:    data.Native,
		Translate: data.Translate,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromWordDomain converts a domain Word entity to a GORM WordModel for persistence.
func fromWordDomain(data *entity.Word) *model.WordModel {
	if data == nil {
		return nil
	}

	return &model.WordModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Native:    data.Native,
		Translate: data.Translate,
	}
}
