package impl

import (
	"context"
	"log/slog"

	deliverycontext "wordvault/internal/delivery/context"
	"wordvault/internal/domain/entity"
	domainerrors "wordvault/internal/domain/errors"
	"wordvault/internal/domain/repository"
	"wordvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wordService implements the WordUsecase interface.
type wordService struct {
	txManager repository.TransactionManager
	wordRepo  repository.WordRepository
	logger    *slog.Logger
}

// WordServiceParams holds dependencies for wordService, injected by Fx.
type WordServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	WordRepo  repository.WordRepository
	Logger    *slog.Logger
}

// NewWordService is the constructor for wordService.
func NewWordService(params WordServiceParams) usecase.WordUsecase {
	return &wordService{
		txManager: params.TxManager,
		wordRepo:  params.WordRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *wordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a word to the owner's list after the per-owner duplicate check.
func (srv *wordService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateWordInput) (*entity.Word, error) {
	if ownerID == uuid.Nil || input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("owner, native and translate are required")
	}

	native := entity.Normalize(input.Native)
	translate := entity.Normalize(input.Translate)
	if native == "" || translate == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("native and translate are required")
	}

	word := &entity.Word{
		UserID:    ownerID,
		Native:    native,
		Translate: translate,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wordRepo := repoFactory.NewWordRepository()

		_, findErr := wordRepo.FindByOwnerAndNative(ctx, ownerID, native, nil)
		if findErr == nil {
			return domainerrors.ErrWordAlreadyExists.WrapMessage("native term already registered")
		}
		if !errors.Is(findErr, repository.ErrWordNotFound) {
			return errors.Wrap(findErr, "failed to check word availability")
		}

		// The (user_id, native) unique index backstops this check against a
		// concurrent create of the same term.
		return wordRepo.Create(ctx, word)
	})
	if err != nil {
		srv.log(ctx).Warn("Word creation failed", slog.Any("ownerID", ownerID), slog.String("native", native), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Word created", slog.Any("ownerID", ownerID), slog.Any("wordID", word.ID))

	return word, nil
}

// List returns all words owned by the given user.
func (srv *wordService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Word, error) {
	if ownerID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("owner is required")
	}

	words, err := srv.wordRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list words")
	}

	return words, nil
}

// Edit updates the owner's word, excluding the word itself from the duplicate
// check so it can keep its native term.
func (srv *wordService) Edit(ctx context.Context, ownerID uuid.UUID, input *usecase.EditWordInput) (*entity.Word, error) {
	if ownerID == uuid.Nil || input == nil || input.ID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("owner, id, native and translate are required")
	}

	native := entity.Normalize(input.Native)
	translate := entity.Normalize(input.Translate)
	if native == "" || translate == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("native and translate are required")
	}

	word := &entity.Word{
		ID:        input.ID,
		UserID:    ownerID,
		Native:    native,
		Translate: translate,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wordRepo := repoFactory.NewWordRepository()

		_, findErr := wordRepo.FindByOwnerAndNative(ctx, ownerID, native, &input.ID)
		if findErr == nil {
			return domainerrors.ErrWordAlreadyExists.WrapMessage("native term already registered")
		}
		if !errors.Is(findErr, repository.ErrWordNotFound) {
			return errors.Wrap(findErr, "failed to check word availability")
		}

		// Matching on (id, owner) means an unknown ID and someone else's word
		// are the same outcome: zero rows, reported as not found.
		if updateErr := wordRepo.Update(ctx, word); updateErr != nil {
			if errors.Is(updateErr, repository.ErrWordNotFound) {
				return domainerrors.ErrWordNotFound.WrapMessage("word does not exist or is not owned by this user")
			}

			return updateErr
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Word edit failed", slog.Any("ownerID", ownerID), slog.Any("wordID", input.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Word edited", slog.Any("ownerID", ownerID), slog.Any("wordID", word.ID))

	return word, nil
}

// Delete removes the owner's word.
func (srv *wordService) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if ownerID == uuid.Nil || id == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("owner and id are required")
	}

	if err := srv.wordRepo.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, repository.ErrWordNotFound) {
			srv.log(ctx).Warn("Word delete missed", slog.Any("ownerID", ownerID), slog.Any("wordID", id))

			return domainerrors.ErrWordNotFound.WrapMessage("word does not exist or is not owned by this user")
		}

		return errors.Wrap(err, "failed to delete word")
	}

	srv.log(ctx).Debug("Word deleted", slog.Any("ownerID", ownerID), slog.Any("wordID", id))

	return nil
}
