package exercices

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/B7A9F/exercices-api/internal/apperrors"
	"github.com/B7A9F/exercices-api/internal/models"
	"github.com/B7A9F/exercices-api/internal/store"
)

// Catalog is the remote fetch capability the aggregator consumes.
type Catalog interface {
	FetchExercices(ctx context.Context) ([]models.RemoteExercice, error)
}

// Service merges the local exercice store with the remote catalog and
// enforces per-record ownership on mutations.
type Service struct {
	store   store.ExerciceStore
	catalog Catalog
}

func NewService(st store.ExerciceStore, catalog Catalog) *Service {
	return &Service{store: st, catalog: catalog}
}

// ListOwn returns the records owned by the caller plus the shared
// "system" records.
func (s *Service) ListOwn(ctx context.Context, callerID string) ([]models.Exercice, error) {
	exercices, err := s.store.ListByOwners(ctx, []string{callerID, models.SystemOwner})
	if err != nil {
		return nil, apperrors.Internal()
	}
	return exercices, nil
}

// ListRemote fetches the remote catalog. Failures are propagated, not
// swallowed; graceful degradation only applies inside ListAll.
func (s *Service) ListRemote(ctx context.Context) ([]models.RemoteExercice, error) {
	remote, err := s.catalog.FetchExercices(ctx)
	if err != nil {
		return nil, apperrors.Upstream(err)
	}
	return remote, nil
}

// ListAll issues the local lookup and the remote fetch concurrently and
// merges the results once both have settled:
//
//	both succeed  -> local followed by remote
//	remote fails  -> local only
//	local fails   -> remote only
//	both fail     -> error
//
// Availability over completeness: a transient catalog outage must not
// take down the primary listing endpoint.
func (s *Service) ListAll(ctx context.Context, callerID string) ([]any, error) {
	type localResult struct {
		exercices []models.Exercice
		err       error
	}
	type remoteResult struct {
		exercices []models.RemoteExercice
		err       error
	}

	localCh := make(chan localResult, 1)
	remoteCh := make(chan remoteResult, 1)

	go func() {
		exercices, err := s.store.ListByOwners(ctx, []string{callerID, models.SystemOwner})
		localCh <- localResult{exercices: exercices, err: err}
	}()
	go func() {
		exercices, err := s.catalog.FetchExercices(ctx)
		remoteCh <- remoteResult{exercices: exercices, err: err}
	}()

	// Wait for both settlements; either side succeeding on its own is a
	// valid terminal outcome, so no short-circuit on the first one.
	local := <-localCh
	remote := <-remoteCh

	if local.err != nil && remote.err != nil {
		return nil, apperrors.Internal()
	}

	merged := make([]any, 0, len(local.exercices)+len(remote.exercices))
	if local.err == nil {
		for _, ex := range local.exercices {
			merged = append(merged, ex)
		}
	}
	if remote.err == nil {
		for _, ex := range remote.exercices {
			merged = append(merged, ex)
		}
	}
	return merged, nil
}

// Create persists a new exercice owned by the caller. The duplicate
// triple check is a pre-check, not a storage constraint; two concurrent
// identical creates can both pass it.
func (s *Service) Create(ctx context.Context, callerID string, input models.ExerciceInput) (models.Exercice, error) {
	if input.Name == "" || input.Type == "" || input.Muscle == "" {
		return models.Exercice{}, apperrors.Validation("name, type and muscle fields are mandatory !")
	}

	exists, err := s.store.ExistsTriple(ctx, callerID, input.Name, input.Type, input.Muscle)
	if err != nil {
		return models.Exercice{}, apperrors.Internal()
	}
	if exists {
		return models.Exercice{}, apperrors.Conflict("Exercice already exist, you can delete or update it by id.")
	}

	now := time.Now()
	ex := models.Exercice{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Type:         input.Type,
		Muscle:       input.Muscle,
		Equipment:    input.Equipment,
		Img:          input.Img,
		Gif:          input.Gif,
		Video:        input.Video,
		Description:  input.Description,
		Instructions: input.Instructions,
		Owner:        callerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Create(ctx, ex); err != nil {
		return models.Exercice{}, apperrors.Internal()
	}
	return ex, nil
}

// Get looks an exercice up by id. A malformed id surfaces as an opaque
// 500, an absent one as 404; not-found always wins over forbidden in
// the mutation paths below because the lookup runs first.
func (s *Service) Get(ctx context.Context, id string) (models.Exercice, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Exercice{}, apperrors.Internal()
	}
	ex, err := s.store.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Exercice{}, apperrors.NotFound("Exercice not found")
	}
	if err != nil {
		return models.Exercice{}, apperrors.Internal()
	}
	return ex, nil
}

// authorizeMutation enforces owner-only mutation. System records belong
// to nobody, so they are never mutable through this path either.
func authorizeMutation(ex models.Exercice, callerID string) error {
	if ex.Owner != callerID {
		return apperrors.Forbidden("User don't have permission to update other user exercices")
	}
	return nil
}

// Update applies the patch to the caller's own exercice. Ownership
// cannot be transferred: owner is forced back to the caller.
func (s *Service) Update(ctx context.Context, id, callerID string, input models.ExerciceInput) (models.Exercice, error) {
	ex, err := s.Get(ctx, id)
	if err != nil {
		return models.Exercice{}, err
	}
	if err := authorizeMutation(ex, callerID); err != nil {
		return models.Exercice{}, err
	}

	applyPatch(&ex, input)
	ex.Owner = callerID
	ex.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, ex); err != nil {
		return models.Exercice{}, apperrors.Internal()
	}
	return ex, nil
}

// Delete removes the caller's own exercice and returns the pre-deletion
// snapshot.
func (s *Service) Delete(ctx context.Context, id, callerID string) (models.Exercice, error) {
	ex, err := s.Get(ctx, id)
	if err != nil {
		return models.Exercice{}, err
	}
	if err := authorizeMutation(ex, callerID); err != nil {
		return models.Exercice{}, err
	}

	if err := s.store.Delete(ctx, ex.ID); err != nil {
		return models.Exercice{}, apperrors.Internal()
	}
	return ex, nil
}

// applyPatch overwrites fields present in the input. Empty strings are
// treated as absent, so a patch cannot clear a field.
func applyPatch(ex *models.Exercice, input models.ExerciceInput) {
	if input.Name != "" {
		ex.Name = input.Name
	}
	if input.Type != "" {
		ex.Type = input.Type
	}
	if input.Muscle != "" {
		ex.Muscle = input.Muscle
	}
	if input.Equipment != "" {
		ex.Equipment = input.Equipment
	}
	if input.Img != "" {
		ex.Img = input.Img
	}
	if input.Gif != "" {
		ex.Gif = input.Gif
	}
	if input.Video != "" {
		ex.Video = input.Video
	}
	if input.Description != "" {
		ex.Description = input.Description
	}
	if input.Instructions != "" {
		ex.Instructions = input.Instructions
	}
}
