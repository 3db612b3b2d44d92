package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/peercolab/internal/common"
	"github.com/dmitrijs2005/peercolab/internal/dbx"
	"github.com/dmitrijs2005/peercolab/internal/logging"
	"github.com/dmitrijs2005/peercolab/internal/server/models"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// FileService registers file metadata inside projects.
type FileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewFileService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *FileService {
	return &FileService{db: db, repomanager: m, logger: l.With("module", "files")}
}

// Create registers a file in the project and returns its id. The caller must
// be a member and the name must be unused within the project.
func (s *FileService) Create(ctx context.Context, memberEmail, projectID, name string) (string, error) {
	id := uuid.NewString()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		member, err := s.repomanager.Members(tx).Exists(ctx, projectID, memberEmail)
		if err != nil {
			return err
		}
		if !member {
			return ErrNotProjectMember
		}

		repo := s.repomanager.Files(tx)
		taken, err := repo.ExistsByName(ctx, projectID, name)
		if err != nil {
			return err
		}
		if taken {
			return ErrFileExists
		}

		err = repo.Create(ctx, &models.File{ID: id, ProjectID: projectID, Name: name})
		if errors.Is(err, common.ErrorConflict) {
			return ErrFileExists
		}
		return err
	})
	if err != nil {
		return "", storageFault(err)
	}

	s.logger.Info(ctx, "file created", "file_id", id, "project_id", projectID, "name", name)
	return id, nil
}

// List returns the ids of the project's files, unordered.
func (s *FileService) List(ctx context.Context, projectID string) ([]string, error) {
	ids, err := s.repomanager.Files(s.db).IDsByProject(ctx, projectID)
	if err != nil {
		return nil, storageFault(err)
	}
	return ids, nil
}

func (s *FileService) Name(ctx context.Context, fileID string) (string, error) {
	f, err := s.repomanager.Files(s.db).Get(ctx, fileID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", ErrFileNotFound
		}
		return "", storageFault(err)
	}
	return f.Name, nil
}

// Delete removes a single file. Any member of the file's project may do so.
func (s *FileService) Delete(ctx context.Context, memberEmail, fileID string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Files(tx)

		f, err := repo.Get(ctx, fileID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return ErrFileNotFound
			}
			return err
		}

		member, err := s.repomanager.Members(tx).Exists(ctx, f.ProjectID, memberEmail)
		if err != nil {
			return err
		}
		if !member {
			return ErrNotProjectMember
		}

		return repo.Delete(ctx, fileID)
	})
	if err != nil {
		return storageFault(err)
	}

	s.logger.Info(ctx, "file deleted", "file_id", fileID)
	return nil
}
