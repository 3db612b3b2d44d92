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

// ProjectService manages projects, their admin and their members.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *ProjectService {
	return &ProjectService{db: db, repomanager: m, logger: l.With("module", "projects")}
}

// Create makes ownerEmail the admin and first member of a new project and
// returns its id.
func (s *ProjectService) Create(ctx context.Context, ownerEmail, name string) (string, error) {
	id := uuid.NewString()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.insertProject(ctx, tx, id, ownerEmail, name)
	})
	if err != nil {
		s.logger.Error(ctx, "project create failed", "error", err)
		return "", storageFault(err)
	}

	s.logger.Info(ctx, "project created", "project_id", id, "admin", ownerEmail)
	return id, nil
}

// CreateForClass creates a project administered by teacherEmail with
// studentEmail as a second member. teacherEmail must carry the teacher flag.
func (s *ProjectService) CreateForClass(ctx context.Context, studentEmail, teacherEmail, name string) (string, error) {
	id := uuid.NewString()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		teacher, err := isTeacher(ctx, s.repomanager, tx, teacherEmail)
		if err != nil {
			return err
		}
		if !teacher {
			return ErrInvalidTeacher
		}
		if err := s.insertProject(ctx, tx, id, teacherEmail, name); err != nil {
			return err
		}
		return s.repomanager.Members(tx).Add(ctx, id, studentEmail)
	})
	if err != nil {
		if r, ok := common.IsRejection(err); ok {
			s.logger.Warn(ctx, "class project create rejected", "teacher", teacherEmail, "reason", r.Message)
		} else {
			s.logger.Error(ctx, "class project create failed", "error", err)
		}
		return "", storageFault(err)
	}

	s.logger.Info(ctx, "class project created", "project_id", id, "admin", teacherEmail, "student", studentEmail)
	return id, nil
}

func (s *ProjectService) insertProject(ctx context.Context, tx dbx.DBTX, id, adminEmail, name string) error {
	if err := s.repomanager.Projects(tx).Create(ctx, &models.Project{ID: id, Name: name}); err != nil {
		return err
	}
	if err := s.repomanager.Admins(tx).Create(ctx, id, adminEmail); err != nil {
		return err
	}
	return s.repomanager.Members(tx).Add(ctx, id, adminEmail)
}

// AddMember adds email to the project. Adding an existing member succeeds
// without creating a second row.
func (s *ProjectService) AddMember(ctx context.Context, email, projectID string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Projects(tx).GetName(ctx, projectID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return ErrProjectNotFound
			}
			return err
		}
		return s.repomanager.Members(tx).Add(ctx, projectID, email)
	})
	if err != nil {
		return storageFault(err)
	}

	s.logger.Info(ctx, "member added", "project_id", projectID, "email", email)
	return nil
}

// Delete removes the project with its admin, member and file rows. Only the
// project's admin may delete it.
func (s *ProjectService) Delete(ctx context.Context, requesterEmail, projectID string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		admin, err := s.repomanager.Admins(tx).GetEmail(ctx, projectID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return ErrProjectNotFound
			}
			return err
		}
		if admin != requesterEmail {
			return ErrNotProjectOwner
		}

		if err := s.repomanager.Admins(tx).DeleteByProject(ctx, projectID); err != nil {
			return err
		}
		if err := s.repomanager.Members(tx).DeleteByProject(ctx, projectID); err != nil {
			return err
		}
		if err := s.repomanager.Projects(tx).Delete(ctx, projectID); err != nil {
			return err
		}
		return s.repomanager.Files(tx).DeleteByProject(ctx, projectID)
	})
	if err != nil {
		if r, ok := common.IsRejection(err); ok {
			s.logger.Warn(ctx, "project delete rejected", "project_id", projectID, "requester", requesterEmail, "reason", r.Message)
		}
		return storageFault(err)
	}

	s.logger.Info(ctx, "project deleted", "project_id", projectID)
	return nil
}

// List returns the ids of the projects email is a member of, unordered.
func (s *ProjectService) List(ctx context.Context, email string) ([]string, error) {
	ids, err := s.repomanager.Members(s.db).ProjectIDs(ctx, email)
	if err != nil {
		return nil, storageFault(err)
	}
	return ids, nil
}

func (s *ProjectService) Name(ctx context.Context, projectID string) (string, error) {
	name, err := s.repomanager.Projects(s.db).GetName(ctx, projectID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", ErrProjectNotFound
		}
		return "", storageFault(err)
	}
	return name, nil
}

// IsAdmin reports whether email is the recorded admin of the project.
// Unknown projects yield false.
func (s *ProjectService) IsAdmin(ctx context.Context, email, projectID string) (bool, error) {
	admin, err := s.repomanager.Admins(s.db).GetEmail(ctx, projectID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, storageFault(err)
	}
	return admin == email, nil
}

func (s *ProjectService) IsMember(ctx context.Context, email, projectID string) (bool, error) {
	ok, err := s.repomanager.Members(s.db).Exists(ctx, projectID, email)
	if err != nil {
		return false, storageFault(err)
	}
	return ok, nil
}

func isTeacher(ctx context.Context, m repomanager.RepositoryManager, db dbx.DBTX, email string) (bool, error) {
	user, err := m.Users(db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, storageFault(err)
	}
	return user.IsTeacher, nil
}
