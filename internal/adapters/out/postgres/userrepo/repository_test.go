package userrepo_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const selectUsers = `SELECT \* FROM "users" WHERE`

var userColumns = []string{"id", "name", "email", "role", "active", "created_at", "updated_at"}

type UserRepositoryTestSuite struct {
	suite.Suite
	sqlDB *sql.DB
	mock  sqlmock.Sqlmock
	repo  *userrepo.GormUserRepository
}

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) SetupTest() {
	var err error
	s.sqlDB, s.mock, err = sqlmock.New()
	s.Require().NoError(err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: s.sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.repo = userrepo.NewGormUserRepository(db)
}

func (s *UserRepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
	s.sqlDB.Close()
}

func (s *UserRepositoryTestSuite) TestGet_NotFound() {
	s.mock.ExpectQuery(selectUsers).WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := s.repo.Get(s.T().Context(), kernel.NewUUID())

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *UserRepositoryTestSuite) TestGet_StorageFailurePassesThrough() {
	s.mock.ExpectQuery(selectUsers).WillReturnError(errors.New("connection reset by peer"))

	_, err := s.repo.Get(s.T().Context(), kernel.NewUUID())

	s.Require().ErrorContains(err, "connection reset by peer")
	s.NotErrorIs(err, errs.ErrObjectNotFound)
}

func (s *UserRepositoryTestSuite) TestGet_InvalidIDSkipsTheQuery() {
	_, err := s.repo.Get(s.T().Context(), kernel.UUID{})

	s.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func (s *UserRepositoryTestSuite) TestFindByEmail_MapsTheRow() {
	id := kernel.NewUUID()
	created := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	s.mock.ExpectQuery(selectUsers + ` email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "Carlos Admin", "carlos@example.com", "ADMIN", true, created, created))

	email, err := user.NewEmail("Carlos@Example.com")
	s.Require().NoError(err)

	got, err := s.repo.FindByEmail(s.T().Context(), email)

	s.Require().NoError(err)
	s.True(got.ID().IsEqual(id))
	s.Equal("Carlos Admin", got.Name())
	s.Equal(user.Admin, got.Role())
	s.True(got.IsActive())
	s.True(got.CreatedAt().Equal(created))
}

func (s *UserRepositoryTestSuite) TestFindByEmail_UnknownRoleIsRejected() {
	now := time.Now()
	s.mock.ExpectQuery(selectUsers).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(kernel.NewUUID().String(), "Carlos Admin", "carlos@example.com", "ROOT", true, now, now))

	email, err := user.NewEmail("carlos@example.com")
	s.Require().NoError(err)

	_, err = s.repo.FindByEmail(s.T().Context(), email)

	s.Require().ErrorIs(err, errs.ErrValidation)
}
