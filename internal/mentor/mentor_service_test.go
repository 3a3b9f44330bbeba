package mentor_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-magang/internal/mentor"
	mentorerrors "go-magang/internal/mentor/errors"
	mentorMock "go-magang/internal/mentor/mock"
	"go-magang/internal/user"
	userMock "go-magang/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service mentor.Service
	repo    *mentorMock.MockRepository
	users   *userMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	repo := mentorMock.NewMockRepository(ctrl)
	users := userMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: mentor.NewService(db, repo, users),
		repo:    repo,
		users:   users,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func newUser(role, ue2, ue3 string) *user.User {
	return &user.User{
		ID:       uuid.New(),
		FullName: role + " " + ue3,
		Email:    uuid.NewString() + "@example.com",
		Role:     role,
		UE2:      ue2,
		UE3:      ue3,
		IsActive: true,
	}
}

func TestMentorService_CanAccessStudent(t *testing.T) {
	ctx := context.Background()
	student := newUser("mahasiswa", "Deputi I", "Biro TI")

	t.Run("mentor in same unit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		m := newUser("mentor", "Deputi I", "Biro TI")

		deps.users.EXPECT().FindByID(ctx, student.ID.String()).Return(student, nil)
		deps.users.EXPECT().FindByID(ctx, m.ID.String()).Return(m, nil)

		got, err := deps.service.CanAccessStudent(ctx, mentor.Actor{ID: m.ID.String(), Role: "mentor"}, student.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, student.ID, got.ID)
	})

	t.Run("mentor in other unit is forbidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		m := newUser("mentor", "Deputi I", "Biro Hukum")

		deps.users.EXPECT().FindByID(ctx, student.ID.String()).Return(student, nil)
		deps.users.EXPECT().FindByID(ctx, m.ID.String()).Return(m, nil)

		_, err := deps.service.CanAccessStudent(ctx, mentor.Actor{ID: m.ID.String(), Role: "mentor"}, student.ID.String())

		assert.ErrorIs(t, err, mentorerrors.ErrStudentOutOfScope)
	})

	t.Run("pengurus sees every student", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.users.EXPECT().FindByID(ctx, student.ID.String()).Return(student, nil)

		_, err := deps.service.CanAccessStudent(ctx, mentor.Actor{ID: uuid.NewString(), Role: "pengurus"}, student.ID.String())

		assert.NoError(t, err)
	})

	t.Run("unknown student", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		id := uuid.NewString()

		deps.users.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.CanAccessStudent(ctx, mentor.Actor{Role: "mentor"}, id)

		assert.ErrorIs(t, err, mentorerrors.ErrStudentNotFound)
	})

	t.Run("id of a mentor is not a student", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		other := newUser("mentor", "Deputi I", "Biro TI")

		deps.users.EXPECT().FindByID(ctx, other.ID.String()).Return(other, nil)

		_, err := deps.service.CanAccessStudent(ctx, mentor.Actor{Role: "pengurus"}, other.ID.String())

		assert.ErrorIs(t, err, mentorerrors.ErrStudentNotFound)
	})
}

func TestMentorService_Students(t *testing.T) {
	ctx := context.Background()

	t.Run("mentor is scoped to unit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		m := newUser("mentor", "Deputi II", "Biro Umum")

		deps.users.EXPECT().FindByID(ctx, m.ID.String()).Return(m, nil)
		deps.users.EXPECT().
			FindAll(ctx, user.Filter{Role: "mahasiswa", UE2: "Deputi II", UE3: "Biro Umum", ByUnit: true}).
			Return([]user.User{*newUser("mahasiswa", "Deputi II", "Biro Umum")}, nil)

		resp, err := deps.service.Students(ctx, mentor.Actor{ID: m.ID.String(), Role: "mentor"})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("pengurus gets everyone", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.users.EXPECT().FindAll(ctx, user.Filter{Role: "mahasiswa"}).Return(nil, nil)

		resp, err := deps.service.Students(ctx, mentor.Actor{ID: uuid.NewString(), Role: "pengurus"})

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestMentorService_Assign(t *testing.T) {
	ctx := context.Background()
	student := newUser("mahasiswa", "D", "B")
	m := newUser("mentor", "D", "B")

	t.Run("success replaces previous relation", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.users.EXPECT().FindByID(ctx, student.ID.String()).Return(student, nil)
		deps.users.EXPECT().FindByID(ctx, m.ID.String()).Return(m, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeactivateByStudent(ctx, student.ID.String()).Return(int64(1), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rel *mentor.MentorStudent) error {
			assert.Equal(t, m.ID, rel.MentorID)
			assert.Equal(t, student.ID, rel.StudentID)
			assert.True(t, rel.IsActive)
			return nil
		})

		resp, err := deps.service.Assign(ctx, student.ID.String(), mentor.AssignMentorRequest{MentorID: m.ID.String()})

		assert.NoError(t, err)
		assert.Equal(t, m.ID.String(), resp.MentorID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("create failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.users.EXPECT().FindByID(ctx, student.ID.String()).Return(student, nil)
		deps.users.EXPECT().FindByID(ctx, m.ID.String()).Return(m, nil)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeactivateByStudent(ctx, student.ID.String()).Return(int64(0), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("duplicate"))

		_, err := deps.service.Assign(ctx, student.ID.String(), mentor.AssignMentorRequest{MentorID: m.ID.String()})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("target is not a mentor", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		other := newUser("mahasiswa", "D", "B")

		deps.users.EXPECT().FindByID(ctx, student.ID.String()).Return(student, nil)
		deps.users.EXPECT().FindByID(ctx, other.ID.String()).Return(other, nil)

		_, err := deps.service.Assign(ctx, student.ID.String(), mentor.AssignMentorRequest{MentorID: other.ID.String()})

		assert.ErrorIs(t, err, mentorerrors.ErrMentorNotFound)
	})
}

func TestMentorService_Unassign(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	deps := setupServiceTest(t)
	defer deps.db.Close()

	deps.repo.EXPECT().DeactivateByStudent(ctx, id).Return(int64(0), nil)
	assert.ErrorIs(t, deps.service.Unassign(ctx, id), mentorerrors.ErrNoActiveMentor)

	deps.repo.EXPECT().DeactivateByStudent(ctx, id).Return(int64(1), nil)
	assert.NoError(t, deps.service.Unassign(ctx, id))
}

func TestMentorService_MentorsOf(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	studentID := uuid.NewString()
	active := newUser("mentor", "D", "B")
	inactive := newUser("mentor", "D", "B")
	inactive.IsActive = false

	deps.repo.EXPECT().ActiveMentorIDs(ctx, studentID).
		Return([]string{active.ID.String(), inactive.ID.String()}, nil)
	deps.users.EXPECT().FindByIDs(ctx, []string{active.ID.String(), inactive.ID.String()}).
		Return([]user.User{*active, *inactive}, nil)

	mentors, err := deps.service.MentorsOf(ctx, studentID)

	assert.NoError(t, err)
	assert.Len(t, mentors, 1)
	assert.Equal(t, active.Email, mentors[0].Email)
}

func TestMentorService_ActiveMentorOf(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	studentID := uuid.NewString()
	m := newUser("mentor", "D", "B")

	deps.repo.EXPECT().ActiveByStudent(ctx, studentID).Return(nil, gorm.ErrRecordNotFound)
	none, err := deps.service.ActiveMentorOf(ctx, studentID)
	assert.NoError(t, err)
	assert.Nil(t, none)

	deps.repo.EXPECT().ActiveByStudent(ctx, studentID).Return(&mentor.MentorStudent{MentorID: m.ID}, nil)
	deps.users.EXPECT().FindByID(ctx, m.ID.String()).Return(m, nil)
	got, err := deps.service.ActiveMentorOf(ctx, studentID)
	assert.NoError(t, err)
	assert.Equal(t, m.FullName, got.FullName)
}

func TestMentorService_Mentors(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	a := newUser("mentor", "D", "B")
	b := newUser("mentor", "D", "C")

	deps.users.EXPECT().FindAll(ctx, user.Filter{Role: "mentor"}).Return([]user.User{*a, *b}, nil)
	deps.repo.EXPECT().CountActiveByMentor(ctx).Return(map[string]int64{a.ID.String(): 3}, nil)

	resp, err := deps.service.Mentors(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), resp[0].StudentCount)
	assert.Equal(t, int64(0), resp[1].StudentCount)
}

func TestMentorService_ReviewUnit(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	unit, err := deps.service.ReviewUnit(ctx, mentor.Actor{ID: uuid.NewString(), Role: "pengurus"})
	assert.NoError(t, err)
	assert.Nil(t, unit)

	m := newUser("mentor", "Deputi III", "Biro SDM")
	deps.users.EXPECT().FindByID(ctx, m.ID.String()).Return(m, nil)

	unit, err = deps.service.ReviewUnit(ctx, mentor.Actor{ID: m.ID.String(), Role: "mentor"})
	assert.NoError(t, err)
	assert.Equal(t, &mentor.Unit{UE2: "Deputi III", UE3: "Biro SDM"}, unit)
}
