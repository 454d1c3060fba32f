package ledger

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestReward_Table(t *testing.T) {
	assert.Equal(t, 50, Reward(ActionCreateChannel))
	assert.Equal(t, 20, Reward(ActionCreatePost))
	assert.Equal(t, 15, Reward(ActionCreateStory))
	assert.Equal(t, 10, Reward(ActionCreateComment))
	assert.Equal(t, 5, Reward(ActionLikePost))
}

func TestReward_UnknownActionIsZero(t *testing.T) {
	assert.Equal(t, 0, Reward(Action("subscribe")))
	assert.Equal(t, 0, Reward(Action("")))
}

func TestRewards_AllPositive(t *testing.T) {
	for action, amount := range rewards {
		assert.Greater(t, amount, 0, "reward for %s must be positive", action)
	}
}

func TestCredit_AppliesRewardAmount(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE users SET yn_balance = yn_balance \+ \$1`).
		WithArgs(50, "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"yn_balance"}).AddRow(150))

	balance, err := Credit(db, "user-1", ActionCreateChannel)
	assert.NoError(t, err)
	assert.Equal(t, 150, balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredit_UnknownActionNeverTouchesStorage(t *testing.T) {
	db, mock := newMockDB(t)

	_, err := Credit(db, "user-1", Action("subscribe"))
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredit_MissingUser(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE users SET yn_balance = yn_balance \+ \$1`).
		WithArgs(5, "missing").
		WillReturnRows(sqlmock.NewRows([]string{"yn_balance"}))

	_, err := Credit(db, "missing", ActionLikePost)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDebit_GuardedInSQL(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE users SET yn_balance = yn_balance - \$1, updated_at = NOW\(\) WHERE id = \$2 AND yn_balance >= \$3`).
		WithArgs(150, "user-1", 150).
		WillReturnRows(sqlmock.NewRows([]string{"yn_balance"}).AddRow(25))

	balance, err := Debit(db, "user-1", 150)
	assert.NoError(t, err)
	assert.Equal(t, 25, balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebit_InsufficientBalance(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE users SET yn_balance = yn_balance - \$1`).
		WithArgs(500, "user-1", 500).
		WillReturnRows(sqlmock.NewRows([]string{"yn_balance"}))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE id = \$1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := Debit(db, "user-1", 500)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebit_MissingUser(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE users SET yn_balance = yn_balance - \$1`).
		WithArgs(500, "missing", 500).
		WillReturnRows(sqlmock.NewRows([]string{"yn_balance"}))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := Debit(db, "missing", 500)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestConsumeSuperLike_Exhausted(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE users SET super_likes_count = super_likes_count - 1, updated_at = NOW\(\) WHERE id = \$1 AND super_likes_count > 0`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := ConsumeSuperLike(db, "user-1")
	assert.ErrorIs(t, err, ErrNoSuperLikes)
}

func TestGrantSuperLikes_Stacks(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE users SET super_likes_count = super_likes_count \+ \$1`).
		WithArgs(50, "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, GrantSuperLikes(db, "user-1", 50))
	assert.NoError(t, mock.ExpectationsWereMet())
}
