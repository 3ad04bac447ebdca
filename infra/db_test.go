package infra

import (
	"bytes"
	"errors"
	"testing"

	"gin-fooddelivery/config"
	"gin-fooddelivery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSetupDB_FallsBackToSQLite(t *testing.T) {
	db, err := SetupDB(&config.Config{})
	require.NoError(t, err)
	defer CloseDB(db)

	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Category{}))
	assert.True(t, db.Migrator().HasTable(&models.Food{}))
	assert.True(t, db.Migrator().HasTable(&models.Order{}))
}

func TestOpenInMemory_IsIsolated(t *testing.T) {
	a, err := OpenInMemory()
	require.NoError(t, err)
	defer CloseDB(a)
	b, err := OpenInMemory()
	require.NoError(t, err)
	defer CloseDB(b)

	require.NoError(t, a.Create(&models.Category{Name: "Salad"}).Error)

	var count int64
	require.NoError(t, b.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestBase_GeneratesID(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer CloseDB(db)

	c := models.Category{Name: "Noodles"}
	require.NoError(t, db.Create(&c).Error)
	assert.Len(t, c.ID, 36)
}

func TestGormLogger_IgnoresRecordNotFound(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer CloseDB(db)

	var buf bytes.Buffer
	quiet := db.Session(&gorm.Session{Logger: NewGormLogger(&buf)})

	var user models.User
	err = quiet.Where("email = ?", "nobody@example.com").First(&user).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Empty(t, buf.String())

	err = quiet.Exec("SELECT * FROM no_such_table").Error
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "no_such_table")
}
