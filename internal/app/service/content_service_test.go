package service

import (
	"encoding/json"
	"testing"

	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/app/repository"
	"github.com/granitdvor/monument-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupContentServiceTest(t *testing.T) (ContentService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	return NewContentService(repository.NewContentRepository(testDB)), testDB
}

func TestContentService_UpdateAndGetSection(t *testing.T) {
	svc, testDB := setupContentServiceTest(t)
	defer db.CleanupTestDB(testDB)

	body := json.RawMessage(`{"title":"О компании","text":"30 лет опыта"}`)

	section, err := svc.UpdateSection(model.SectionAboutCompany, body)
	require.NoError(t, err)
	assert.Equal(t, model.SectionAboutCompany, section.Key)

	found, err := svc.GetSection(model.SectionAboutCompany)
	require.NoError(t, err)
	assert.JSONEq(t, string(body), string(found.Body))
}

func TestContentService_UpdateSectionIsAnUpsert(t *testing.T) {
	svc, testDB := setupContentServiceTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.UpdateSection(model.SectionFooter, json.RawMessage(`{"v":1}`))
	require.NoError(t, err)
	_, err = svc.UpdateSection(model.SectionFooter, json.RawMessage(`{"v":2}`))
	require.NoError(t, err)

	var count int64
	require.NoError(t, testDB.Model(&model.ContentSection{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	found, err := svc.GetSection(model.SectionFooter)
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(found.Body))
}

func TestContentService_UnknownSectionRejected(t *testing.T) {
	svc, testDB := setupContentServiceTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.GetSection("hero-banner")
	assert.ErrorIs(t, err, ErrSectionUnknown)

	_, err = svc.UpdateSection("hero-banner", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrSectionUnknown)
}

func TestContentService_MissingSection(t *testing.T) {
	svc, testDB := setupContentServiceTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.GetSection(model.SectionOurServices)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestContentService_GetDocument(t *testing.T) {
	svc, testDB := setupContentServiceTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.UpdateSection(model.SectionAboutCompany, json.RawMessage(`{"title":"О нас"}`))
	require.NoError(t, err)
	_, err = svc.UpdateSection(model.SectionFooter, json.RawMessage(`{"copyright":"ГранитДвор"}`))
	require.NoError(t, err)

	document, err := svc.GetDocument()
	require.NoError(t, err)

	require.Len(t, document, 2)
	assert.JSONEq(t, `{"title":"О нас"}`, string(document[model.SectionAboutCompany]))
	assert.JSONEq(t, `{"copyright":"ГранитДвор"}`, string(document[model.SectionFooter]))
}
