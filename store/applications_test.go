package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasancaglar07/tarfcomtr-sub001/models"
)

func submitTestApplication(t *testing.T, s *ContentStore, name, subject string) *models.Application {
	app, err := s.SubmitApplication(ApplicationInput{
		Name:    name,
		Email:   "basvuru@example.com",
		Subject: subject,
		Message: "Programa katılmak istiyorum",
	})
	require.NoError(t, err)
	return app
}

func TestSubmitApplication_StartsAsNew(t *testing.T) {
	s, _ := setupStore(t)

	app := submitTestApplication(t, s, "Ayşe Yılmaz", "Akademi")
	assert.Equal(t, models.ApplicationNew, app.Status)
	assert.NotZero(t, app.ID)
}

func TestSubmitApplication_Validation(t *testing.T) {
	s, _ := setupStore(t)

	tests := []struct {
		name string
		in   ApplicationInput
		want string
	}{
		{
			"missing name",
			ApplicationInput{Email: "a@b.com", Message: "m"},
			"isim zorunludur",
		},
		{
			"missing email",
			ApplicationInput{Name: "A", Message: "m"},
			"e-posta zorunludur",
		},
		{
			"bad email",
			ApplicationInput{Name: "A", Email: "not-an-email", Message: "m"},
			"e-posta geçersiz",
		},
		{
			"missing message",
			ApplicationInput{Name: "A", Email: "a@b.com"},
			"mesaj zorunludur",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SubmitApplication(tt.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	var count int64
	s.db.Model(&models.Application{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestListApplications_FiltersAndCounts(t *testing.T) {
	s, _ := setupStore(t)

	first := submitTestApplication(t, s, "Ayşe Yılmaz", "Akademi")
	submitTestApplication(t, s, "Mehmet Kaya", "Yazılım Okulu")

	_, err := s.UpdateApplication(first.ID, models.ApplicationClosed, "görüşüldü")
	require.NoError(t, err)

	apps, count, err := s.ListApplications(ApplicationFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, apps, 2)

	apps, count, err = s.ListApplications(ApplicationFilter{Status: models.ApplicationNew})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, apps, 1)
	assert.Equal(t, "Mehmet Kaya", apps[0].Name)

	apps, count, err = s.ListApplications(ApplicationFilter{Query: "Akademi"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, apps, 1)
	assert.Equal(t, "Ayşe Yılmaz", apps[0].Name)

	_, _, err = s.ListApplications(ApplicationFilter{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListApplications_Pagination(t *testing.T) {
	s, _ := setupStore(t)

	for i := 0; i < 3; i++ {
		submitTestApplication(t, s, "Başvuran", "Konu")
	}

	apps, count, err := s.ListApplications(ApplicationFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, apps, 2)

	apps, count, err = s.ListApplications(ApplicationFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, apps, 1)
}

func TestUpdateApplication_Workflow(t *testing.T) {
	s, _ := setupStore(t)
	app := submitTestApplication(t, s, "Ayşe Yılmaz", "Akademi")

	updated, err := s.UpdateApplication(app.ID, models.ApplicationInReview, "aranacak")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationInReview, updated.Status)
	assert.Equal(t, "aranacak", updated.AdminNote)

	_, err = s.UpdateApplication(app.ID, "archived", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = s.UpdateApplication(9999, models.ApplicationClosed, "")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
