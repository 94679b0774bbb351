package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gentlemind/internal/modules/preference/service"
	apperrors "gentlemind/internal/platform/errors"
	"gentlemind/internal/platform/i18n"
	"gentlemind/internal/testutil"
)

func TestLanguage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryKV()

	svc := service.NewLanguageService(store, &testutil.MockLogger{}, i18n.English)
	assert.Equal(t, i18n.English, svc.Load(ctx))
	require.NoError(t, svc.SetLanguage(ctx, i18n.Thai))
	assert.Equal(t, "th", store.Data[service.LanguageKey])

	again := service.NewLanguageService(store, &testutil.MockLogger{}, i18n.English)
	assert.Equal(t, i18n.Thai, again.Load(ctx))
	assert.Equal(t, i18n.Thai, again.Language())
}

func TestLanguage_IgnoresUnknownStoredValue(t *testing.T) {
	store := testutil.NewMemoryKV()
	store.Data[service.LanguageKey] = "fr"
	svc := service.NewLanguageService(store, &testutil.MockLogger{}, i18n.English)
	assert.Equal(t, i18n.English, svc.Load(context.Background()))
}

func TestLanguage_RejectsUnknownValue(t *testing.T) {
	store := testutil.NewMemoryKV()
	svc := service.NewLanguageService(store, &testutil.MockLogger{}, i18n.Thai)
	err := svc.SetLanguage(context.Background(), i18n.Language("de"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, i18n.Thai, svc.Language())
	assert.Empty(t, store.Data)
}

func TestLanguage_PersistFailureStillSwitches(t *testing.T) {
	store := testutil.NewMemoryKV()
	store.SetErr = testutil.ErrBoom
	svc := service.NewLanguageService(store, &testutil.MockLogger{}, i18n.English)
	err := svc.SetLanguage(context.Background(), i18n.Thai)
	assert.ErrorIs(t, err, testutil.ErrBoom)
	assert.Equal(t, i18n.Thai, svc.Language())
}

func TestLanguage_UnreadableFallsBack(t *testing.T) {
	store := testutil.NewMemoryKV()
	store.GetErr = testutil.ErrBoom
	logger := &testutil.MockLogger{}
	svc := service.NewLanguageService(store, logger, i18n.Thai)
	assert.Equal(t, i18n.Thai, svc.Load(context.Background()))
	assert.Equal(t, 1, logger.Count("warn"))
}
