package handler

import (
	"dpmarketpro/internal/infrastructure/websocket"
	"dpmarketpro/internal/pref"
	"dpmarketpro/internal/usecase"
)

var (
	authHandler         *AuthHandler
	catalogHandler      *CatalogHandler
	adminProductHandler *AdminProductHandler
	draftImageHandler   *DraftImageHandler
	contactHandler      *ContactHandler
	preferenceHandler   *PreferenceHandler
	sessionEventHandler *SessionEventHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	editorUseCase *usecase.EditorUseCase,
	contactUseCase *usecase.ContactUseCase,
	prefStore *pref.Store,
	hub *websocket.Hub,
) {
	authHandler = NewAuthHandler(authUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	adminProductHandler = NewAdminProductHandler(editorUseCase)
	draftImageHandler = NewDraftImageHandler(editorUseCase)
	contactHandler = NewContactHandler(contactUseCase)
	preferenceHandler = NewPreferenceHandler(prefStore)
	sessionEventHandler = NewSessionEventHandler(hub)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetAdminProductHandler() *AdminProductHandler {
	return adminProductHandler
}

func GetDraftImageHandler() *DraftImageHandler {
	return draftImageHandler
}

func GetContactHandler() *ContactHandler {
	return contactHandler
}

func GetPreferenceHandler() *PreferenceHandler {
	return preferenceHandler
}

func GetSessionEventHandler() *SessionEventHandler {
	return sessionEventHandler
}
