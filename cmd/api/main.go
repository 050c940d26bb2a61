package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"dpmarketpro/internal/adapter/api"
	"dpmarketpro/internal/adapter/api/handler"
	apimiddleware "dpmarketpro/internal/adapter/api/middleware"
	"dpmarketpro/internal/adapter/api/router"
	"dpmarketpro/internal/adapter/repository"
	"dpmarketpro/internal/infrastructure/firebase"
	"dpmarketpro/internal/infrastructure/storage"
	"dpmarketpro/internal/infrastructure/websocket"
	"dpmarketpro/internal/pref"
	"dpmarketpro/internal/usecase"
	"dpmarketpro/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")

	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
		serviceAccountPath = ""
	} else {
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	contactRepo := repository.NewFirestoreContactRepository(firestoreClient)

	authClient := firebase.NewAuthClient(fbAuth, cfg.FirebaseApiKey)

	hub := websocket.NewHub()
	hub.Start(ctx)

	prefStore := pref.NewStore(cfg.DefaultTheme)

	authUseCase := usecase.NewAuthUseCase(profileRepo, authClient, hub)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	editorUseCase := usecase.NewEditorUseCase(productRepo, storageClient)
	contactUseCase := usecase.NewContactUseCase(contactRepo)

	handler.Setup(authUseCase, catalogUseCase, editorUseCase, contactUseCase, prefStore, hub)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
