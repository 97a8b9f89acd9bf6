package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/evelinalundqvist/portfolio-backend/api"
	"github.com/evelinalundqvist/portfolio-backend/config"
	"github.com/evelinalundqvist/portfolio-backend/database"
	"github.com/evelinalundqvist/portfolio-backend/media"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()
	ctx := context.Background()

	firebaseConfig := &firebase.Config{
		ProjectID:     config.GetString(cfg, "FIREBASE_PROJECT_ID", ""),
		StorageBucket: config.GetString(cfg, "STORAGE_BUCKET", ""),
	}

	// With no credentials file the SDK falls back to application default
	// credentials, which is what runs in the hosted environment.
	var opts []option.ClientOption
	if credentialsPath := config.GetString(cfg, "FIREBASE_CREDENTIALS_PATH", ""); credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, firebaseConfig, opts...)
	if err != nil {
		fmt.Printf("Error initializing Firebase app: %v\n", err)
		os.Exit(1)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		fmt.Printf("Error connecting to Firestore: %v\n", err)
		os.Exit(1)
	}
	defer firestoreClient.Close()

	storageClient, err := app.Storage(ctx)
	if err != nil {
		fmt.Printf("Error initializing Cloud Storage client: %v\n", err)
		os.Exit(1)
	}

	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		fmt.Printf("Error opening storage bucket: %v\n", err)
		os.Exit(1)
	}

	db := database.New(database.NewFirestoreStore(firestoreClient))
	objectStorage := media.NewBucketStorage(bucket, firebaseConfig.StorageBucket)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(db, objectStorage)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
