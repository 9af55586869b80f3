package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"flight-booking-seeder/internal/infrastructure/oauth"
	"flight-booking-seeder/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	defaultFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if defaultFile == "" {
		defaultFile = "flight-booking-adminsdk.json"
	}

	credentialsFile := flag.String("credentials", defaultFile, "service account key file")
	projectID := flag.String("project", os.Getenv("FIRESTORE_PROJECT_ID"), "project id override")
	showToken := flag.Bool("show-token", false, "print the minted token as JSON")
	flag.Parse()

	log := logger.NewLogger("warn")
	defer log.Sync()

	auth, err := oauth.NewFirestoreOAuth(context.Background(), *credentialsFile, *projectID, log)
	if err != nil {
		log.Fatal("Failed to load credentials", "file", *credentialsFile, "error", err)
	}

	token, err := auth.CheckToken()
	if err != nil {
		log.Fatal("Credentials were rejected", "error", err)
	}

	fmt.Printf("Project: %s\n", auth.ProjectID())
	fmt.Printf("Token expires: %s\n", token.Expiry.Format("2006-01-02 15:04:05"))

	if *showToken {
		out, err := auth.TokenToJSON(token)
		if err != nil {
			log.Fatal("Failed to encode token", "error", err)
		}
		fmt.Println(out)
	}
}
