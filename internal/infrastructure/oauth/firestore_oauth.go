package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"flight-booking-seeder/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/firestore/v1"
)

var ErrMissingProjectID = errors.New("no firestore project id")

// FirestoreOAuth holds service account credentials for the Firestore API
type FirestoreOAuth struct {
	credentials *google.Credentials
	projectID   string
	logger      logger.Logger
}

// NewFirestoreOAuth loads a service account key file. A non-empty projectID
// overrides the project named in the key.
func NewFirestoreOAuth(ctx context.Context, credentialsFile, projectID string, logger logger.Logger) (*FirestoreOAuth, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	credentials, err := google.CredentialsFromJSON(ctx, data, firestore.DatastoreScope, firestore.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	if projectID == "" {
		projectID = credentials.ProjectID
	}
	if projectID == "" {
		return nil, ErrMissingProjectID
	}

	logger.Debug("Loaded service account credentials", "file", credentialsFile, "projectID", projectID)

	return &FirestoreOAuth{
		credentials: credentials,
		projectID:   projectID,
		logger:      logger,
	}, nil
}

// GetTokenSource returns a token source that can be used with the Firestore API
func (o *FirestoreOAuth) GetTokenSource() oauth2.TokenSource {
	return o.credentials.TokenSource
}

// ProjectID returns the project records are written to
func (o *FirestoreOAuth) ProjectID() string {
	return o.projectID
}

// CheckToken mints an access token to prove the key is accepted
func (o *FirestoreOAuth) CheckToken() (*oauth2.Token, error) {
	token, err := o.credentials.TokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain token: %w", err)
	}
	return token, nil
}

// TokenToJSON converts a token to JSON
func (o *FirestoreOAuth) TokenToJSON(token *oauth2.Token) (string, error) {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
