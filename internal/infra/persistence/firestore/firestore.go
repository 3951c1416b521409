// Package firestore implements the profile and presence repositories on
// Cloud Firestore, namespaced under artifacts/{appId}/.
package firestore

import (
	"context"
	"fmt"

	"parkpulse/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase app shared by the Firestore repositories
// and the identity verifier.
func NewApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	fbConfig := &firebase.Config{}
	var opts []option.ClientOption

	if cfg.Firestore != nil {
		fbConfig.ProjectID = cfg.Firestore.ProjectID
		if cfg.Firestore.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	return app, nil
}

// NewClient derives the Firestore client from the Firebase app.
func NewClient(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return client, nil
}

// profileDoc is artifacts/{appId}/users/{userId}/profile/{userId}: the
// user id doubles as the profile document id.
func profileDoc(client *firestore.Client, appID, userID string) *firestore.DocumentRef {
	return client.Collection("artifacts").Doc(appID).
		Collection("users").Doc(userID).
		Collection("profile").Doc(userID)
}

// checkInCollection is artifacts/{appId}/parkCheckIns/{parkId}/checkedInUsers.
func checkInCollection(client *firestore.Client, appID, parkID string) *firestore.CollectionRef {
	return client.Collection("artifacts").Doc(appID).
		Collection("parkCheckIns").Doc(parkID).
		Collection("checkedInUsers")
}
