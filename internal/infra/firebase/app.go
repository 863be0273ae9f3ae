// Package firebase builds the Firebase app shared by Firestore and Cloud Messaging.
package firebase

import (
	"context"

	"storefront/config"
	"storefront/internal/errors"

	fb "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase app for the configured project. An empty
// credentials path falls back to application default credentials.
func NewApp(ctx context.Context, cfg *config.FirebaseConfig) (*fb.App, error) {
	if cfg == nil {
		return nil, errors.New("firebase is not configured")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *fb.Config
	if cfg.ProjectID != "" {
		appCfg = &fb.Config{ProjectID: cfg.ProjectID}
	}

	app, err := fb.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
