// File: services/calendar/google.go
package calendar

import (
	"context"
	"fmt"
	"time"

	"bookify/config"
	userRepo "bookify/database/repository/user"
	"bookify/models"
	"bookify/scheduling"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarService connects a user's Google Calendar and exposes its
// busy periods as normalized UTC intervals. It satisfies
// booking.BusySource.
type GoogleCalendarService struct {
	Users userRepo.UserRepository
}

// OAuthConfig builds the OAuth2 config for the calendar scope from the
// application configuration.
func OAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RedirectURL:  config.AppConfig.GoogleRedirectURL,
		Scopes:       []string{calendarapi.CalendarReadonlyScope},
		Endpoint:     google.Endpoint,
	}
}

// AuthURL returns the consent URL a user visits to connect their calendar.
// The state parameter carries the user ID back through the callback.
func (s *GoogleCalendarService) AuthURL(state string) string {
	return OAuthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Connect exchanges an authorization code and stores the token material on
// the user document.
func (s *GoogleCalendarService) Connect(ctx context.Context, userID, code string) error {
	token, err := OAuthConfig().Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("google token exchange failed: %w", err)
	}

	creds := bson.M{
		"google": &models.GoogleCredentials{
			AccessToken:  token.AccessToken,
			RefreshToken: token.RefreshToken,
			TokenType:    token.TokenType,
			Expiry:       token.Expiry,
		},
		"googleIsConnected": true,
	}
	if err := s.Users.UpdateSetDocument(userID, creds); err != nil {
		return fmt.Errorf("failed to store google credentials: %w", err)
	}
	return nil
}

// Disconnect removes the stored token material.
func (s *GoogleCalendarService) Disconnect(ctx context.Context, userID string) error {
	update := bson.M{"google": nil, "googleIsConnected": false}
	if err := s.Users.UpdateSetDocument(userID, update); err != nil {
		return fmt.Errorf("failed to disconnect google calendar: %w", err)
	}
	return nil
}

// BusyIntervals queries the primary calendar's FreeBusy data for the
// window and normalizes every period to UTC instants. Users without a
// connected calendar contribute nothing.
func (s *GoogleCalendarService) BusyIntervals(ctx context.Context, userID string, window scheduling.Window) ([]models.BusyInterval, error) {
	usr, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if !usr.GoogleIsConnected || usr.Google == nil {
		return nil, nil
	}

	token := &oauth2.Token{
		AccessToken:  usr.Google.AccessToken,
		RefreshToken: usr.Google.RefreshToken,
		TokenType:    usr.Google.TokenType,
		Expiry:       usr.Google.Expiry,
	}
	source := OAuthConfig().TokenSource(ctx, token)

	srv, err := calendarapi.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar client: %w", err)
	}

	req := &calendarapi.FreeBusyRequest{
		TimeMin: window.Start.UTC().Format(time.RFC3339),
		TimeMax: window.End.UTC().Format(time.RFC3339),
		Items:   []*calendarapi.FreeBusyRequestItem{{Id: "primary"}},
	}
	res, err := srv.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	cal, ok := res.Calendars["primary"]
	if !ok {
		return nil, nil
	}

	busy := make([]models.BusyInterval, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid busy start %q: %w", period.Start, err)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, fmt.Errorf("invalid busy end %q: %w", period.End, err)
		}
		busy = append(busy, models.BusyInterval{Start: start.UTC(), End: end.UTC()})
	}
	return busy, nil
}
