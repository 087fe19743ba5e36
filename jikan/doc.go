// Package jikan provides a client for the Jikan v4 API (an unofficial MyAnimeList API).
//
// Only the manga endpoints needed for a detail page are implemented:
//
//   - GET /manga/{id}/full
//   - GET /manga/{id}/characters
//   - GET /manga/{id}/recommendations
//
// # Retries
//
// Every request goes through FetchWithRetry. Jikan rate limits aggressively, so
// HTTP 429 responses and transport failures are retried with multiplicative
// backoff (factor 1.5, starting at the configured delay). Any other non-2xx
// status is returned immediately as an *APIError.
//
//	logger := zerolog.New(os.Stderr)
//	client, err := jikan.NewClient(
//		jikan.DefaultBaseURL,
//		logger,
//		jikan.WithMaxRetries(3),
//		jikan.WithRetryDelay(time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.GetMangaFull(ctx, "2")
//
// # Error Handling
//
// Callers can tell failure kinds apart with errors.As:
//
//	var apiErr *jikan.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// Unknown manga
//	}
//
//	var transportErr *jikan.TransportError
//	if errors.As(err, &transportErr) {
//		// Network failure, retries exhausted
//	}
package jikan
