package jikan

import (
	"context"
)

// API defines the Jikan endpoints used to build a manga detail page
type API interface {
	// GetMangaFull retrieves the primary record envelope
	GetMangaFull(ctx context.Context, id string) (*MangaResponse, error)

	// GetMangaCharacters retrieves the cast list
	GetMangaCharacters(ctx context.Context, id string) (*CharactersResponse, error)

	// GetMangaRecommendations retrieves related manga recommended by users
	GetMangaRecommendations(ctx context.Context, id string) (*RecommendationsResponse, error)
}

var _ API = (*Client)(nil)
