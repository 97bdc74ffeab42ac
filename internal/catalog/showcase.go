package catalog

import "studio-site/internal/domain"

// GalleryFilterAll disables category filtering
const GalleryFilterAll = "all"

var gallery = []domain.GalleryItem{
	{
		ID:          "1",
		Title:       "Luxury Fashion Collection",
		Category:    domain.VideoCategoryFashion,
		Thumbnail:   "/images/fashion-1.jpg",
		Description: "High-end fashion visualization with dynamic cloth simulation",
		Video:       domain.VideoConfig{Src: "/videos/fashion-1.mp4"},
	},
	{
		ID:          "2",
		Title:       "Modern Interior Walkthrough",
		Category:    domain.VideoCategoryInterior,
		Thumbnail:   "/images/interior-1.jpg",
		Description: "Photorealistic interior rendering with global illumination",
		Video:       domain.VideoConfig{Src: "/videos/interior-1.mp4"},
	},
	{
		ID:          "3",
		Title:       "Architectural Exterior",
		Category:    domain.VideoCategoryExterior,
		Thumbnail:   "/images/exterior-1.jpg",
		Description: "Stunning architectural visualization with environmental effects",
		Video:       domain.VideoConfig{Src: "/videos/exterior-1.mp4"},
	},
	{
		ID:          "4",
		Title:       "Runway Animation",
		Category:    domain.VideoCategoryFashion,
		Thumbnail:   "/images/fashion-2.jpg",
		Description: "Dynamic runway show with realistic fabric physics",
		Video:       domain.VideoConfig{Src: "/videos/fashion-2.mp4"},
	},
	{
		ID:          "5",
		Title:       "Minimalist Living Space",
		Category:    domain.VideoCategoryInterior,
		Thumbnail:   "/images/interior-2.jpg",
		Description: "Clean, modern interior with natural lighting",
		Video:       domain.VideoConfig{Src: "/videos/interior-2.mp4"},
	},
	{
		ID:          "6",
		Title:       "Urban Development",
		Category:    domain.VideoCategoryExterior,
		Thumbnail:   "/images/exterior-2.jpg",
		Description: "Large-scale urban planning visualization",
		Video:       domain.VideoConfig{Src: "/videos/exterior-2.mp4"},
	},
}

// HeroVideo backs every video hero until per-industry reels exist
var HeroVideo = domain.VideoConfig{
	Src:    "/videos/3d-hero.mp4",
	Poster: "/images/3d-hero-poster.jpg",
}

var channels = []domain.Channel{
	{ID: 1, Name: "HBO Max", Category: "Movies", Viewers: "2.4M"},
	{ID: 2, Name: "ESPN Sports", Category: "Sports", Viewers: "1.8M"},
	{ID: 3, Name: "Discovery", Category: "Documentary", Viewers: "980K"},
	{ID: 4, Name: "Comedy Central", Category: "Entertainment", Viewers: "1.2M"},
	{ID: 5, Name: "National Geo", Category: "Nature", Viewers: "1.5M"},
	{ID: 6, Name: "MTV Live", Category: "Music", Viewers: "890K"},
}

// Gallery returns the showcase reels in the given category; unknown or "all" returns everything
func Gallery(category string) []domain.GalleryItem {
	items := make([]domain.GalleryItem, 0, len(gallery))
	for _, item := range gallery {
		if category == "" || category == GalleryFilterAll || !isVideoCategory(category) || string(item.Category) == category {
			items = append(items, item)
		}
	}
	return items
}

// GalleryCategories lists the filter tabs in display order
func GalleryCategories() []string {
	return []string{
		GalleryFilterAll,
		string(domain.VideoCategoryFashion),
		string(domain.VideoCategoryInterior),
		string(domain.VideoCategoryExterior),
	}
}

// Channels returns the demo channel lineup shown in the IPTV preview
func Channels() []domain.Channel {
	out := make([]domain.Channel, len(channels))
	copy(out, channels)
	return out
}

func isVideoCategory(category string) bool {
	switch domain.VideoCategory(category) {
	case domain.VideoCategoryFashion, domain.VideoCategoryInterior, domain.VideoCategoryExterior:
		return true
	}
	return false
}
