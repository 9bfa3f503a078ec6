package scraper

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"social-analytics-backend/internal/domains/collection/model"
)

// =====================================================
// MOCK SCRAPER
// =====================================================
// Used when no provider token is configured or the live provider is
// blocked. Generates plausible engagement numbers so the analytics
// endpoints stay exercisable in development.

const mockPostCount = 8

type celebrityStats struct {
	followers   int
	following   int
	displayName string
	bio         string
	verified    bool
}

var celebrities = map[string]celebrityStats{
	"cristiano": {
		followers:   620000000,
		following:   560,
		displayName: "Cristiano Ronaldo",
		bio:         "Footballer, Father, Entrepreneur 🇵🇹",
		verified:    true,
	},
	"therock": {
		followers:   395000000,
		following:   750,
		displayName: "The Rock",
		bio:         "Actor, Producer, Entrepreneur 💪",
		verified:    true,
	},
	"selenagomez": {
		followers:   425000000,
		following:   300,
		displayName: "Selena Gomez",
		bio:         "Artist, Actress, Mental Health Advocate 💕",
		verified:    true,
	},
}

var captionTemplates = []string{
	"Great day training! 💪 #%s #motivation #fitness",
	"Behind the scenes 📸 #work #blessed #grateful",
	"Amazing sunset today 🌅 #nature #beautiful #peaceful",
	"Time with family ❤️ #love #family #blessed",
	"New project coming soon! 🔥 #excited #comingsoon #staytuned",
	"Thank you for all the support 🙏 #grateful #fans #love",
	"Workout complete ✅ #fitness #health #dedication",
	"Beautiful morning 🌞 #goodmorning #positive #energy",
}

// MockScraper synthesizes posts with realistic engagement ratios.
type MockScraper struct {
	rand *rand.Rand
	now  func() time.Time
}

func NewMockScraper() *MockScraper {
	return &MockScraper{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

func statsFor(username string, r *rand.Rand) celebrityStats {
	if stats, ok := celebrities[username]; ok {
		return stats
	}
	return celebrityStats{
		followers:   r.Intn(50000) + 1000,
		following:   r.Intn(500) + 100,
		displayName: username,
		bio:         fmt.Sprintf("%s's profile", username),
	}
}

// FetchPosts generates a fixed-size batch of synthetic posts. Likes
// run at 1-6%% of followers, comments at 0.1-0.6%%, the ratios real
// accounts tend to show.
func (m *MockScraper) FetchPosts(_ context.Context, username string, _ int) ([]model.RawPost, error) {
	stats := statsFor(username, m.rand)
	now := m.now()

	posts := make([]model.RawPost, 0, mockPostCount)
	for i := 0; i < mockPostCount; i++ {
		mediaType := "Image"
		videoURL := ""
		if i%4 == 0 {
			mediaType = "Video"
			videoURL = fmt.Sprintf("https://example.com/video/%s_%d.mp4", username, i)
		}

		caption := captionTemplates[i%len(captionTemplates)]
		if i == 0 {
			caption = fmt.Sprintf(caption, username)
		}

		posts = append(posts, model.RawPost{
			ID:                  fmt.Sprintf("%s_%d_%d", username, now.UnixMilli(), i),
			Type:                mediaType,
			Caption:             caption,
			URL:                 fmt.Sprintf("https://instagram.com/p/%s_mock_%d", username, i),
			DisplayURL:          fmt.Sprintf("https://picsum.photos/600/600?random=%s%d", username, i),
			VideoURL:            videoURL,
			LikesCount:          int(float64(stats.followers) * (m.rand.Float64()*0.05 + 0.01)),
			CommentsCount:       int(float64(stats.followers) * (m.rand.Float64()*0.005 + 0.001)),
			Timestamp:           now.Add(-time.Duration(float64(i) * m.rand.Float64() * 7 * 24 * float64(time.Hour))),
			OwnerUsername:       username,
			OwnerFullName:       stats.displayName,
			OwnerBiography:      stats.bio,
			OwnerFollowersCount: stats.followers,
			OwnerFollowsCount:   stats.following,
			OwnerPostsCount:     mockPostCount,
			OwnerVerified:       stats.verified,
		})
	}

	return posts, nil
}
